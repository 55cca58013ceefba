// Package topics adds file based help topics to a cobra command tree.
//
// Topics are read from an fs.FS, usually an embedded directory, so the
// guides ship inside the binary. "help <topic>" prints a topic and
// "help topics" lists them; anything else falls through to cobra's help.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// Topic is one help document
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Ext returns the topic's file extension
func (t *Topic) Ext() string {
	return path.Ext(t.Path)
}

// Options configures a Manager
type Options struct {
	// Extensions lists the file extensions treated as topics.
	// Defaults to .txt and .md.
	Extensions []string

	// Renderer formats topics. Defaults to PlainRenderer.
	Renderer Renderer
}

// Manager holds the loaded topics
type Manager struct {
	fsys       fs.FS
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// New creates a Manager reading topics from fsys
func New(fsys fs.FS, opts Options) *Manager {
	m := &Manager{
		fsys:       fsys,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".txt", ".md"}
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}
	return m
}

// Load scans the file system for topic files. Later files with the same
// base name replace earlier ones.
func (m *Manager) Load() error {
	return fs.WalkDir(m.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !m.supported(path.Ext(p)) {
			return nil
		}
		content, err := fs.ReadFile(m.fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		m.topics[name] = &Topic{Name: name, Path: p, Content: string(content)}
		return nil
	})
}

func (m *Manager) supported(ext string) bool {
	for _, e := range m.extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Get retrieves a topic. Flag style names (--dry-run) also match
// "option-dry-run".
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	if topic, ok := m.topics[name]; ok {
		return topic, true
	}
	topic, ok := m.topics["option-"+name]
	return topic, ok
}

// Names returns the sorted topic names
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the formatted content of a topic
func (m *Manager) Render(topic *Topic) string {
	return m.renderer.Render(topic.Content, topic.Ext())
}

// WriteList prints the topic index
func (m *Manager) WriteList(w io.Writer, program string) {
	names := m.Names()
	if len(names) == 0 {
		_, _ = fmt.Fprintln(w, "No help topics available.")
		return
	}

	var general, options []string
	for _, name := range names {
		if strings.HasPrefix(name, "option-") {
			options = append(options, "--"+strings.TrimPrefix(name, "option-"))
		} else {
			general = append(general, name)
		}
	}

	_, _ = fmt.Fprintln(w, "Available help topics:")
	if len(general) > 0 {
		_, _ = fmt.Fprintln(w, "\nGeneral topics:")
		for _, name := range general {
			_, _ = fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		_, _ = fmt.Fprintln(w, "\nOption topics:")
		for _, name := range options {
			_, _ = fmt.Fprintf(w, "  %s\n", name)
		}
	}
	_, _ = fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", program)
}

// Initialize loads topics from fsys and installs a help command that
// knows about them.
func Initialize(rootCmd *cobra.Command, fsys fs.FS, opts Options) (*Manager, error) {
	m := New(fsys, opts)
	if err := m.Load(); err != nil {
		return nil, fmt.Errorf("failed to load help topics: %w", err)
	}

	originalHelp := rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.

To see all available help topics:
  ` + rootCmd.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.Names()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				originalHelp(rootCmd, nil)
				return
			}
			if args[0] == "topics" {
				m.WriteList(cmd.OutOrStdout(), rootCmd.Name())
				return
			}
			if topic, ok := m.Get(args[0]); ok {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), m.Render(topic))
				return
			}
			if target, _, err := rootCmd.Find(args); err == nil && target != rootCmd {
				originalHelp(target, nil)
				return
			}
			originalHelp(rootCmd, args)
		},
	}

	for _, c := range rootCmd.Commands() {
		if c.Name() == "help" {
			rootCmd.RemoveCommand(c)
			break
		}
	}
	rootCmd.SetHelpCommand(helpCmd)

	return m, nil
}
