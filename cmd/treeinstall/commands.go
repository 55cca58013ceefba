package treeinstall

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/treeinstall/internal/version"
	"github.com/arthur-debert/treeinstall/pkg/cobrax/topics"
	"github.com/arthur-debert/treeinstall/pkg/commands"
	"github.com/arthur-debert/treeinstall/pkg/errors"
	"github.com/arthur-debert/treeinstall/pkg/logging"
	"github.com/arthur-debert/treeinstall/pkg/style"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "treeinstall",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if stdoutIsTerminal() {
		renderer = topics.NewGlamourRenderer()
	}
	manager, err := topics.Initialize(rootCmd, helpFS, topics.Options{Renderer: renderer})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		manager = topics.New(helpFS, topics.Options{Renderer: renderer})
	}
	rootCmd.AddCommand(newSyntaxCmd(manager))

	return rootCmd
}

// sourceFlags binds the flags shared by commands that load the configuration
type sourceFlags struct {
	configFile string
	sourceRoot string
	destRoot   string
	root       string
	vars       []string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configFile, "config", "c", "", MsgFlagConfig)
	cmd.Flags().StringVar(&f.sourceRoot, "src", "", MsgFlagSource)
	cmd.Flags().StringVar(&f.destRoot, "dest", "", MsgFlagDest)
	cmd.Flags().StringVar(&f.root, "root", "", MsgFlagRoot)
	cmd.Flags().StringArrayVar(&f.vars, "var", nil, MsgFlagVar)
}

func (f *sourceFlags) options() (commands.SourceOptions, error) {
	vars, err := parseVars(f.vars)
	if err != nil {
		return commands.SourceOptions{}, err
	}
	return commands.SourceOptions{
		ConfigFile: f.configFile,
		SourceRoot: f.sourceRoot,
		DestRoot:   f.destRoot,
		Root:       f.root,
		Vars:       vars,
	}, nil
}

// parseVars turns name=value flag values into a map. Values may contain
// '=' and ','.
func parseVars(pairs []string) (map[string]string, error) {
	vars := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "invalid --var %q, expected name=value", pair).
				WithDetail("variable", pair)
		}
		vars[name] = value
	}
	return vars, nil
}

// outputFormat resolves auto against the command's writer. Anything that
// is not a terminal gets plain text.
func outputFormat(w io.Writer, f style.Format) style.Format {
	if f != style.FormatAuto {
		return f
	}
	if file, ok := w.(*os.File); ok {
		return style.DetectFormat(file)
	}
	return style.FormatText
}

func newInstallCmd() *cobra.Command {
	var (
		flags  sourceFlags
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:     "install",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}

			result, err := commands.Install(commands.InstallOptions{
				SourceOptions: opts,
				DryRun:        dryRun,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderer := style.NewRenderer(outputFormat(out, style.FormatAuto))
			_, _ = fmt.Fprintln(out, renderer.RenderResult(result))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)

	return cmd
}

func newListCmd() *cobra.Command {
	var (
		flags  sourceFlags
		output string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := style.ParseFormat(output)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid --output").
					WithDetail("output", output)
			}

			opts, err := flags.options()
			if err != nil {
				return err
			}

			plan, err := commands.List(commands.ListOptions{SourceOptions: opts})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			format = outputFormat(out, format)
			switch format {
			case style.FormatJSON, style.FormatYAML:
				data, err := commands.EncodePlan(plan, format)
				if err != nil {
					return err
				}
				_, _ = out.Write(data)
			default:
				_, _ = fmt.Fprintln(out, style.NewRenderer(format).RenderPlan(plan))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "auto", MsgFlagOutput)

	return cmd
}

func newGenConfigCmd() *cobra.Command {
	var opts commands.GenConfigOptions

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.GenConfig(opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !opts.Write {
				_, _ = fmt.Fprint(out, result.ConfigContent)
				return nil
			}
			if len(result.FilesWritten) == 0 {
				path := opts.Path
				if path == "" {
					path = commands.DefaultConfigPath
				}
				_, _ = fmt.Fprintf(out, MsgConfigKept, path)
				return nil
			}
			for _, path := range result.FilesWritten {
				_, _ = fmt.Fprintf(out, MsgConfigWritten, path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().StringVar(&opts.Path, "path", "", MsgFlagPath)
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, MsgFlagForce)

	return cmd
}

func newSyntaxCmd(manager *topics.Manager) *cobra.Command {
	return &cobra.Command{
		Use:       "syntax [guide]",
		Short:     MsgSyntaxShort,
		Long:      MsgSyntaxLong,
		GroupID:   "misc",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"manifest", "rewrite", "variables", "configuration"},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "manifest"
			if len(args) == 1 {
				name = args[0]
			}
			topic, ok := manager.Get(name)
			if !ok {
				return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownTopic, name, strings.Join(manager.Names(), ", "))
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), manager.Render(topic))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
