package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"help/manifest.md":        {Data: []byte("# Manifest\n\nDirectives")},
		"help/option-dry-run.txt": {Data: []byte("Preview only")},
		"help/notes.json":         {Data: []byte("{}")},
	}
}

func TestManager_Load(t *testing.T) {
	m := New(testFS(), Options{})
	require.NoError(t, m.Load())

	assert.Equal(t, []string{"manifest", "option-dry-run"}, m.Names())

	topic, ok := m.Get("manifest")
	require.True(t, ok)
	assert.Equal(t, "# Manifest\n\nDirectives", topic.Content)
	assert.Equal(t, ".md", topic.Ext())

	_, ok = m.Get("notes")
	assert.False(t, ok)
}

func TestManager_CustomExtensions(t *testing.T) {
	m := New(testFS(), Options{Extensions: []string{".json"}})
	require.NoError(t, m.Load())
	assert.Equal(t, []string{"notes"}, m.Names())
}

func TestManager_FlagStyleLookup(t *testing.T) {
	m := New(testFS(), Options{})
	require.NoError(t, m.Load())

	for _, name := range []string{"dry-run", "--dry-run", "-dry-run", "option-dry-run"} {
		topic, ok := m.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, "Preview only", topic.Content)
	}
}

func TestManager_WriteList(t *testing.T) {
	m := New(testFS(), Options{})
	require.NoError(t, m.Load())

	var buf bytes.Buffer
	m.WriteList(&buf, "prog")
	out := buf.String()
	assert.Contains(t, out, "General topics:\n  manifest\n")
	assert.Contains(t, out, "Option topics:\n  --dry-run\n")
	assert.Contains(t, out, "'prog help <topic>'")

	empty := New(fstest.MapFS{}, Options{})
	require.NoError(t, empty.Load())
	buf.Reset()
	empty.WriteList(&buf, "prog")
	assert.Equal(t, "No help topics available.\n", buf.String())
}

type extRenderer struct{}

func (extRenderer) Render(content string, ext string) string {
	return ext + ":" + content
}

func TestInitialize_HelpCommand(t *testing.T) {
	newRoot := func() *cobra.Command {
		root := &cobra.Command{Use: "prog"}
		root.AddCommand(&cobra.Command{Use: "install", Short: "Install files", Run: func(*cobra.Command, []string) {}})
		_, err := Initialize(root, testFS(), Options{Renderer: extRenderer{}})
		require.NoError(t, err)
		return root
	}

	t.Run("topic", func(t *testing.T) {
		root := newRoot()
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetArgs([]string{"help", "manifest"})
		require.NoError(t, root.Execute())
		assert.Equal(t, ".md:# Manifest\n\nDirectives", out.String())
	})

	t.Run("topic list", func(t *testing.T) {
		root := newRoot()
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "Available help topics:")
	})

	t.Run("command falls through", func(t *testing.T) {
		root := newRoot()
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetArgs([]string{"help", "install"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "Install files")
	})
}

func TestGlamourRenderer_NonMarkdownUnchanged(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}

func TestGlamourRenderer_Markdown(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 40}
	out := r.Render("# Title\n\nbody text", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body text")
}
