// cmd/treeinstall/commands_test.go
// TEST TYPE: CLI Integration
// DEPENDENCIES: real filesystem via t.TempDir
// PURPOSE: Test the cobra command tree end to end, from flags to output

package treeinstall

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/treeinstall/pkg/errors"
	"github.com/arthur-debert/treeinstall/pkg/filesystem"
	"github.com/arthur-debert/treeinstall/pkg/style"
	"github.com/arthur-debert/treeinstall/pkg/testutil"
)

const docsConfig = `
[vars]
docdir = "share/doc"

[[specs]]
name = "guide"
manifest = ["recursive-include docs *.txt", "prune docs/img"]
rewrites = [['^docs/', '']]
dest_dir = "$docdir"

[[specs]]
name = "readme"
manifest = ["include README"]
rewrites = [['^README$', 'share/doc/README.txt']]
`

type project struct {
	src    string
	dest   string
	config string
}

func setupProject(t *testing.T) project {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	src := t.TempDir()
	testutil.CreateTree(t, filesystem.NewOS(), src, map[string]string{
		"README":            "readme",
		"docs/guide.txt":    "guide",
		"docs/img/logo.txt": "logo",
	})
	config := filepath.Join(src, "treeinstall.toml")
	require.NoError(t, os.WriteFile(config, []byte(docsConfig), 0644))

	return project{src: src, dest: filepath.Join(t.TempDir(), "dest"), config: config}
}

func (p project) args(cmd string, extra ...string) []string {
	args := []string{cmd, "-c", p.config, "--src", p.src, "--dest", p.dest}
	return append(args, extra...)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	if os.Getenv("XDG_STATE_HOME") == "" {
		t.Setenv("XDG_STATE_HOME", t.TempDir())
	}
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestInstallCmd(t *testing.T) {
	p := setupProject(t)

	out, err := execute(t, p.args("install")...)
	require.NoError(t, err)

	assert.Contains(t, out, "done: docs/guide.txt -> "+filepath.Join(p.dest, "share", "doc", "guide.txt"))
	assert.Contains(t, out, "Copied 2 files")
	assert.Equal(t, map[string]string{
		"share/doc/guide.txt":  "guide",
		"share/doc/README.txt": "readme",
	}, testutil.ReadTree(t, filesystem.NewOS(), p.dest))
}

func TestInstallCmd_Var(t *testing.T) {
	p := setupProject(t)

	_, err := execute(t, p.args("install", "--var", "docdir=manual")...)
	require.NoError(t, err)

	testutil.AssertFileContent(t, filesystem.NewOS(), filepath.Join(p.dest, "manual", "guide.txt"), "guide")
}

func TestInstallCmd_Root(t *testing.T) {
	p := setupProject(t)
	stage := t.TempDir()

	_, err := execute(t, "install", "-c", p.config, "--src", p.src, "--dest", "/opt/app", "--root", stage)
	require.NoError(t, err)

	testutil.AssertFileContent(t, filesystem.NewOS(), filepath.Join(stage, "opt", "app", "share", "doc", "guide.txt"), "guide")
}

func TestInstallCmd_DryRun(t *testing.T) {
	p := setupProject(t)

	out, err := execute(t, p.args("install", "--dry-run")...)
	require.NoError(t, err)

	assert.Contains(t, out, "Dry run: 2 files would be copied")
	testutil.AssertNoFile(t, filesystem.NewOS(), p.dest)
}

func TestInstallCmd_InvalidVar(t *testing.T) {
	p := setupProject(t)

	_, err := execute(t, p.args("install", "--var", "docdir")...)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestInstallCmd_ErrorLocation(t *testing.T) {
	p := setupProject(t)
	require.NoError(t, os.WriteFile(p.config, []byte(`
[[specs]]
manifest = ["include README"]

[[specs]]
manifest = ["include README"]
rewrites = [['^README$', '../../README']]
`), 0644))

	_, err := execute(t, p.args("install")...)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPathEscape))

	rendered := style.NewPlainRenderer().RenderError(err)
	assert.Contains(t, rendered, "spec 1")
	assert.Contains(t, rendered, "path README")
	testutil.AssertNoFile(t, filesystem.NewOS(), p.dest)
}

func TestListCmd_Text(t *testing.T) {
	p := setupProject(t)

	out, err := execute(t, p.args("list")...)
	require.NoError(t, err)

	assert.Contains(t, out, "Install plan: "+p.dest)
	assert.Contains(t, out, "guide ("+p.src+", 1 files)")
	assert.Contains(t, out, "  docs/guide.txt -> share/doc/guide.txt")
	assert.Contains(t, out, "  README -> share/doc/README.txt")
	assert.NotContains(t, out, "logo.txt")
	testutil.AssertNoFile(t, filesystem.NewOS(), p.dest)
}

func TestListCmd_JSON(t *testing.T) {
	p := setupProject(t)

	out, err := execute(t, p.args("list", "-o", "json")...)
	require.NoError(t, err)

	var decoded struct {
		DestRoot   string `json:"dest_root"`
		Operations []struct {
			Spec        int    `json:"spec"`
			Entry       string `json:"entry"`
			Destination string `json:"destination"`
		} `json:"operations"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, p.dest, decoded.DestRoot)
	require.Len(t, decoded.Operations, 2)
	assert.Equal(t, "share/doc/guide.txt", decoded.Operations[0].Destination)
	assert.Equal(t, 1, decoded.Operations[1].Spec)
}

func TestListCmd_YAML(t *testing.T) {
	p := setupProject(t)

	out, err := execute(t, p.args("list", "-o", "yaml")...)
	require.NoError(t, err)

	var decoded struct {
		Specs []struct {
			Label string `yaml:"label"`
			Files int    `yaml:"files"`
		} `yaml:"specs"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Specs, 2)
	assert.Equal(t, "readme", decoded.Specs[1].Label)
	assert.Equal(t, 1, decoded.Specs[1].Files)
}

func TestListCmd_InvalidOutput(t *testing.T) {
	p := setupProject(t)

	_, err := execute(t, p.args("list", "-o", "xml")...)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestGenConfigCmd(t *testing.T) {
	out, err := execute(t, "genconfig")
	require.NoError(t, err)
	assert.Contains(t, out, "[[specs]]")
	assert.Contains(t, out, "docdir")
}

func TestGenConfigCmd_Write(t *testing.T) {
	target := filepath.Join(t.TempDir(), "conf", "treeinstall.toml")

	out, err := execute(t, "genconfig", "-w", "--path", target)
	require.NoError(t, err)
	assert.Equal(t, "Wrote "+target+"\n", out)
	assert.FileExists(t, target)

	out, err = execute(t, "genconfig", "-w", "--path", target)
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")

	out, err = execute(t, "genconfig", "-w", "--path", target, "--force")
	require.NoError(t, err)
	assert.Equal(t, "Wrote "+target+"\n", out)
}

func TestSyntaxCmd(t *testing.T) {
	tests := []struct {
		args     []string
		contains string
	}{
		{[]string{"syntax"}, "# Manifest directives"},
		{[]string{"syntax", "rewrite"}, "# Rewrite rules"},
		{[]string{"syntax", "variables"}, "# Variables"},
		{[]string{"syntax", "configuration"}, "# Configuration"},
		{[]string{"help", "manifest"}, "recursive-include <dir> <pattern>..."},
	}

	for _, tt := range tests {
		t.Run(tt.args[len(tt.args)-1], func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.contains)
		})
	}
}

func TestSyntaxCmd_UnknownGuide(t *testing.T) {
	_, err := execute(t, "syntax", "nope")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "manifest")
}

func TestHelpTopics(t *testing.T) {
	out, err := execute(t, "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "  manifest\n")
	assert.Contains(t, out, "  --dry-run\n")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "treeinstall dev (commit unknown, built unknown)\n", out)
}

func TestCompletionCmd(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "treeinstall")

	_, err = execute(t, "completion", "tcsh")
	require.Error(t, err)
}

func TestRootCmd_NoCommand(t *testing.T) {
	out, err := execute(t)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), MsgErrNoCommand)
	assert.Contains(t, out, "install")
}

func TestParseVars(t *testing.T) {
	vars, err := parseVars([]string{"a=1", "b=x=y", "c=d,e", " name =v"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": "x=y", "c": "d,e", "name": "v"}, vars)

	_, err = parseVars([]string{"=v"})
	require.Error(t, err)
}
