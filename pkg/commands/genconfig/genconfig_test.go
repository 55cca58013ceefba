package genconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/treeinstall/pkg/commands/genconfig"
	"github.com/arthur-debert/treeinstall/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenConfig_Stdout(t *testing.T) {
	result, err := genconfig.GenConfig(genconfig.GenConfigOptions{})
	require.NoError(t, err)

	assert.Contains(t, result.ConfigContent, "[[specs]]")
	assert.Contains(t, result.ConfigContent, "recursive-include lib *.py *.txt")
	assert.Empty(t, result.FilesWritten)
}

func TestGenConfig_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "treeinstall.toml")

	result, err := genconfig.GenConfig(genconfig.GenConfigOptions{Write: true, Path: path})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, result.FilesWritten)

	cfg, err := config.Load(config.LoadOptions{File: path, NoDefaults: true})
	require.NoError(t, err)
	assert.Len(t, cfg.Specs, 4)
	assert.NoError(t, cfg.Validate())
}

func TestGenConfig_KeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "treeinstall.toml")
	require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0644))

	result, err := genconfig.GenConfig(genconfig.GenConfigOptions{Write: true, Path: path})
	require.NoError(t, err)
	assert.Empty(t, result.FilesWritten)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# mine\n", string(content))

	result, err = genconfig.GenConfig(genconfig.GenConfigOptions{Write: true, Path: path, Force: true})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, result.FilesWritten)
}
