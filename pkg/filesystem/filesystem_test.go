package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/treeinstall/pkg/filesystem"
	"github.com/arthur-debert/treeinstall/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseFS(t *testing.T, fsys types.FS, root string) {
	t.Helper()

	testFile := filepath.Join(root, "test.txt")
	testContent := []byte("hello world")

	require.NoError(t, fsys.WriteFile(testFile, testContent, 0644))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fsys.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	subDir := filepath.Join(root, "sub", "dir")
	require.NoError(t, fsys.MkdirAll(subDir, 0755))
	// Creating it again is not an error
	require.NoError(t, fsys.MkdirAll(subDir, 0755))

	entries, err := fsys.ReadDir(root)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"test.txt", "sub"}, names)

	_, err = fsys.ReadFile(subDir)
	assert.Error(t, err, "reading a directory should fail")

	_, err = fsys.Stat(filepath.Join(root, "missing"))
	assert.True(t, os.IsNotExist(err))
}

func TestNewOS(t *testing.T) {
	exerciseFS(t, filesystem.NewOS(), t.TempDir())
}

func TestNewMemory(t *testing.T) {
	exerciseFS(t, filesystem.NewMemory(), "/work")
}

func TestAferoFS_WriteOverDirectory(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/out/readme.txt", 0755))

	err := fsys.WriteFile("/out/readme.txt", []byte("x"), 0644)
	assert.Error(t, err)
}
