package testutil

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/treeinstall/pkg/types"
)

// CreateFile writes content to path, creating parent directories.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, fsys types.FS, path, content string) string {
	t.Helper()

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// CreateDir creates a directory and its parents
func CreateDir(t *testing.T, fsys types.FS, path string) string {
	t.Helper()

	if err := fsys.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}
	return path
}

// CreateTree creates one file per entry below root. Keys are slash
// separated relative paths, values the file content.
func CreateTree(t *testing.T, fsys types.FS, root string, files map[string]string) {
	t.Helper()

	CreateDir(t, fsys, root)
	for rel, content := range files {
		CreateFile(t, fsys, filepath.Join(root, filepath.FromSlash(rel)), content)
	}
}

// ReadTree returns every regular file below root keyed by its slash
// separated relative path. A missing root yields an empty map.
func ReadTree(t *testing.T, fsys types.FS, root string) map[string]string {
	t.Helper()

	out := map[string]string{}
	if _, err := fsys.Stat(root); err != nil {
		return out
	}
	readTree(t, fsys, root, "", out)
	return out
}

func readTree(t *testing.T, fsys types.FS, root, rel string, out map[string]string) {
	t.Helper()

	dir := filepath.Join(root, filepath.FromSlash(rel))
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read directory %s: %v", dir, err)
	}
	for _, entry := range entries {
		child := entry.Name()
		if rel != "" {
			child = rel + "/" + entry.Name()
		}
		if entry.IsDir() {
			readTree(t, fsys, root, child, out)
			continue
		}
		out[child] = ReadFile(t, fsys, filepath.Join(root, filepath.FromSlash(child)))
	}
}

// TreePaths returns the sorted keys of a tree as returned by ReadTree
func TreePaths(tree map[string]string) []string {
	paths := make([]string, 0, len(tree))
	for p := range tree {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// ReadFile reads the content of a file and returns it as a string.
// It fails the test if the file cannot be read.
func ReadFile(t *testing.T, fsys types.FS, path string) string {
	t.Helper()

	content, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

// FileExists checks if a file exists and is not a directory
func FileExists(t *testing.T, fsys types.FS, path string) bool {
	t.Helper()

	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a directory exists
func DirExists(t *testing.T, fsys types.FS, path string) bool {
	t.Helper()

	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// AssertFileContent checks that a file exists and has the expected content
func AssertFileContent(t *testing.T, fsys types.FS, path, expected string) {
	t.Helper()

	if !FileExists(t, fsys, path) {
		t.Fatalf("File %s does not exist", path)
	}
	if actual := ReadFile(t, fsys, path); actual != expected {
		t.Errorf("File %s content mismatch\nExpected: %q\nActual: %q", path, expected, actual)
	}
}

// AssertNoFile checks that nothing exists at path
func AssertNoFile(t *testing.T, fsys types.FS, path string) {
	t.Helper()

	if _, err := fsys.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("File %s exists but should not", path)
	}
}
