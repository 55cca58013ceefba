// pkg/testutil/testutil_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: afero memory filesystem
// PURPOSE: Verify tree helpers round-trip on an in-memory filesystem

package testutil_test

import (
	"testing"

	"github.com/arthur-debert/treeinstall/pkg/filesystem"
	"github.com/arthur-debert/treeinstall/pkg/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCreateTree_ReadTree(t *testing.T) {
	fsys := filesystem.NewMemory()
	files := map[string]string{
		"README":            "readme",
		"docs/guide.txt":    "guide",
		"docs/img/logo.png": "png",
	}

	testutil.CreateTree(t, fsys, "/src", files)

	assert.Equal(t, files, testutil.ReadTree(t, fsys, "/src"))
	assert.Equal(t, []string{"README", "docs/guide.txt", "docs/img/logo.png"},
		testutil.TreePaths(testutil.ReadTree(t, fsys, "/src")))
	assert.True(t, testutil.DirExists(t, fsys, "/src/docs/img"))
	assert.False(t, testutil.FileExists(t, fsys, "/src/docs"))
	testutil.AssertFileContent(t, fsys, "/src/docs/guide.txt", "guide")
	testutil.AssertNoFile(t, fsys, "/src/missing.txt")
}

func TestReadTree_MissingRoot(t *testing.T) {
	fsys := filesystem.NewMemory()
	assert.Empty(t, testutil.ReadTree(t, fsys, "/nowhere"))
}
