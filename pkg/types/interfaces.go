package types

import (
	"io/fs"
)

// FS is the filesystem interface required for tree operations.
// The engine only ever reads sources and creates directories and regular
// files under the destination, so nothing here removes or links entries.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
}
