package manifest

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/treeinstall/pkg/errors"
	"github.com/arthur-debert/treeinstall/pkg/types"
)

// Walk lists every regular file below root as a sorted slash separated
// relative path. A missing root yields an empty list. Symlinks are followed;
// a directory link pointing back at one of its own ancestors is skipped, and
// dangling links are ignored.
func Walk(fsys types.FS, root string) ([]string, error) {
	if root == "" {
		root = "."
	}

	info, err := fsys.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat source root %s", root).
			WithDetail("path", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrFileAccess, "source root %s is not a directory", root).
			WithDetail("path", root)
	}

	files := []string{}
	if err := walkDir(fsys, root, "", []fs.FileInfo{info}, &files); err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func walkDir(fsys types.FS, root, rel string, ancestors []fs.FileInfo, files *[]string) error {
	dir := filepath.Join(root, filepath.FromSlash(rel))
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read directory %s", dir).
			WithDetail("path", dir)
	}

	for _, entry := range entries {
		child := path.Join(rel, entry.Name())
		full := filepath.Join(root, filepath.FromSlash(child))
		switch {
		case entry.IsDir():
			info, err := fsys.Stat(full)
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat directory %s", full).
					WithDetail("path", full)
			}
			if err := walkDir(fsys, root, child, append(ancestors, info), files); err != nil {
				return err
			}
		case entry.Type()&fs.ModeSymlink != 0:
			info, err := fsys.Stat(full)
			if err != nil {
				continue
			}
			if info.Mode().IsRegular() {
				*files = append(*files, child)
				continue
			}
			if !info.IsDir() || isAncestor(ancestors, info) {
				continue
			}
			if err := walkDir(fsys, root, child, append(ancestors, info), files); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			*files = append(*files, child)
		}
	}
	return nil
}

// isAncestor reports whether info is one of the directories on the current
// walk path
func isAncestor(ancestors []fs.FileInfo, info fs.FileInfo) bool {
	for _, a := range ancestors {
		if os.SameFile(a, info) {
			return true
		}
	}
	return false
}
