package paths

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/treeinstall/pkg/errors"
)

// ValidatePath performs basic validation on a path.
// It checks for:
// - Empty paths
// - Null bytes
// - Excessive path length
func ValidatePath(p string) error {
	if p == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if strings.Contains(p, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	// Check path length (common filesystem limit)
	if len(p) > 4096 {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}

// ValidateRelative checks that a slash separated destination path stays
// inside the root it will be joined to: it must not be empty, absolute, or
// contain a ".." segment anywhere.
func ValidateRelative(p string) error {
	if err := ValidatePath(p); err != nil {
		return errors.Wrapf(err, errors.ErrPathEscape, "invalid destination path %q", p).
			WithDetail("destination", p)
	}

	if IsAbsolutePath(p) {
		return errors.Newf(errors.ErrPathEscape, "destination path %q is absolute", p).
			WithDetail("destination", p)
	}

	for _, segment := range strings.Split(filepath.ToSlash(p), "/") {
		if segment == ".." {
			return errors.Newf(errors.ErrPathEscape, "destination path %q escapes the destination root", p).
				WithDetail("destination", p)
		}
	}

	if cleaned := path.Clean(filepath.ToSlash(p)); cleaned == "." {
		return errors.Newf(errors.ErrPathEscape, "destination path %q resolves to the destination root", p).
			WithDetail("destination", p)
	}

	return nil
}

// ValidateSubdir is ValidateRelative for optional destination
// subdirectories, where empty means "no subdirectory".
func ValidateSubdir(dir string) error {
	if dir == "" {
		return nil
	}
	return ValidateRelative(dir)
}

// IsAbsolutePath returns true if the path is absolute, either for the host
// OS or as a slash rooted path.
func IsAbsolutePath(p string) bool {
	return filepath.IsAbs(p) || strings.HasPrefix(p, "/") || strings.HasPrefix(p, `\`)
}

// ChangeRoot returns pathname prefixed with newRoot. Relative pathnames are
// joined to newRoot; absolute ones have their leading separator (and volume)
// dropped first, so "/usr/share/doc" under "/tmp/stage" becomes
// "/tmp/stage/usr/share/doc". An empty newRoot returns pathname unchanged.
func ChangeRoot(newRoot, pathname string) string {
	if newRoot == "" {
		return pathname
	}
	if !IsAbsolutePath(pathname) {
		return filepath.Join(newRoot, pathname)
	}
	trimmed := strings.TrimPrefix(pathname, filepath.VolumeName(pathname))
	trimmed = strings.TrimLeft(trimmed, `/\`)
	return filepath.Join(newRoot, trimmed)
}

// JoinDestination joins the destination root, an optional subdirectory and
// a slash separated relative path into a host path. An empty root yields a
// path relative to the working directory.
func JoinDestination(root, subdir, rel string) string {
	elems := make([]string, 0, 3)
	if root != "" {
		elems = append(elems, root)
	}
	if subdir != "" {
		elems = append(elems, filepath.FromSlash(subdir))
	}
	elems = append(elems, filepath.FromSlash(rel))
	return filepath.Join(elems...)
}

// Relative joins subdir and rel into the slash separated destination path
// reported to callers.
func Relative(subdir, rel string) string {
	if subdir == "" {
		return path.Clean(rel)
	}
	return path.Join(filepath.ToSlash(subdir), rel)
}

// SourcePath turns a slash separated source-relative entry into a host path
// under root. An empty root means the working directory.
func SourcePath(root, entry string) string {
	if root == "" {
		return filepath.FromSlash(entry)
	}
	return filepath.Join(root, filepath.FromSlash(entry))
}
