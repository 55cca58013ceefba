// Package paths provides path validation and joining for treeinstall.
//
// Source files are tracked as slash separated paths relative to a source
// root; destination paths are slash separated paths relative to the
// destination root. This package converts between those and host paths and
// enforces that no destination escapes its root:
//
//   - ValidateRelative rejects empty, absolute and ".."-containing paths
//   - ChangeRoot re-roots an absolute path under an alternate root (staged
//     installs)
//   - JoinDestination / SourcePath build host paths from the relative forms
package paths
