// Package manifest implements the MANIFEST.in template language used to
// select source files.
//
// A manifest is a list of directive lines:
//
//	include <pattern>...
//	exclude <pattern>...
//	global-include <pattern>...
//	global-exclude <pattern>...
//	recursive-include <dir> <pattern>...
//	recursive-exclude <dir> <pattern>...
//	graft <dir>
//	prune <dir>
//
// Directives are applied in order to an initially empty FileSet, so a later
// exclude or prune removes files an earlier include added. Patterns are
// shell globs matched with doublestar: '*' and '?' stay inside one path
// component and '**' crosses directories. Directory arguments may be globs
// as well.
//
// Paths in a FileSet are slash separated and relative to the source root
// the universe was walked from.
package manifest
