// Package types defines the core types and interfaces shared by the
// treeinstall packages: the filesystem abstraction, install specs with their
// rewrite pairs, and the copy operations produced by planning and applying
// them.
package types
