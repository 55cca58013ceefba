// Package testutil provides helpers for building and inspecting file trees
// in tests.
//
// Every helper works against types.FS, so the same test body can run on the
// real filesystem (filesystem.NewOS with t.TempDir) or in memory
// (filesystem.NewMemory).
package testutil
