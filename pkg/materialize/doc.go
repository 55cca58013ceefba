// Package materialize assembles a destination tree from ordered install
// specs.
//
// Each spec selects files from a source root with a manifest, maps every
// selected path through a rewrite chain and places the result below an
// optional subdirectory of the shared destination root. Installing is split
// in two phases:
//
//   - Plan resolves variables, parses manifests, walks source trees and
//     computes every destination. Syntax, substitution and path escape
//     errors surface here, before anything is written.
//   - Apply executes the planned copies strictly in order. Directories are
//     created as needed; existing files are overwritten, so when two specs
//     target the same path the later spec wins.
//
// Apply stops at the first filesystem error. Files copied before the
// failure stay in place; the destination is left partially populated and
// nothing is rolled back.
package materialize
