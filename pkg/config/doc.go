// Package config loads install configuration.
//
// Sources are layered with koanf, later ones overriding earlier ones:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. a configuration file, TOML or YAML by extension
//  3. TREEINSTALL_* environment variables
//  4. explicit overrides, usually command line flags
//
// Maps are merged key by key; lists such as specs are replaced as a whole,
// so a configuration file that declares specs drops the built-in ones.
//
// Rewrite rules may be written as tables ({pattern = "...", replace = "..."})
// or as two element arrays (["pattern", "replace"]).
package config
