package types

import "strconv"

// RewritePair is one (pattern, replacement) rewrite rule in its raw,
// uncompiled form. Replacements use backreference syntax (\1, \2, ...).
type RewritePair struct {
	Pattern string `koanf:"pattern" json:"pattern" yaml:"pattern" toml:"pattern"`
	Replace string `koanf:"replace" json:"replace" yaml:"replace" toml:"replace"`
}

// InstallSpec is one unit of the install: a manifest template selecting
// source files, a rewrite chain turning source paths into destination paths,
// and an optional destination subdirectory. Specs are processed in order
// against a shared destination root.
type InstallSpec struct {
	// Name is an optional label used in logs and reports
	Name string `koanf:"name" json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`

	// Manifest holds MANIFEST.in style directive lines
	Manifest []string `koanf:"manifest" json:"manifest" yaml:"manifest" toml:"manifest"`

	// Rewrites is applied left to right; empty means identity
	Rewrites []RewritePair `koanf:"rewrites" json:"rewrites,omitempty" yaml:"rewrites,omitempty" toml:"rewrites,omitempty"`

	// DestDir is relative to the destination root; empty means the root itself
	DestDir string `koanf:"dest_dir" json:"dest_dir,omitempty" yaml:"dest_dir,omitempty" toml:"dest_dir,omitempty"`

	// SourceRoot overrides the run-level source root for this spec
	SourceRoot string `koanf:"source_root" json:"source_root,omitempty" yaml:"source_root,omitempty" toml:"source_root,omitempty"`
}

// Label returns the spec name, or its position when unnamed
func (s InstallSpec) Label(index int) string {
	if s.Name != "" {
		return s.Name
	}
	return "spec " + strconv.Itoa(index)
}
