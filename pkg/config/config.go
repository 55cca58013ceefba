package config

import (
	"github.com/arthur-debert/treeinstall/pkg/errors"
	"github.com/arthur-debert/treeinstall/pkg/types"
)

// Config is the complete install configuration
type Config struct {
	SourceRoot string              `koanf:"source_root" toml:"source_root" yaml:"source_root"`
	DestRoot   string              `koanf:"dest_root" toml:"dest_root" yaml:"dest_root"`
	Root       string              `koanf:"root" toml:"root,omitempty" yaml:"root,omitempty"`
	Vars       map[string]string   `koanf:"vars" toml:"vars" yaml:"vars"`
	Specs      []types.InstallSpec `koanf:"specs" toml:"specs" yaml:"specs"`
}

// Validate checks the configuration for problems that can be detected
// without touching the filesystem
func (c *Config) Validate() error {
	if len(c.Specs) == 0 {
		return errors.New(errors.ErrConfigValid, "no install specs configured")
	}
	for i, spec := range c.Specs {
		if len(spec.Manifest) == 0 {
			return errors.Newf(errors.ErrConfigValid, "%s has an empty manifest", spec.Label(i)).
				WithDetail("spec", i)
		}
		for j, rw := range spec.Rewrites {
			if rw.Pattern == "" {
				return errors.Newf(errors.ErrConfigValid, "%s: rewrite %d has an empty pattern", spec.Label(i), j).
					WithDetail("spec", i).
					WithDetail("rule", j)
			}
		}
	}
	return nil
}
