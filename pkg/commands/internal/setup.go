// Package internal holds the configuration and materializer setup shared by
// the install and list commands.
package internal

import (
	"github.com/arthur-debert/treeinstall/pkg/config"
	"github.com/arthur-debert/treeinstall/pkg/filesystem"
	"github.com/arthur-debert/treeinstall/pkg/materialize"
	"github.com/arthur-debert/treeinstall/pkg/subst"
	"github.com/arthur-debert/treeinstall/pkg/types"
)

// SourceOptions selects the configuration and the roots of a run
type SourceOptions struct {
	// ConfigFile is an explicit configuration file; empty searches the
	// working directory
	ConfigFile string

	// SearchDir overrides where default configuration files are looked for
	SearchDir string

	// SourceRoot, DestRoot and Root override the configured roots when set
	SourceRoot string
	DestRoot   string
	Root       string

	// Vars are merged over the configured variables
	Vars map[string]string

	// FileSystem to read and write through; nil means the real filesystem
	FileSystem types.FS
}

// LoadConfig loads and validates the configuration with flag overrides
func LoadConfig(opts SourceOptions) (*config.Config, error) {
	overrides := map[string]interface{}{}
	if opts.SourceRoot != "" {
		overrides["source_root"] = opts.SourceRoot
	}
	if opts.DestRoot != "" {
		overrides["dest_root"] = opts.DestRoot
	}
	if opts.Root != "" {
		overrides["root"] = opts.Root
	}
	for name, value := range opts.Vars {
		overrides["vars."+name] = value
	}

	cfg, err := config.Load(config.LoadOptions{
		File:      opts.ConfigFile,
		SearchDir: opts.SearchDir,
		Overrides: overrides,
	})
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewMaterializer builds a materializer for cfg
func NewMaterializer(opts SourceOptions, cfg *config.Config, dryRun bool) *materialize.Materializer {
	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return materialize.New(fsys, materialize.Options{
		SourceRoot: cfg.SourceRoot,
		DestRoot:   cfg.DestRoot,
		AltRoot:    cfg.Root,
		Vars:       subst.Context(cfg.Vars),
		DryRun:     dryRun,
	})
}
