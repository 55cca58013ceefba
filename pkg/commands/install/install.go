package install

import (
	"github.com/arthur-debert/treeinstall/pkg/commands/internal"
	"github.com/arthur-debert/treeinstall/pkg/logging"
	"github.com/arthur-debert/treeinstall/pkg/types"
)

// InstallOptions defines the options for the Install command
type InstallOptions struct {
	internal.SourceOptions

	// DryRun plans the install without writing anything
	DryRun bool
}

// Install materializes every configured install spec
func Install(opts InstallOptions) (*types.Result, error) {
	log := logging.GetLogger("commands.install")
	log.Debug().Str("command", "Install").Bool("dryRun", opts.DryRun).Msg("Executing command")

	cfg, err := internal.LoadConfig(opts.SourceOptions)
	if err != nil {
		return nil, err
	}

	result, err := internal.NewMaterializer(opts.SourceOptions, cfg, opts.DryRun).Install(cfg.Specs)
	if err != nil {
		return result, err
	}

	log.Info().
		Str("command", "Install").
		Int("copied", result.Copied()).
		Int("dirs", len(result.CreatedDirs)).
		Msg("Command finished")
	return result, nil
}
