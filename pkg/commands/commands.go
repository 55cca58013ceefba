// Package commands provides the command implementations behind the CLI.
//
// Each command is implemented in its own subdirectory:
//   - install/   - Install command
//   - list/      - List command
//   - genconfig/ - GenConfig command
//   - internal/  - Shared configuration and materializer setup
//
// This file re-exports the command functions.
package commands

import (
	"github.com/arthur-debert/treeinstall/pkg/commands/genconfig"
	"github.com/arthur-debert/treeinstall/pkg/commands/install"
	"github.com/arthur-debert/treeinstall/pkg/commands/internal"
	"github.com/arthur-debert/treeinstall/pkg/commands/list"
	"github.com/arthur-debert/treeinstall/pkg/materialize"
	"github.com/arthur-debert/treeinstall/pkg/style"
	"github.com/arthur-debert/treeinstall/pkg/types"
)

// SourceOptions selects the configuration and the roots of a run
type SourceOptions = internal.SourceOptions

// Install materializes every configured install spec.
type InstallOptions = install.InstallOptions

func Install(opts InstallOptions) (*types.Result, error) {
	return install.Install(opts)
}

// List plans every configured install spec without copying.
type ListOptions = list.ListOptions

func List(opts ListOptions) (*materialize.Plan, error) {
	return list.List(opts)
}

// EncodePlan serializes a plan as JSON or YAML.
func EncodePlan(plan *materialize.Plan, format style.Format) ([]byte, error) {
	return list.Encode(plan, format)
}

// DefaultConfigPath is where genconfig writes when no path is given
const DefaultConfigPath = genconfig.DefaultPath

// GenConfig renders the built-in configuration.
type GenConfigOptions = genconfig.GenConfigOptions

type GenConfigResult = genconfig.GenConfigResult

func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}
