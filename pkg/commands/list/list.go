package list

import (
	"bytes"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/treeinstall/pkg/commands/internal"
	"github.com/arthur-debert/treeinstall/pkg/errors"
	"github.com/arthur-debert/treeinstall/pkg/logging"
	"github.com/arthur-debert/treeinstall/pkg/materialize"
	"github.com/arthur-debert/treeinstall/pkg/style"
)

// ListOptions defines the options for the List command
type ListOptions struct {
	internal.SourceOptions
}

// List plans every configured install spec without copying anything
func List(opts ListOptions) (*materialize.Plan, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "List").Msg("Executing command")

	cfg, err := internal.LoadConfig(opts.SourceOptions)
	if err != nil {
		return nil, err
	}

	plan, err := internal.NewMaterializer(opts.SourceOptions, cfg, true).Plan(cfg.Specs)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "List").Int("operations", len(plan.Operations)).Msg("Command finished")
	return plan, nil
}

// Encode serializes a plan in a machine readable format
func Encode(plan *materialize.Plan, format style.Format) ([]byte, error) {
	switch format {
	case style.FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(plan); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode plan as JSON")
		}
		return buf.Bytes(), nil
	case style.FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(plan); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode plan as YAML")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode plan as YAML")
		}
		return buf.Bytes(), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "format %s is not a data format", format).
			WithDetail("format", format.String())
	}
}
