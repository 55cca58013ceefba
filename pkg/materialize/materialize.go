package materialize

import (
	"fmt"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/treeinstall/pkg/errors"
	"github.com/arthur-debert/treeinstall/pkg/logging"
	"github.com/arthur-debert/treeinstall/pkg/manifest"
	"github.com/arthur-debert/treeinstall/pkg/subst"
	"github.com/arthur-debert/treeinstall/pkg/types"
)

// Options configures a Materializer. Every root is subject to variable
// substitution.
type Options struct {
	// SourceRoot is the default root manifests are evaluated against;
	// empty means the working directory
	SourceRoot string

	// DestRoot is the root every destination is placed under; empty means
	// destinations are relative to the working directory
	DestRoot string

	// AltRoot relocates DestRoot for staged installs, see paths.ChangeRoot
	AltRoot string

	// Vars is consulted before the process environment
	Vars subst.Context

	// Lookup replaces the environment fallback when set
	Lookup subst.LookupFunc

	// DryRun makes Install stop after planning
	DryRun bool
}

// Materializer plans and applies install specs
type Materializer struct {
	fs       types.FS
	opts     Options
	engine   *subst.Engine
	selector *manifest.Processor
	logger   zerolog.Logger
}

// New creates a materializer reading and writing through fsys
func New(fsys types.FS, opts Options) *Materializer {
	var substOpts []subst.Option
	if opts.Lookup != nil {
		substOpts = append(substOpts, subst.WithLookupEnv(opts.Lookup))
	}
	return &Materializer{
		fs:       fsys,
		opts:     opts,
		engine:   subst.NewEngine(opts.Vars, substOpts...),
		selector: manifest.NewProcessor(fsys),
		logger:   logging.GetLogger("materialize"),
	}
}

// Install plans specs and, unless DryRun is set, applies the plan
func (m *Materializer) Install(specs []types.InstallSpec) (*types.Result, error) {
	plan, err := m.Plan(specs)
	if err != nil {
		return nil, err
	}

	if m.opts.DryRun {
		m.logger.Info().Msg("Dry run mode - operations would be executed:")
		result := &types.Result{DestRoot: plan.DestRoot, DryRun: true}
		for _, op := range plan.Operations {
			m.logger.Info().
				Str("source", op.Source).
				Str("target", op.Target).
				Msg("Would copy")
			result.Operations = append(result.Operations, types.OperationResult{Operation: op})
		}
		return result, nil
	}

	return m.Apply(plan)
}

// Apply executes the plan in order. It stops at the first error; copies made
// before it are kept and reported in the returned result.
func (m *Materializer) Apply(plan *Plan) (*types.Result, error) {
	done := m.logOperation("apply")
	defer done()

	result := &types.Result{DestRoot: plan.DestRoot}
	known := map[string]bool{}

	for _, op := range plan.Operations {
		if op.Status != types.StatusReady {
			m.logger.Debug().
				Str("type", string(op.Type)).
				Str("target", op.Target).
				Str("status", string(op.Status)).
				Msg("Skipping operation with non-ready status")
			continue
		}

		created, err := m.ensureDir(filepath.Dir(op.Target), known)
		result.CreatedDirs = append(result.CreatedDirs, created...)
		if err != nil {
			op.Status = types.StatusError
			result.Operations = append(result.Operations, types.OperationResult{Operation: op})
			return result, errors.AtSpec(errors.AddDetail(err, "path", op.Entry), op.Spec)
		}

		opResult, err := m.copyFile(op)
		result.Operations = append(result.Operations, opResult)
		if err != nil {
			return result, errors.AtSpec(errors.AddDetail(err, "path", op.Entry), op.Spec)
		}
	}

	m.logger.Info().
		Int("copied", result.Copied()).
		Int("dirs", len(result.CreatedDirs)).
		Str("dest_root", plan.DestRoot).
		Msg("Install applied")
	return result, nil
}

// ensureDir creates dir and any missing parents. Existing directories are
// fine; a non-directory anywhere on the way is an error. Known holds
// directories already verified during this run.
func (m *Materializer) ensureDir(dir string, known map[string]bool) ([]string, error) {
	if known[dir] {
		return nil, nil
	}

	var missing []string
	for current := dir; ; {
		info, err := m.fs.Stat(current)
		if err == nil {
			if !info.IsDir() {
				return nil, errors.Newf(errors.ErrDirCreate,
					"cannot create directory %s: %s exists and is not a directory", dir, current).
					WithDetail("target", current)
			}
			break
		}
		missing = append(missing, current)

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	if len(missing) > 0 {
		if err := m.fs.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", dir).
				WithDetail("target", dir)
		}
		m.logger.Debug().Str("dir", dir).Msg("Created directory")
	}

	created := make([]string, 0, len(missing))
	for i := len(missing) - 1; i >= 0; i-- {
		created = append(created, missing[i])
		known[missing[i]] = true
	}
	known[dir] = true
	return created, nil
}

func (m *Materializer) copyFile(op types.Operation) (types.OperationResult, error) {
	result := types.OperationResult{Operation: op}
	result.Operation.Status = types.StatusError

	if info, err := m.fs.Stat(op.Target); err == nil && info.IsDir() {
		return result, errors.Newf(errors.ErrFileWrite,
			"cannot write %s: a directory occupies the destination", op.Target).
			WithDetail("target", op.Target)
	}

	data, err := m.fs.ReadFile(op.Source)
	if err != nil {
		return result, errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", op.Source).
			WithDetail("source", op.Source)
	}

	if err := m.fs.WriteFile(op.Target, data, 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", op.Target).
			WithDetail("target", op.Target)
	}

	result.Operation.Status = types.StatusDone
	result.Size = int64(len(data))
	result.Checksum = fmt.Sprintf("%016x", xxhash.Sum64(data))

	m.logger.Debug().
		Str("source", op.Source).
		Str("target", op.Target).
		Int64("size", result.Size).
		Msg("Copied file")
	return result, nil
}

func (m *Materializer) logOperation(operation string) func() {
	return logging.LogOperationStart(m.logger, operation)
}
