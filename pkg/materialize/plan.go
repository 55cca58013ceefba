package materialize

import (
	"strings"

	"github.com/arthur-debert/treeinstall/pkg/errors"
	"github.com/arthur-debert/treeinstall/pkg/paths"
	"github.com/arthur-debert/treeinstall/pkg/rewrite"
	"github.com/arthur-debert/treeinstall/pkg/types"
)

// SpecPlan summarizes what one install spec resolved to
type SpecPlan struct {
	Index      int    `json:"index" yaml:"index"`
	Label      string `json:"label" yaml:"label"`
	SourceRoot string `json:"source_root" yaml:"source_root"`
	DestDir    string `json:"dest_dir,omitempty" yaml:"dest_dir,omitempty"`
	Files      int    `json:"files" yaml:"files"`
}

// Collision is a destination written by more than one operation. The last
// entry of Specs is the one whose content ends up on disk.
type Collision struct {
	Target string `json:"target" yaml:"target"`
	Specs  []int  `json:"specs" yaml:"specs"`
}

// Plan is the ordered list of copies an install will perform
type Plan struct {
	DestRoot   string            `json:"dest_root" yaml:"dest_root"`
	Specs      []SpecPlan        `json:"specs" yaml:"specs"`
	Operations []types.Operation `json:"operations" yaml:"operations"`
}

// Collisions returns the targets planned more than once, in first-seen
// order
func (p *Plan) Collisions() []Collision {
	index := map[string]int{}
	var out []Collision
	for _, op := range p.Operations {
		if i, ok := index[op.Target]; ok {
			out[i].Specs = append(out[i].Specs, op.Spec)
			continue
		}
		index[op.Target] = len(out)
		out = append(out, Collision{Target: op.Target, Specs: []int{op.Spec}})
	}

	collisions := out[:0]
	for _, c := range out {
		if len(c.Specs) > 1 {
			collisions = append(collisions, c)
		}
	}
	return collisions
}

// Plan resolves every spec into copy operations without touching the
// destination. The first error aborts planning and carries the spec index.
func (m *Materializer) Plan(specs []types.InstallSpec) (*Plan, error) {
	done := m.logOperation("plan")
	defer done()

	destRoot, err := m.destRoot()
	if err != nil {
		return nil, err
	}
	sourceRoot, err := m.expandField(m.opts.SourceRoot, "source_root")
	if err != nil {
		return nil, err
	}

	plan := &Plan{DestRoot: destRoot}
	for i, spec := range specs {
		sp, ops, err := m.planSpec(i, spec, sourceRoot, destRoot)
		if err != nil {
			return nil, errors.AtSpec(err, i)
		}
		plan.Specs = append(plan.Specs, sp)
		plan.Operations = append(plan.Operations, ops...)
	}

	for _, c := range plan.Collisions() {
		m.logger.Debug().
			Str("target", c.Target).
			Ints("specs", c.Specs).
			Msg("Destination planned by several specs, last one wins")
	}
	m.logger.Info().
		Int("specs", len(specs)).
		Int("operations", len(plan.Operations)).
		Str("dest_root", destRoot).
		Msg("Install planned")
	return plan, nil
}

func (m *Materializer) planSpec(index int, spec types.InstallSpec, sourceRoot, destRoot string) (SpecPlan, []types.Operation, error) {
	label := spec.Label(index)
	logger := m.logger.With().Int("spec", index).Str("label", label).Logger()

	if spec.SourceRoot != "" {
		root, err := m.expandField(spec.SourceRoot, "source_root")
		if err != nil {
			return SpecPlan{}, nil, err
		}
		sourceRoot = root
	}

	destDir, err := m.expandField(spec.DestDir, "dest_dir")
	if err != nil {
		return SpecPlan{}, nil, err
	}
	if err := paths.ValidateSubdir(destDir); err != nil {
		return SpecPlan{}, nil, errors.AddDetail(err, "field", "dest_dir")
	}

	lines, err := m.expandManifest(spec.Manifest)
	if err != nil {
		return SpecPlan{}, nil, err
	}

	chain, err := rewrite.Compile(spec.Rewrites)
	if err != nil {
		return SpecPlan{}, nil, err
	}

	set, err := m.selector.Select(sourceRoot, lines)
	if err != nil {
		return SpecPlan{}, nil, err
	}

	ops := make([]types.Operation, 0, set.Len())
	for _, entry := range set.Paths() {
		dest, err := chain.Apply(entry)
		if err != nil {
			return SpecPlan{}, nil, errors.AddDetail(err, "path", entry)
		}
		ops = append(ops, types.Operation{
			Type:        types.OperationCopyFile,
			Spec:        index,
			Entry:       entry,
			Destination: paths.Relative(destDir, dest),
			Source:      paths.SourcePath(sourceRoot, entry),
			Target:      paths.JoinDestination(destRoot, destDir, dest),
			Status:      types.StatusReady,
		})
		logger.Trace().
			Str("entry", entry).
			Str("destination", dest).
			Msg("Planned copy")
	}

	logger.Debug().
		Str("source_root", sourceRoot).
		Str("dest_dir", destDir).
		Int("files", len(ops)).
		Msg("Spec planned")

	return SpecPlan{
		Index:      index,
		Label:      label,
		SourceRoot: sourceRoot,
		DestDir:    destDir,
		Files:      len(ops),
	}, ops, nil
}

// destRoot resolves the destination root and moves it under the alternate
// root when one is set
func (m *Materializer) destRoot() (string, error) {
	destRoot, err := m.expandField(m.opts.DestRoot, "dest_root")
	if err != nil {
		return "", err
	}
	altRoot, err := m.expandField(m.opts.AltRoot, "root")
	if err != nil {
		return "", err
	}
	return paths.ChangeRoot(altRoot, destRoot), nil
}

func (m *Materializer) expandField(value, field string) (string, error) {
	out, err := m.engine.Expand(value)
	if err != nil {
		return "", errors.AddDetail(err, "field", field)
	}
	return out, nil
}

// expandManifest substitutes variables in directive lines. Comments are
// passed through untouched.
func (m *Materializer) expandManifest(lines []string) ([]string, error) {
	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			out[i] = line
			continue
		}
		expanded, err := m.engine.Expand(line)
		if err != nil {
			return nil, errors.AddDetail(errors.AddDetail(err, "field", "manifest"), "line", i+1)
		}
		out[i] = expanded
	}
	return out, nil
}
