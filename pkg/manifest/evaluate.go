package manifest

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/treeinstall/pkg/logging"
	"github.com/arthur-debert/treeinstall/pkg/types"
)

// Outcome records what a single directive did to the set
type Outcome struct {
	Directive Directive
	Matched   int
}

// Evaluate folds directives over an empty FileSet. Universe is the list of
// candidate paths, usually the result of Walk.
func Evaluate(directives []Directive, universe []string) *FileSet {
	set, _ := evaluate(directives, universe)
	return set
}

func evaluate(directives []Directive, universe []string) (*FileSet, []Outcome) {
	set := NewFileSet()
	outcomes := make([]Outcome, 0, len(directives))

	for _, d := range directives {
		match := d.matcher()
		matched := 0
		if d.Kind.Adds() {
			for _, p := range universe {
				if match(p) {
					matched++
					set.Add(p)
				}
			}
		} else {
			matched = set.RemoveFunc(match)
		}
		outcomes = append(outcomes, Outcome{Directive: d, Matched: matched})
	}

	return set, outcomes
}

// Processor selects source files from a tree
type Processor struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewProcessor creates a processor reading through fsys
func NewProcessor(fsys types.FS) *Processor {
	return &Processor{
		fs:     fsys,
		logger: logging.GetLogger("manifest"),
	}
}

// Select parses lines, walks root and evaluates the directives. Directives
// that match nothing are logged as warnings, not treated as errors.
func (p *Processor) Select(root string, lines []string) (*FileSet, error) {
	directives, err := Parse(lines)
	if err != nil {
		return nil, err
	}

	universe, err := Walk(p.fs, root)
	if err != nil {
		return nil, err
	}
	p.logger.Debug().
		Str("root", root).
		Int("files", len(universe)).
		Msg("Walked source tree")

	set, outcomes := evaluate(directives, universe)
	for _, o := range outcomes {
		if o.Matched > 0 {
			p.logger.Trace().
				Int("line", o.Directive.Line).
				Str("directive", o.Directive.String()).
				Int("matched", o.Matched).
				Msg("Directive applied")
			continue
		}
		p.logger.Warn().
			Int("line", o.Directive.Line).
			Str("directive", o.Directive.String()).
			Str("root", root).
			Msg(noMatchMessage(o.Directive.Kind))
	}

	p.logger.Debug().
		Str("root", root).
		Int("selected", set.Len()).
		Msg("Manifest evaluated")
	return set, nil
}

// Select is a shorthand for NewProcessor(fsys).Select(root, lines)
func Select(fsys types.FS, root string, lines []string) (*FileSet, error) {
	return NewProcessor(fsys).Select(root, lines)
}

func noMatchMessage(kind Kind) string {
	switch kind {
	case Include, GlobalInclude, RecursiveInclude:
		return "no files found matching pattern"
	case Graft:
		return "no directories found matching pattern"
	case Prune:
		return "no previously-included directories found matching pattern"
	default:
		return "no previously-included files found matching pattern"
	}
}
