package manifest

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/arthur-debert/treeinstall/pkg/errors"
)

// Kind identifies a directive keyword
type Kind int

const (
	Include Kind = iota + 1
	Exclude
	GlobalInclude
	GlobalExclude
	RecursiveInclude
	RecursiveExclude
	Graft
	Prune
)

var keywords = map[string]Kind{
	"include":           Include,
	"exclude":           Exclude,
	"global-include":    GlobalInclude,
	"global-exclude":    GlobalExclude,
	"recursive-include": RecursiveInclude,
	"recursive-exclude": RecursiveExclude,
	"graft":             Graft,
	"prune":             Prune,
}

// String returns the manifest keyword
func (k Kind) String() string {
	for word, kind := range keywords {
		if kind == k {
			return word
		}
	}
	return "unknown"
}

// Adds reports whether the directive adds files to the set
func (k Kind) Adds() bool {
	switch k {
	case Include, GlobalInclude, RecursiveInclude, Graft:
		return true
	default:
		return false
	}
}

// Directive is one parsed manifest line
type Directive struct {
	Kind Kind

	// Dir is set for recursive-include, recursive-exclude, graft and prune
	Dir string

	// Patterns is set for every kind except graft and prune
	Patterns []string

	// Line is the 1-based position in the manifest, Text the line itself
	Line int
	Text string
}

// String renders the directive back to manifest syntax
func (d Directive) String() string {
	parts := []string{d.Kind.String()}
	if d.Dir != "" {
		parts = append(parts, d.Dir)
	}
	parts = append(parts, d.Patterns...)
	return strings.Join(parts, " ")
}

// Parse parses manifest lines into directives. Blank lines and lines
// starting with '#' are skipped. The first malformed line aborts parsing.
func Parse(lines []string) ([]Directive, error) {
	directives := make([]Directive, 0, len(lines))
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		d, err := ParseLine(i+1, line)
		if err != nil {
			return nil, err
		}
		directives = append(directives, d)
	}
	return directives, nil
}

// ParseLine parses a single manifest line
func ParseLine(lineNo int, line string) (Directive, error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return Directive{}, syntaxError(lineNo, line, "empty directive")
	}

	kind, ok := keywords[words[0]]
	if !ok {
		return Directive{}, syntaxError(lineNo, line, "unknown directive '"+words[0]+"'")
	}

	d := Directive{Kind: kind, Line: lineNo, Text: line}
	args := words[1:]

	switch kind {
	case Include, Exclude, GlobalInclude, GlobalExclude:
		if len(args) < 1 {
			return Directive{}, syntaxError(lineNo, line, "'"+words[0]+"' expects <pattern1> <pattern2> ...")
		}
		d.Patterns = cleanPatterns(args)
	case RecursiveInclude, RecursiveExclude:
		if len(args) < 2 {
			return Directive{}, syntaxError(lineNo, line, "'"+words[0]+"' expects <dir> <pattern1> <pattern2> ...")
		}
		d.Dir = cleanDir(args[0])
		d.Patterns = cleanPatterns(args[1:])
	case Graft, Prune:
		if len(args) != 1 {
			return Directive{}, syntaxError(lineNo, line, "'"+words[0]+"' expects a single <dir>")
		}
		d.Dir = cleanDir(args[0])
	}

	if d.Dir != "" && !doublestar.ValidatePattern(d.Dir) {
		return Directive{}, syntaxError(lineNo, line, "malformed directory pattern '"+d.Dir+"'")
	}
	for _, p := range d.Patterns {
		if !doublestar.ValidatePattern(p) {
			return Directive{}, syntaxError(lineNo, line, "malformed pattern '"+p+"'")
		}
	}

	return d, nil
}

func syntaxError(lineNo int, line, reason string) error {
	return errors.Newf(errors.ErrDirectiveSyntax, "line %d: %s: %q", lineNo, reason, line).
		WithDetail("line", lineNo).
		WithDetail("text", line)
}

func cleanPatterns(patterns []string) []string {
	out := make([]string, len(patterns))
	for i, p := range patterns {
		out[i] = strings.TrimPrefix(p, "./")
	}
	return out
}

// cleanDir normalizes a directory argument; "." and "./" mean the source
// root and become "".
func cleanDir(dir string) string {
	dir = strings.TrimPrefix(dir, "./")
	dir = strings.TrimRight(dir, "/")
	if dir == "." {
		return ""
	}
	return dir
}
