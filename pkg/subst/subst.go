// Package subst resolves $name and ${name} variables in install paths and
// manifest lines.
//
// Variables are looked up in an explicit Context first and then in the
// process environment. An unresolved variable is an error: a path with a
// literal "$docdir" left in it would silently install to the wrong place.
// Expansion is single pass; values are inserted verbatim and never expanded
// again.
package subst

import (
	"os"
	"regexp"
	"strings"

	"github.com/arthur-debert/treeinstall/pkg/errors"
)

// Context maps variable names to values. It takes precedence over the
// environment.
type Context map[string]string

// LookupFunc resolves a variable that is not in the Context
type LookupFunc func(name string) (string, bool)

// tokenPattern matches $$, ${name} and $name
var tokenPattern = regexp.MustCompile(`\$(?:\$|\{([A-Za-z_][A-Za-z0-9_]*)\}|([A-Za-z_][A-Za-z0-9_]*))`)

// Engine expands variables against a Context and a fallback lookup
type Engine struct {
	vars   Context
	lookup LookupFunc
}

// Option configures an Engine
type Option func(*Engine)

// WithLookupEnv replaces the environment fallback
func WithLookupEnv(fn LookupFunc) Option {
	return func(e *Engine) {
		e.lookup = fn
	}
}

// NewEngine creates an engine that consults vars before the environment
func NewEngine(vars Context, opts ...Option) *Engine {
	e := &Engine{
		vars:   vars,
		lookup: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Resolve returns the value of a single variable
func (e *Engine) Resolve(name string) (string, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.lookup == nil {
		return "", false
	}
	return e.lookup(name)
}

// Expand replaces every variable token in s. The first unresolved variable
// aborts with ErrSubstitution naming the variable and the input string.
func (e *Engine) Expand(s string) (string, error) {
	if !strings.Contains(s, "$") {
		return s, nil
	}

	var missing string
	out := tokenPattern.ReplaceAllStringFunc(s, func(token string) string {
		if missing != "" {
			return token
		}
		if token == "$$" {
			return "$"
		}
		name := strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(token, "$"), "{"), "}")
		value, ok := e.Resolve(name)
		if !ok {
			missing = name
			return token
		}
		return value
	})

	if missing != "" {
		return "", errors.Newf(errors.ErrSubstitution, "undefined variable '%s' in %q", missing, s).
			WithDetail("variable", missing).
			WithDetail("input", s)
	}
	return out, nil
}

// ExpandAll expands every string in order, stopping at the first error
func (e *Engine) ExpandAll(in []string) ([]string, error) {
	out := make([]string, len(in))
	for i, s := range in {
		expanded, err := e.Expand(s)
		if err != nil {
			return nil, err
		}
		out[i] = expanded
	}
	return out, nil
}

// Expand is a shorthand for NewEngine(vars).Expand(s)
func Expand(s string, vars Context) (string, error) {
	return NewEngine(vars).Expand(s)
}

// ExpandAll is a shorthand for NewEngine(vars).ExpandAll(in)
func ExpandAll(in []string, vars Context) ([]string, error) {
	return NewEngine(vars).ExpandAll(in)
}
