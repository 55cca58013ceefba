// Package rewrite turns source-relative paths into destination-relative
// paths through an ordered chain of regular expression substitutions.
//
// Each rule replaces every match of its pattern in the output of the
// previous rule. Replacements use backreference syntax (\1, \g<1>,
// \g<name>); they are translated to Go's ${1} form once, at compile time.
package rewrite

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/treeinstall/pkg/errors"
	"github.com/arthur-debert/treeinstall/pkg/paths"
	"github.com/arthur-debert/treeinstall/pkg/types"
)

// Rule is a compiled rewrite pair
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string // Go template syntax
	Source      types.RewritePair
}

// Apply runs the rule over s
func (r Rule) Apply(s string) string {
	return r.Pattern.ReplaceAllString(s, r.Replacement)
}

// Chain is an ordered sequence of rules. The zero value is the identity.
type Chain []Rule

// Compile compiles raw pairs into a chain. A nil or empty slice yields the
// identity chain.
func Compile(pairs []types.RewritePair) (Chain, error) {
	chain := make(Chain, 0, len(pairs))
	for i, pair := range pairs {
		re, err := regexp.Compile(pair.Pattern)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidRewrite,
				"invalid rewrite pattern %q", pair.Pattern).
				WithDetail("rule", i).
				WithDetail("pattern", pair.Pattern)
		}
		chain = append(chain, Rule{
			Pattern:     re,
			Replacement: TranslateReplacement(pair.Replace),
			Source:      pair,
		})
	}
	return chain, nil
}

// MustCompile is like Compile but panics on error
func MustCompile(pairs ...types.RewritePair) Chain {
	chain, err := Compile(pairs)
	if err != nil {
		panic(err)
	}
	return chain
}

// Transform folds the chain over p without validating the result
func (c Chain) Transform(p string) string {
	for _, rule := range c {
		p = rule.Apply(p)
	}
	return p
}

// Apply folds the chain over p and checks that the result is a relative
// path that cannot leave the destination root.
func (c Chain) Apply(p string) (string, error) {
	out := c.Transform(p)
	if err := paths.ValidateRelative(out); err != nil {
		if treeErr, ok := err.(*errors.TreeError); ok {
			treeErr.WithDetail("source", p)
		}
		return "", err
	}
	return out, nil
}

// Then returns a chain applying c and then next
func (c Chain) Then(next Chain) Chain {
	out := make(Chain, 0, len(c)+len(next))
	out = append(out, c...)
	return append(out, next...)
}

// TranslateReplacement converts a backslash style replacement template into
// the form expected by regexp.ReplaceAllString:
//
//	\1, \12       -> ${1}, ${12}
//	\g<1>         -> ${1}
//	\g<name>      -> ${name}
//	\\            -> \
//	\n, \t        -> newline, tab
//	$             -> $$
//
// Any other backslash sequence is kept literally.
func TranslateReplacement(repl string) string {
	if !strings.ContainsAny(repl, `\$`) {
		return repl
	}

	var b strings.Builder
	for i := 0; i < len(repl); i++ {
		c := repl[i]
		if c == '$' {
			b.WriteString("$$")
			continue
		}
		if c != '\\' || i+1 == len(repl) {
			b.WriteByte(c)
			continue
		}

		next := repl[i+1]
		switch {
		case next == '\\':
			b.WriteByte('\\')
			i++
		case next == 'n':
			b.WriteByte('\n')
			i++
		case next == 't':
			b.WriteByte('\t')
			i++
		case isDigit(next):
			j := i + 1
			// at most two digits, like \10
			for j < len(repl) && j < i+3 && isDigit(repl[j]) {
				j++
			}
			b.WriteString("${" + repl[i+1:j] + "}")
			i = j - 1
		case next == 'g' && i+2 < len(repl) && repl[i+2] == '<':
			end := strings.IndexByte(repl[i+3:], '>')
			if end < 0 {
				b.WriteByte(c)
				continue
			}
			name := repl[i+3 : i+3+end]
			b.WriteString("${" + name + "}")
			i = i + 3 + end
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
