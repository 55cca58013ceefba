package manifest

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Glob semantics: case sensitive, '*' and '?' never cross '/', '[...]'
// classes, '**' spans directories.

// matchPath matches a pattern against the whole relative path. Patterns
// are validated by ParseLine, so Match cannot report ErrBadPattern here.
func matchPath(pattern, p string) bool {
	ok, _ := doublestar.Match(pattern, p)
	return ok
}

// matchTail matches a pattern against the trailing components of p. A
// pattern with n segments is compared with the last n segments of p, so
// "*.txt" looks at the file name and "img/*.png" at the parent and the name.
func matchTail(pattern, p string) bool {
	if strings.Contains(pattern, "**") {
		return matchPath(pattern, p) || matchPath("**/"+pattern, p)
	}
	segments := strings.Split(p, "/")
	n := strings.Count(pattern, "/") + 1
	if n > len(segments) {
		return false
	}
	return matchPath(pattern, strings.Join(segments[len(segments)-n:], "/"))
}

// splitUnder yields the remainders of p below every directory prefix of p
// that matches dir. An empty dir is the source root and yields p itself.
func splitUnder(dir, p string, yield func(rest string) bool) {
	if dir == "" {
		yield(p)
		return
	}
	segments := strings.Split(p, "/")
	for i := 1; i < len(segments); i++ {
		if matchPath(dir, strings.Join(segments[:i], "/")) {
			if yield(strings.Join(segments[i:], "/")) {
				return
			}
		}
	}
}

// underDir reports whether p lies anywhere below a directory matching dir
func underDir(dir, p string) bool {
	found := false
	splitUnder(dir, p, func(string) bool {
		found = true
		return true
	})
	return found
}

// underDirMatching reports whether p lies below a directory matching dir
// with trailing components matching pattern
func underDirMatching(dir, pattern, p string) bool {
	found := false
	splitUnder(dir, p, func(rest string) bool {
		found = matchTail(pattern, rest)
		return found
	})
	return found
}

// matcher returns the predicate a directive applies to each path
func (d Directive) matcher() func(string) bool {
	switch d.Kind {
	case Include, Exclude:
		return func(p string) bool {
			for _, pattern := range d.Patterns {
				if matchPath(pattern, p) {
					return true
				}
			}
			return false
		}
	case GlobalInclude, GlobalExclude:
		return func(p string) bool {
			for _, pattern := range d.Patterns {
				if matchTail(pattern, p) {
					return true
				}
			}
			return false
		}
	case RecursiveInclude, RecursiveExclude:
		return func(p string) bool {
			for _, pattern := range d.Patterns {
				if underDirMatching(d.Dir, pattern, p) {
					return true
				}
			}
			return false
		}
	case Graft, Prune:
		return func(p string) bool {
			return underDir(d.Dir, p)
		}
	default:
		return func(string) bool { return false }
	}
}
