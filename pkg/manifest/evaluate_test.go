// pkg/manifest/evaluate_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Verify directive semantics over a fixed universe of paths

package manifest_test

import (
	"testing"

	"github.com/arthur-debert/treeinstall/pkg/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// universe is sorted the way Walk returns it
var universe = []string{
	"README",
	"doc/api/mod.html",
	"doc/api/mod.txt",
	"doc/examples/ex1.py",
	"doc/examples/ex1.pyc",
	"doc/examples/sub/ex2.py",
	"doc/index.html",
	"setup.py",
	"test/data/x.txt",
	"test/test_a.py",
}

func evaluate(t *testing.T, lines ...string) []string {
	t.Helper()
	directives, err := manifest.Parse(lines)
	require.NoError(t, err)
	return manifest.Evaluate(directives, universe).Paths()
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "include_matches_full_path_only",
			lines: []string{"include *.py"},
			want:  []string{"setup.py"},
		},
		{
			name:  "include_in_subdirectory",
			lines: []string{"include doc/*.html"},
			want:  []string{"doc/index.html"},
		},
		{
			name:  "include_doublestar",
			lines: []string{"include doc/**/*.py"},
			want:  []string{"doc/examples/ex1.py", "doc/examples/sub/ex2.py"},
		},
		{
			name:  "include_literal_names_in_directive_order",
			lines: []string{"include setup.py README"},
			want:  []string{"README", "setup.py"},
		},
		{
			name:  "global_include",
			lines: []string{"global-include *.py"},
			want:  []string{"doc/examples/ex1.py", "doc/examples/sub/ex2.py", "setup.py", "test/test_a.py"},
		},
		{
			name:  "global_include_multi_component",
			lines: []string{"global-include api/*.html"},
			want:  []string{"doc/api/mod.html"},
		},
		{
			name:  "recursive_include",
			lines: []string{"recursive-include doc *.html"},
			want:  []string{"doc/api/mod.html", "doc/index.html"},
		},
		{
			name:  "recursive_include_nested_dir",
			lines: []string{"recursive-include doc/examples *.py"},
			want:  []string{"doc/examples/ex1.py", "doc/examples/sub/ex2.py"},
		},
		{
			name:  "recursive_include_root",
			lines: []string{"recursive-include . *.txt"},
			want:  []string{"doc/api/mod.txt", "test/data/x.txt"},
		},
		{
			name:  "graft",
			lines: []string{"graft test"},
			want:  []string{"test/data/x.txt", "test/test_a.py"},
		},
		{
			name:  "graft_glob_dir",
			lines: []string{"graft doc/*"},
			want: []string{
				"doc/api/mod.html",
				"doc/api/mod.txt",
				"doc/examples/ex1.py",
				"doc/examples/ex1.pyc",
				"doc/examples/sub/ex2.py",
			},
		},
		{
			name:  "graft_root",
			lines: []string{"graft ."},
			want:  universe,
		},
		{
			name:  "graft_then_prune",
			lines: []string{"graft doc", "prune doc/examples"},
			want:  []string{"doc/api/mod.html", "doc/api/mod.txt", "doc/index.html"},
		},
		{
			name:  "graft_then_global_exclude",
			lines: []string{"graft doc", "global-exclude *.pyc"},
			want: []string{
				"doc/api/mod.html",
				"doc/api/mod.txt",
				"doc/examples/ex1.py",
				"doc/examples/sub/ex2.py",
				"doc/index.html",
			},
		},
		{
			name:  "graft_then_recursive_exclude",
			lines: []string{"graft doc", "recursive-exclude doc *.txt *.pyc *.py"},
			want:  []string{"doc/api/mod.html", "doc/index.html"},
		},
		{
			name:  "graft_then_exclude",
			lines: []string{"graft doc/api", "exclude doc/api/mod.txt"},
			want:  []string{"doc/api/mod.html"},
		},
		{
			name:  "exclude_without_include_is_noop",
			lines: []string{"exclude README"},
			want:  []string{},
		},
		{
			name:  "missing_directory_contributes_nothing",
			lines: []string{"graft nosuch", "recursive-include nosuch *"},
			want:  []string{},
		},
		{
			name:  "include_after_prune_adds_back",
			lines: []string{"graft doc", "prune doc", "include doc/index.html"},
			want:  []string{"doc/index.html"},
		},
		{
			name:  "prune_does_not_match_partial_names",
			lines: []string{"graft doc", "prune do"},
			want: []string{
				"doc/api/mod.html",
				"doc/api/mod.txt",
				"doc/examples/ex1.py",
				"doc/examples/ex1.pyc",
				"doc/examples/sub/ex2.py",
				"doc/index.html",
			},
		},
		{
			name:  "star_does_not_cross_separator",
			lines: []string{"include doc/*.py"},
			want:  []string{},
		},
		{
			name:  "character_class",
			lines: []string{"global-include ex[12].py"},
			want:  []string{"doc/examples/ex1.py", "doc/examples/sub/ex2.py"},
		},
		{
			name:  "question_mark",
			lines: []string{"include test/test_?.py"},
			want:  []string{"test/test_a.py"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evaluate(t, tt.lines...))
		})
	}
}

func TestEvaluate_DedupeKeepsFirstSeenOrder(t *testing.T) {
	got := evaluate(t,
		"include setup.py",
		"global-include *.py",
		"include setup.py",
	)
	assert.Equal(t, []string{"setup.py", "doc/examples/ex1.py", "doc/examples/sub/ex2.py", "test/test_a.py"}, got)
}

func TestEvaluate_PruneAfterIncludesRemovesSubtree(t *testing.T) {
	// whatever the includes select, a trailing prune leaves nothing under it
	includes := [][]string{
		{"graft doc"},
		{"global-include *"},
		{"recursive-include doc *.html *.py", "include README"},
		{"include doc/**/*", "graft test"},
	}

	for _, lines := range includes {
		got := evaluate(t, append(lines, "prune doc")...)
		for _, p := range got {
			assert.NotRegexp(t, `^doc/`, p, "lines %v", lines)
		}
	}
}

func TestEvaluate_Pure(t *testing.T) {
	directives, err := manifest.Parse([]string{"graft doc", "global-exclude *.pyc"})
	require.NoError(t, err)

	first := manifest.Evaluate(directives, universe).Paths()
	second := manifest.Evaluate(directives, universe).Paths()
	assert.Equal(t, first, second)
}

func TestEvaluate_NoDirectives(t *testing.T) {
	set := manifest.Evaluate(nil, universe)
	assert.Equal(t, 0, set.Len())
	assert.Empty(t, set.Paths())
}
