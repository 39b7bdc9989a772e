package clipgrab

import (
	"os"
	"path/filepath"
	"testing"

	"clipgrab/pkg/ignore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, dir string) *Engine {
	t.Helper()
	return NewEngine(NewResolver(dir, nil), NewScanner(dir, nil), nil)
}

func universeFor(t *testing.T, dir string, useProjectFile bool) []string {
	t.Helper()
	rules, err := ignore.Load(dir, useProjectFile, nil)
	require.NoError(t, err)
	universe, err := CollectUniverse(dir, rules, nil)
	require.NoError(t, err)
	return universe
}

func TestSelectGlobWithTagExclusion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", []byte("hello"))
	writeFile(t, dir, "b.txt", []byte("tags: #draft\nworld"))

	sel, err := newEngine(t, dir).Select(Patterns{
		IncludeGlobs: []string{"*.txt"},
		ExcludeTags:  []string{"draft"},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.txt"}, sel.Files)
	assert.Empty(t, sel.UnmatchedGlobs)
}

func TestSelectNoDuplicateAcrossGlobAndTag(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", []byte("# tags: #backend\n"))

	sel, err := newEngine(t, dir).Select(Patterns{
		IncludeGlobs: []string{"*.py"},
		IncludeTags:  []string{"backend"},
	}, universeFor(t, dir, true))
	require.NoError(t, err)

	assert.Equal(t, []string{"a.py"}, sel.Files)
}

func TestSelectExclusionPrecedence(t *testing.T) {
	// Exclusion wins for every pairing of inclusion and exclusion criteria.
	dir := t.TempDir()
	writeFile(t, dir, "target.py", []byte("# tags: #keep #drop\n"))

	universe := universeFor(t, dir, true)
	engine := newEngine(t, dir)

	tests := []struct {
		name     string
		patterns Patterns
	}{
		{"glob in, glob out", Patterns{IncludeGlobs: []string{"*.py"}, ExcludeGlobs: []string{"target.py"}}},
		{"glob in, tag out", Patterns{IncludeGlobs: []string{"*.py"}, ExcludeTags: []string{"drop"}}},
		{"tag in, glob out", Patterns{IncludeTags: []string{"keep"}, ExcludeGlobs: []string{"*.py"}}},
		{"tag in, tag out", Patterns{IncludeTags: []string{"keep"}, ExcludeTags: []string{"drop"}}},
		{"same glob in and out", Patterns{IncludeGlobs: []string{"*.py"}, ExcludeGlobs: []string{"*.py"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := engine.Select(tt.patterns, universe)
			require.NoError(t, err)
			assert.Empty(t, sel.Files)
		})
	}
}

func TestSelectUnmatchedGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", []byte("a"))

	sel, err := newEngine(t, dir).Select(Patterns{
		IncludeGlobs: []string{"*.nope", "*.txt", "*.alsonope"},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.txt"}, sel.Files)
	assert.Equal(t, []string{"*.nope", "*.alsonope"}, sel.UnmatchedGlobs)
}

func TestSelectMissingTagIsEmptyNotError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", []byte("plain"))

	sel, err := newEngine(t, dir).Select(Patterns{
		IncludeTags: []string{"missingtag"},
	}, universeFor(t, dir, true))
	require.NoError(t, err)

	assert.Empty(t, sel.Files)
	assert.Empty(t, sel.UnmatchedGlobs)
}

func TestSelectIgnoreFilterAsymmetry(t *testing.T) {
	// The ignore rules gate tag scanning but not glob resolution.
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("secrets/\n"), 0o644))
	writeFile(t, dir, "secrets/config.py", []byte("# tags: #backend\n"))
	writeFile(t, dir, "app.py", []byte("# tags: #backend\n"))

	universe := universeFor(t, dir, true)
	engine := newEngine(t, dir)

	byTag, err := engine.Select(Patterns{IncludeTags: []string{"backend"}}, universe)
	require.NoError(t, err)
	assert.Equal(t, []string{"app.py"}, byTag.Files)

	byGlob, err := engine.Select(Patterns{IncludeGlobs: []string{"secrets/*.py"}}, universe)
	require.NoError(t, err)
	assert.Equal(t, []string{"secrets/config.py"}, byGlob.Files)
}

func TestSelectDeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "c.txt", []byte("c"))
	writeFile(t, dir, "a.txt", []byte("a"))
	writeFile(t, dir, "sub/b.txt", []byte("b"))

	engine := newEngine(t, dir)
	patterns := Patterns{IncludeGlobs: []string{"*.txt"}}

	first, err := engine.Select(patterns, nil)
	require.NoError(t, err)
	second, err := engine.Select(patterns, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.txt", "c.txt", "sub/b.txt"}, first.Files)
	assert.Equal(t, first.Files, second.Files)
}

func TestRunRequiresInclusion(t *testing.T) {
	err := Run(Arguments{Excludes: []string{"*.log"}}, nil)
	assert.ErrorIs(t, err, ErrNoInclusion)
}
