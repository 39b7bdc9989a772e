package clipgrab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, content []byte) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))
}

func TestScannerHasTag(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tagged.py", []byte("# tags: #backend #util\nprint('x')\n"))
	writeFile(t, dir, "cased.py", []byte("# tags: #Foo\n"))
	writeFile(t, dir, "spread.md", []byte("front matter\ntags:\nsome prose\n#draft here\n"))
	writeFile(t, dir, "untagged.go", []byte("package main // #backend without a marker\n"))
	writeFile(t, dir, "binary.bin", []byte{0, 1, 2, 't', 'a', 'g', 's', ':', ' ', '#', 'b', 'i', 'n'})

	s := NewScanner(dir, nil)

	assert.True(t, s.HasTag("tagged.py", "backend"))
	assert.True(t, s.HasTag("tagged.py", "util"))
	assert.False(t, s.HasTag("tagged.py", "frontend"))

	// Case-sensitive: #Foo does not satisfy a request for foo.
	assert.True(t, s.HasTag("cased.py", "Foo"))
	assert.False(t, s.HasTag("cased.py", "foo"))

	// Raw substring scan: #backend satisfies a request for "back".
	assert.True(t, s.HasTag("tagged.py", "back"))

	// The marker and the tag may be separated by line breaks.
	assert.True(t, s.HasTag("spread.md", "draft"))

	// A bare #tag with no "tags:" marker anywhere before it does not count.
	assert.False(t, s.HasTag("untagged.go", "backend"))

	// Fail closed: unreadable and binary files never match.
	assert.False(t, s.HasTag("missing.txt", "backend"))
	assert.False(t, s.HasTag("binary.bin", "bin"))
}
