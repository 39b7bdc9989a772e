package clipgrab

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

// dependencyCacheDir is suppressed from glob results unless a pattern names
// it explicitly.
const dependencyCacheDir = "node_modules"

// Resolver expands glob patterns against the filesystem. It searches the
// full tree: the ignore ruleset is never consulted here, only the built-in
// dependency-cache suppression applies.
type Resolver struct {
	fsys   fs.FS
	logger *zap.Logger
}

// NewResolver returns a Resolver rooted at dir.
func NewResolver(dir string, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{fsys: os.DirFS(dir), logger: logger}
}

// Resolve expands a single glob pattern into relative slash-separated file
// paths. A pattern without a path separator matches at any depth; a pattern
// with one matches only at the specified location. Paths under the
// dependency-cache directory are dropped unless the pattern names it.
func (r *Resolver) Resolve(pattern string) ([]string, error) {
	matches, err := r.glob(normalizeGlob(pattern))
	if err != nil {
		return nil, err
	}
	if strings.Contains(pattern, dependencyCacheDir) {
		return matches, nil
	}
	return dropDependencyCache(matches), nil
}

// ResolveAll expands several patterns in as few glob calls as possible by
// joining them into a brace alternation. The result equals the union of
// resolving each pattern independently.
func (r *Resolver) ResolveAll(patterns []string) ([]string, error) {
	switch len(patterns) {
	case 0:
		return nil, nil
	case 1:
		return r.Resolve(patterns[0])
	}

	// Patterns that name the dependency-cache directory keep their matches;
	// the rest share one filtered resolve.
	var plain, reaching []string
	for _, p := range patterns {
		if strings.Contains(p, dependencyCacheDir) {
			reaching = append(reaching, p)
		} else {
			plain = append(plain, p)
		}
	}

	var out []string
	if len(plain) > 0 {
		matches, err := r.globCombined(plain)
		if err != nil {
			return nil, err
		}
		out = append(out, dropDependencyCache(matches)...)
	}
	if len(reaching) > 0 {
		matches, err := r.globCombined(reaching)
		if err != nil {
			return nil, err
		}
		out = append(out, matches...)
	}
	return out, nil
}

func (r *Resolver) globCombined(patterns []string) ([]string, error) {
	if len(patterns) == 1 {
		return r.glob(normalizeGlob(patterns[0]))
	}
	normalized := make([]string, len(patterns))
	for i, p := range patterns {
		normalized[i] = normalizeGlob(p)
	}
	return r.glob("{" + strings.Join(normalized, ",") + "}")
}

func (r *Resolver) glob(pattern string) ([]string, error) {
	matches, err := doublestar.Glob(r.fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	r.logger.Debug("resolved glob", zap.String("pattern", pattern), zap.Int("matches", len(matches)))
	return matches, nil
}

// normalizeGlob makes a separator-free pattern recursive ("*.txt" matches at
// any depth) and strips a leading "./" from explicit patterns so they line
// up with root-relative paths.
func normalizeGlob(pattern string) string {
	if !strings.Contains(pattern, "/") {
		return "**/" + pattern
	}
	return strings.TrimPrefix(pattern, "./")
}

// dropDependencyCache removes paths with a dependency-cache path segment.
func dropDependencyCache(paths []string) []string {
	kept := paths[:0]
	for _, p := range paths {
		if !hasSegment(p, dependencyCacheDir) {
			kept = append(kept, p)
		}
	}
	return kept
}

func hasSegment(path, name string) bool {
	for _, seg := range strings.Split(path, "/") {
		if seg == name {
			return true
		}
	}
	return false
}
