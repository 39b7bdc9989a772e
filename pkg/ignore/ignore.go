// Package ignore implements gitignore-style path exclusion.
//
// Patterns follow the usual .gitignore rules:
//
//   - "*" matches any sequence of non-separator characters
//   - "**" matches across directory boundaries
//   - A trailing "/" restricts the pattern to directories
//   - A leading "/" anchors the pattern to the root
//   - A leading "!" re-includes a path excluded by an earlier pattern
//   - Lines starting with "#" are comments; blank lines are skipped
//   - Later patterns override earlier ones
package ignore

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// dependencyCacheRule is appended unconditionally after any project rules.
// Because matching is last-match-wins, a project-level negation can never
// re-include it.
const dependencyCacheRule = "node_modules/"

// Pattern encapsulates a compiled regular expression, a negation flag,
// and the original pattern line.
type Pattern struct {
	re     *regexp.Regexp
	negate bool
	line   string
}

// Ruleset is an ordered collection of ignore patterns.
type Ruleset struct {
	patterns []*Pattern
	logger   *zap.Logger
}

// New returns an empty Ruleset.
func New(logger *zap.Logger) *Ruleset {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ruleset{logger: logger}
}

// Load builds the ruleset for a working directory: the project .gitignore
// (when useProjectFile is set and the file exists) followed by the built-in
// dependency-cache rule.
func Load(dir string, useProjectFile bool, logger *zap.Logger) (*Ruleset, error) {
	rs := New(logger)
	if useProjectFile {
		if err := rs.AddFile(filepath.Join(dir, ".gitignore")); err != nil {
			return nil, err
		}
	}
	rs.AddLines(dependencyCacheRule)
	return rs, nil
}

// AddLines parses and appends ignore pattern lines. Comment and blank lines
// are skipped.
func (rs *Ruleset) AddLines(lines ...string) {
	for _, line := range lines {
		p := parsePatternLine(line)
		if p == nil {
			continue
		}
		rs.patterns = append(rs.patterns, p)
		rs.logger.Debug("compiled ignore pattern",
			zap.String("pattern", p.line),
			zap.Bool("negate", p.negate))
	}
}

// AddFile reads an ignore file and appends its patterns. A missing file is
// not an error.
func (rs *Ruleset) AddFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			rs.logger.Debug("ignore file does not exist, skipping", zap.String("path", path))
			return nil
		}
		rs.logger.Error("failed to read ignore file", zap.String("path", path), zap.Error(err))
		return err
	}
	rs.AddLines(strings.Split(string(content), "\n")...)
	rs.logger.Debug("loaded ignore file",
		zap.String("path", path),
		zap.Int("patternCount", len(rs.patterns)))
	return nil
}

// Ignored reports whether the relative path matches the ruleset. Rule order
// matters: the last matching pattern decides, so negations can re-include.
func (rs *Ruleset) Ignored(relPath string, isDir bool) bool {
	path := filepath.ToSlash(relPath)
	if isDir && !strings.HasSuffix(path, "/") {
		path += "/"
	}

	ignored := false
	for _, p := range rs.patterns {
		if p.re.MatchString(path) {
			ignored = !p.negate
		}
	}
	return ignored
}

// parsePatternLine converts a single ignore-file line into a compiled
// Pattern. Returns nil for blank lines, comments, and invalid patterns.
func parsePatternLine(line string) *Pattern {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}

	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = strings.TrimPrefix(trimmed, "!")
	}

	// An escaped leading '#' or '!' is a literal character.
	if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}

	// A leading '/' anchors the pattern to the walk root; relative paths
	// carry no leading slash, so the marker is consumed here.
	anchored := false
	if strings.HasPrefix(trimmed, "/") {
		anchored = true
		trimmed = strings.TrimPrefix(trimmed, "/")
	}

	dirOnly := strings.HasSuffix(trimmed, "/")
	if dirOnly {
		trimmed = strings.TrimSuffix(trimmed, "/")
	}
	if trimmed == "" {
		return nil
	}

	expr := escapeSpecialChars(trimmed)
	expr = expandDoubleStars(expr)
	expr = wildcardToRegex(expr)
	expr = anchorPattern(expr, anchored, dirOnly)

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil
	}
	return &Pattern{re: re, negate: negate, line: line}
}
