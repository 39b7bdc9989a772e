package clipgrab

import (
	"sort"

	"go.uber.org/zap"
)

// Selection is the outcome of applying the pattern lists to the filesystem:
// the surviving file paths in deterministic order, plus the inclusion globs
// that matched nothing.
type Selection struct {
	Files          []string
	UnmatchedGlobs []string
}

// Engine combines glob and tag inclusion results into a candidate set, then
// applies glob and tag exclusions. Exclusion always wins over inclusion.
type Engine struct {
	resolver *Resolver
	scanner  *Scanner
	logger   *zap.Logger
}

// NewEngine wires a selection engine from its collaborators.
func NewEngine(resolver *Resolver, scanner *Scanner, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{resolver: resolver, scanner: scanner, logger: logger}
}

// Select computes the final file list. The universe is the ignore-filtered
// file list used for inclusion tag scanning; exclusion tags are evaluated
// against the candidates themselves, after inclusion has narrowed the set.
func (e *Engine) Select(patterns Patterns, universe []string) (Selection, error) {
	candidates := make(map[string]struct{})
	var unmatched []string

	for _, g := range patterns.IncludeGlobs {
		matches, err := e.resolver.Resolve(g)
		if err != nil {
			return Selection{}, err
		}
		if len(matches) == 0 {
			unmatched = append(unmatched, g)
			continue
		}
		for _, m := range matches {
			candidates[m] = struct{}{}
		}
	}

	if len(patterns.IncludeTags) > 0 {
		for _, path := range universe {
			for _, tag := range patterns.IncludeTags {
				if e.scanner.HasTag(path, tag) {
					candidates[path] = struct{}{}
					break
				}
			}
		}
	}
	e.logger.Debug("built candidate set",
		zap.Int("candidates", len(candidates)),
		zap.Int("unmatchedGlobs", len(unmatched)))

	if len(patterns.ExcludeGlobs) > 0 && len(candidates) > 0 {
		excluded, err := e.resolver.ResolveAll(patterns.ExcludeGlobs)
		if err != nil {
			return Selection{}, err
		}
		for _, p := range excluded {
			delete(candidates, p)
		}
	}

	files := make([]string, 0, len(candidates))
	for path := range candidates {
		excluded := false
		for _, tag := range patterns.ExcludeTags {
			if e.scanner.HasTag(path, tag) {
				excluded = true
				break
			}
		}
		if !excluded {
			files = append(files, path)
		}
	}

	// Enumeration order varies by source; normalize for reproducible output.
	sort.Strings(files)

	e.logger.Debug("selection complete", zap.Int("files", len(files)))
	return Selection{Files: files, UnmatchedGlobs: unmatched}, nil
}
