package clipgrab

import "strings"

// tagPrefix marks a selection token as a tag reference rather than a glob.
const tagPrefix = "+"

// Patterns holds the command-line selection tokens partitioned into the four
// disjoint category lists.
type Patterns struct {
	IncludeGlobs []string // inclusion glob patterns, as typed
	IncludeTags  []string // inclusion tag names, without the '+'
	ExcludeGlobs []string // exclusion glob patterns, as typed
	ExcludeTags  []string // exclusion tag names, without the '+'
}

// ParsePatterns partitions the positional arguments and the --not values.
// A token starting with '+' is a tag reference; anything else is a glob.
func ParsePatterns(includes, excludes []string) Patterns {
	var p Patterns
	for _, arg := range includes {
		if tag, ok := strings.CutPrefix(arg, tagPrefix); ok {
			p.IncludeTags = append(p.IncludeTags, tag)
		} else {
			p.IncludeGlobs = append(p.IncludeGlobs, arg)
		}
	}
	for _, arg := range excludes {
		if tag, ok := strings.CutPrefix(arg, tagPrefix); ok {
			p.ExcludeTags = append(p.ExcludeTags, tag)
		} else {
			p.ExcludeGlobs = append(p.ExcludeGlobs, arg)
		}
	}
	return p
}

// HasInclusions reports whether at least one inclusion criterion was given.
func (p Patterns) HasInclusions() bool {
	return len(p.IncludeGlobs)+len(p.IncludeTags) > 0
}
