package ignore

import (
	"regexp"
	"strings"
)

// Precompiled regular expressions used in pattern translation.
var (
	doubleStarMiddle   = regexp.MustCompile(`/\*\*/`)
	doubleStarTrailing = regexp.MustCompile(`/\*\*$`)
	doubleStarLeading  = regexp.MustCompile(`^\*\*/`)
	singleStar         = regexp.MustCompile(`\*`)
)

// escapeSpecialChars escapes regex special characters except for '*', '?', and '/'.
func escapeSpecialChars(pattern string) string {
	const specialChars = `.+()|^$[]{}`
	for _, char := range specialChars {
		pattern = strings.ReplaceAll(pattern, string(char), `\`+string(char))
	}
	return pattern
}

// expandDoubleStars replaces '**' patterns with their regex equivalents.
func expandDoubleStars(pattern string) string {
	pattern = doubleStarMiddle.ReplaceAllString(pattern, `(/|/.+/)`)
	pattern = doubleStarTrailing.ReplaceAllString(pattern, `(/.*)?`)
	pattern = doubleStarLeading.ReplaceAllString(pattern, `(.*/)?`)
	return pattern
}

// wildcardToRegex converts '*' and '?' wildcards to regex equivalents.
func wildcardToRegex(pattern string) string {
	pattern = singleStar.ReplaceAllString(pattern, `[^/]*`)
	return strings.ReplaceAll(pattern, "?", ".")
}

// anchorPattern anchors the regex to match the full path. Directory-only
// patterns match the directory itself (paths carry a trailing slash when the
// caller knows they are directories) and everything beneath it; other
// patterns match the named entry and everything beneath it.
func anchorPattern(pattern string, anchored, dirOnly bool) string {
	if dirOnly {
		pattern += "/(|.*)$"
	} else {
		pattern += "(|/.*)$"
	}

	if anchored {
		return "^" + pattern
	}
	return "^(|.*/)" + pattern
}
