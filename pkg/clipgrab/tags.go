package clipgrab

import (
	"os"
	"path/filepath"
	"regexp"

	"go.uber.org/zap"
)

// Scanner tests files for inline tag markers. A file carries tag T when its
// text contains "tags:" followed anywhere later (line breaks included) by
// "#T". The test is a raw, case-sensitive substring scan, not a parsed tag
// list, so "#frontend" also satisfies a request for "front".
type Scanner struct {
	root   string
	logger *zap.Logger
	exprs  map[string]*regexp.Regexp
}

// NewScanner returns a Scanner that reads files relative to root.
func NewScanner(root string, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{
		root:   root,
		logger: logger,
		exprs:  make(map[string]*regexp.Regexp),
	}
}

// HasTag reports whether the file at relPath carries the tag. It fails
// closed: unreadable files and binary content report false rather than
// aborting the scan.
func (s *Scanner) HasTag(relPath, tag string) bool {
	content, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(relPath)))
	if err != nil {
		s.logger.Debug("skipping unreadable file during tag scan",
			zap.String("path", relPath), zap.Error(err))
		return false
	}
	if isBinary(content) {
		s.logger.Debug("skipping binary file during tag scan", zap.String("path", relPath))
		return false
	}
	return s.expr(tag).Match(content)
}

// expr returns the compiled marker expression for a tag, caching per tag so
// a bulk scan compiles each one once.
func (s *Scanner) expr(tag string) *regexp.Regexp {
	re, ok := s.exprs[tag]
	if !ok {
		re = regexp.MustCompile(`(?s)tags:.*#` + regexp.QuoteMeta(tag))
		s.exprs[tag] = re
	}
	return re
}
