package clipgrab

import (
	"io/fs"
	"path/filepath"

	"clipgrab/pkg/ignore"

	"go.uber.org/zap"
)

// CollectUniverse walks the tree under root and returns the relative
// slash-separated paths of every file the ignore ruleset admits. This is the
// file universe the tag scanner works through; ignored directories are
// skipped wholesale. Unreadable entries are logged and skipped, never fatal.
func CollectUniverse(root string, rules *ignore.Ruleset, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("error accessing path during walk", zap.String("path", path), zap.Error(err))
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			if rules.Ignored(rel, true) {
				logger.Debug("skipping ignored directory", zap.String("path", rel))
				return filepath.SkipDir
			}
			return nil
		}
		if rules.Ignored(rel, false) {
			return nil
		}

		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("collected file universe", zap.Int("fileCount", len(files)))
	return files, nil
}
