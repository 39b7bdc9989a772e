package clipgrab

import (
	"errors"
	"fmt"

	"clipgrab/pkg/ignore"
	"clipgrab/pkg/ui"

	"go.uber.org/zap"
)

// Arguments holds the options for one invocation.
type Arguments struct {
	Patterns       []string // positional tokens: globs and +tag references
	Excludes       []string // --not values: globs and +tag references
	RespectIgnores bool     // consult the project .gitignore for tag scanning
}

// ErrNoInclusion is returned when no inclusion pattern or tag was supplied.
var ErrNoInclusion = errors.New("at least one inclusion pattern or +tag is required")

// Run executes the whole pipeline: partition patterns, load ignore rules,
// select files, aggregate their contents, and write the clipboard.
//
// Zero-match outcomes are warnings, not errors: both "an inclusion glob
// matched nothing" and "the final selection is empty" return nil.
func Run(args Arguments, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	patterns := ParsePatterns(args.Patterns, args.Excludes)
	if !patterns.HasInclusions() {
		return ErrNoInclusion
	}
	logger.Debug("partitioned patterns",
		zap.Strings("includeGlobs", patterns.IncludeGlobs),
		zap.Strings("includeTags", patterns.IncludeTags),
		zap.Strings("excludeGlobs", patterns.ExcludeGlobs),
		zap.Strings("excludeTags", patterns.ExcludeTags))

	const root = "."

	rules, err := ignore.Load(root, args.RespectIgnores, logger)
	if err != nil {
		return fmt.Errorf("failed to load ignore rules: %w", err)
	}

	// The universe only feeds inclusion tag scanning; skip the walk when no
	// inclusion tags were requested.
	var universe []string
	if len(patterns.IncludeTags) > 0 {
		universe, err = CollectUniverse(root, rules, logger)
		if err != nil {
			return fmt.Errorf("failed to walk working tree: %w", err)
		}
	}

	engine := NewEngine(NewResolver(root, logger), NewScanner(root, logger), logger)
	selection, err := engine.Select(patterns, universe)
	if err != nil {
		return err
	}

	for _, g := range selection.UnmatchedGlobs {
		ui.PrintWarning("⚠️ No files matched pattern: " + g)
	}
	if len(selection.Files) == 0 {
		ui.PrintWarning("⚠️ No files matched the given patterns/tags.")
		return nil
	}

	report, err := NewAggregator(root, logger).Aggregate(selection.Files)
	if err != nil {
		return err
	}

	if err := WriteClipboard(report.Payload); err != nil {
		return err
	}

	ui.PrintSuccess(fmt.Sprintf("📋 Copied %d files (%s) to the clipboard.",
		report.FileCount, FormatBytes(report.TotalBytes)))
	logger.Debug("run complete",
		zap.Int("files", report.FileCount),
		zap.Int64("totalBytes", report.TotalBytes))
	return nil
}
