package clipgrab

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"clipgrab/pkg/ui"

	"go.uber.org/zap"
)

// Report is the aggregated clipboard payload plus its accounting: the number
// of files and the sum of their on-disk sizes. TotalBytes counts file sizes,
// not payload bytes, which differ by the delimiter overhead.
type Report struct {
	Payload    string
	FileCount  int
	TotalBytes int64
}

// Aggregator renders the selected files into one payload, one block per
// file: a "===== path =====" header line, the raw content, and a blank line.
type Aggregator struct {
	root   string
	logger *zap.Logger
}

// NewAggregator returns an Aggregator reading files relative to root.
func NewAggregator(root string, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{root: root, logger: logger}
}

// Aggregate builds the payload for the selected files in the given order,
// emitting a progress line per file. Unlike the tag scanner, a read failure
// here is fatal: the file was part of the deliberate selection, and silently
// skipping it would produce a misleading clipboard payload.
func (a *Aggregator) Aggregate(files []string) (Report, error) {
	var buf strings.Builder
	var total int64

	for _, rel := range files {
		full := filepath.Join(a.root, filepath.FromSlash(rel))

		info, err := os.Stat(full)
		if err != nil {
			return Report{}, fmt.Errorf("failed to stat selected file %s: %w", rel, err)
		}
		ui.PrintProgress(fmt.Sprintf("📄 Copying file: %s (%s)", rel, FormatBytes(info.Size())))

		content, err := os.ReadFile(full)
		if err != nil {
			return Report{}, fmt.Errorf("failed to read selected file %s: %w", rel, err)
		}

		fmt.Fprintf(&buf, "===== %s =====\n", rel)
		buf.Write(content)
		buf.WriteString("\n")
		total += info.Size()

		a.logger.Debug("aggregated file", zap.String("path", rel), zap.Int64("sizeBytes", info.Size()))
	}

	return Report{Payload: buf.String(), FileCount: len(files), TotalBytes: total}, nil
}
