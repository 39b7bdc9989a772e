package clipgrab

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// WriteClipboard places text on the system clipboard. A host without a
// clipboard mechanism is a fatal error for the run; there is no retry and no
// partial write.
func WriteClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}
	return nil
}
