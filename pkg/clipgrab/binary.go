package clipgrab

import "bytes"

// isBinary checks whether content looks binary by inspecting its first few
// bytes for null bytes or a high ratio of non-printable characters.
func isBinary(content []byte) bool {
	sample := content
	if len(sample) > 512 {
		sample = sample[:512]
	}
	if len(sample) == 0 {
		return false // empty files are text
	}

	if bytes.ContainsRune(sample, 0) {
		return true
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isPrintable(b) {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(len(sample)) > 0.3
}

// isPrintable checks if a byte represents a printable ASCII character.
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t'
}
