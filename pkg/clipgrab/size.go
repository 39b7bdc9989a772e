package clipgrab

import (
	"math"
	"strconv"
)

var sizeUnits = []string{"B", "k", "M", "G", "T", "P"}

// FormatBytes renders a byte count in the largest base-1024 unit where the
// scaled value is at least 1, with at most two decimal places and trailing
// zeros trimmed: 0 -> "0B", 1024 -> "1k", 1536 -> "1.5k".
func FormatBytes(n int64) string {
	if n <= 0 {
		return "0" + sizeUnits[0]
	}
	value := float64(n)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	value = math.Round(value*100) / 100
	return strconv.FormatFloat(value, 'f', -1, 64) + sizeUnits[unit]
}
