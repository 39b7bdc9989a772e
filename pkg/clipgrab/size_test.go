package clipgrab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0B"},
		{1, "1B"},
		{500, "500B"},
		{1023, "1023B"},
		{1024, "1k"},
		{1536, "1.5k"},
		{1048576, "1M"},
		{1234567, "1.18M"},
		{2621440, "2.5M"},
		{1073741824, "1G"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBytes(tt.in), "FormatBytes(%d)", tt.in)
	}
}
