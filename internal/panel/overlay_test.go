package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceOverlay(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		fg   string
		bg   string
		want string
	}{
		{
			name: "inside",
			x:    2, y: 1,
			fg:   "XY",
			bg:   "abcd\nefgh\nijkl",
			want: "abcd\nefXY\nijkl",
		},
		{
			name: "multi-line",
			x:    0, y: 0,
			fg:   "12\n34",
			bg:   "abcd\nefgh",
			want: "12cd\n34gh",
		},
		{
			name: "past line end pads",
			x:    4, y: 0,
			fg:   "Z",
			bg:   "ab",
			want: "ab  Z",
		},
		{
			name: "rows below background dropped",
			x:    0, y: 1,
			fg:   "12\n34",
			bg:   "abcd\nefgh",
			want: "abcd\n12gh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, placeOverlay(tt.x, tt.y, tt.fg, tt.bg))
		})
	}
}

func TestTruncateHead(t *testing.T) {
	assert.Equal(t, "short", truncateHead("short", 10))
	assert.Equal(t, "…6789", truncateHead("0123456789", 5))
	assert.Equal(t, "0", truncateHead("0123456789", 1))
}
