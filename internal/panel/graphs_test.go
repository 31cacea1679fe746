package panel

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRenderUsageBar(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		percent float64
		want    string
	}{
		{"empty", 4, 0, "░░░░"},
		{"half", 4, 50, "██░░"},
		{"full", 4, 100, "████"},
		{"clamped high", 4, 250, "████"},
		{"clamped low", 4, -5, "░░░░"},
		{"min width", 0, 100, "█"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderUsageBar(tt.width, tt.percent))
		})
	}
}

func TestRenderSparkline(t *testing.T) {
	assert.Equal(t, "", renderSparkline([]float64{50}, 0))
	assert.Equal(t, "    ", renderSparkline(nil, 4))
	assert.Equal(t, "  ▁█", renderSparkline([]float64{0, 100}, 4))
	assert.Equal(t, "▁█", renderSparkline([]float64{100, 100, 0, 100}, 2), "keeps the newest values")

	out := renderSparkline([]float64{10, 20, 30}, 10)
	assert.Equal(t, 10, lipgloss.Width(out))
	assert.True(t, strings.HasSuffix(out, string(sparklineBlocks[2])))
}
