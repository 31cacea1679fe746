package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparklineBlocks are block characters for 8-level vertical resolution (lowest to highest).
var sparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// renderUsageBar renders a horizontal bar filled to percent, colored by how
// far along the bar each cell sits.
func renderUsageBar(width int, percent float64) string {
	if width < 1 {
		width = 1
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100 * float64(width))

	var b strings.Builder
	for i := 0; i < width; i++ {
		if i < filled {
			pos := float64(i+1) / float64(width) * 100
			b.WriteString(lipgloss.NewStyle().Foreground(CPUColor(pos)).Render("█"))
		} else {
			b.WriteString(MutedStyle.Render("░"))
		}
	}
	return b.String()
}

// renderSparkline renders percentages (0-100) one cell per value, keeping the
// newest width values. Shorter data is left-padded so the newest value always
// sits in the last cell.
func renderSparkline(data []float64, width int) string {
	if width <= 0 {
		return ""
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", width-len(data)))
	for _, v := range data {
		idx := int(v / 100 * float64(len(sparklineBlocks)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparklineBlocks) {
			idx = len(sparklineBlocks) - 1
		}
		b.WriteRune(sparklineBlocks[idx])
	}

	color := ColorHealthy
	if len(data) > 0 {
		color = CPUColor(data[len(data)-1])
	}
	return lipgloss.NewStyle().Foreground(color).Render(b.String())
}
