package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Help overlay styles
var (
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Background(ColorSurfaceBg).
			Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)
)

// renderHelpOverlay renders the keyboard shortcut box.
func (m Model) renderHelpOverlay() string {
	h := m.help
	h.ShowAll = true

	content := strings.Join([]string{
		helpTitleStyle.Render("Keyboard Shortcuts"),
		"",
		h.View(keys),
		"",
		LabelStyle.Render("Mouse: click a row to open it, click " + goUpLabel + " to go up"),
		LabelStyle.Render("Press ? or esc to close"),
	}, "\n")

	return helpBoxStyle.Render(content)
}

// placeOverlay draws fg on top of bg with its top-left corner at (x, y).
// Cells of bg outside fg are kept; fg lines falling outside bg are dropped.
func placeOverlay(x, y int, fg, bg string) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	for i, line := range fgLines {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		base := bgLines[row]

		left := ansi.Truncate(base, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ansi.TruncateLeft(base, x+ansi.StringWidth(line), "")

		bgLines[row] = left + line + right
	}

	return strings.Join(bgLines, "\n")
}
