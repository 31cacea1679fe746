package panel

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rileyhilliard/sx/internal/errors"
)

// View renders the whole screen for the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	screen := m.renderWindow()

	if m.showOverlay {
		screen = placeOverlay(OverlayX, OverlayY, m.renderFrameStats(), screen)
	}

	if m.showHelp {
		box := m.renderHelpOverlay()
		x := WindowX + (WindowWidth-lipgloss.Width(box))/2
		y := WindowY + (WindowHeight-lipgloss.Height(box))/2
		screen = placeOverlay(x, y, box, screen)
	}

	return screen
}

// renderWindow renders the fixed-size main window.
func (m Model) renderWindow() string {
	rows := []string{
		m.renderTitle(),
		m.renderMenu(),
		m.renderColumns(),
		m.renderStatus(),
		m.renderKeyHelp(),
	}
	return WindowStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) renderTitle() string {
	return TitleStyle.Render(ansi.Truncate(m.title, contentWidth, "…"))
}

// renderMenu renders the Go Up button and the current directory.
func (m Model) renderMenu() string {
	button := ButtonStyle.Render(goUpLabel)
	room := contentWidth - lipgloss.Width(goUpLabel) - 1
	dir := truncateHead("Current directory: "+sanitizeText(m.dir.Current()), room)
	return button + " " + CurrentDirStyle.Render(dir)
}

// renderColumns lays out the file list and the system readout side by side.
func (m Model) renderColumns() string {
	left := lipgloss.NewStyle().
		Width(leftColumnWidth).
		Height(columnHeight).
		MaxHeight(columnHeight).
		Render(m.renderExplorerColumn())

	right := lipgloss.NewStyle().
		Width(rightColumnWidth).
		Height(columnHeight).
		MaxHeight(columnHeight).
		Render(m.renderSystemColumn())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) renderExplorerColumn() string {
	width := leftColumnWidth - 1
	lines := []string{
		ColumnHeaderStyle.Render("File Explorer Content:"),
		SeparatorStyle.Render(strings.Repeat(separator, width)),
	}
	if rows := m.list.Render(m.dir, m.glyphs, width); rows != "" {
		lines = append(lines, rows)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSystemColumn() string {
	cpu := lipgloss.NewStyle().
		Foreground(CPUColor(m.sample.CPUPercent)).
		Render(fmt.Sprintf("%.2f%%", m.sample.CPUPercent))
	mem := ValueStyle.Render(fmt.Sprintf("%d MB", m.sample.MemoryMB()))

	label := LabelStyle.Width(graphLabelWidth)

	return strings.Join([]string{
		ColumnHeaderStyle.Render("System Information:"),
		SeparatorStyle.Render(strings.Repeat(separator, rightColumnWidth)),
		LabelStyle.Render("CPU Usage: ") + cpu,
		LabelStyle.Render("Memory Usage: ") + mem,
		"",
		label.Render("Load") + renderUsageBar(historyWidth, m.sample.CPUPercent),
		label.Render("History") + renderSparkline(m.history.values(), historyWidth),
	}, "\n")
}

// renderStatus shows the most pressing message: a listing failure, then a
// failed navigation, then a startup notice, then the selection.
func (m Model) renderStatus() string {
	var text string
	style := WarningTextStyle

	switch {
	case m.list.Err() != nil:
		text = errors.Summary(m.list.Err())
	case m.navErr != "":
		text = m.navErr
	case m.notice != "":
		text = m.notice
	default:
		style = MutedStyle
		if sel, ok := m.dir.Selected(); ok {
			text = "Selected: " + sel
		} else {
			text = "Nothing selected"
		}
	}

	return style.Render(truncateHead(sanitizeText(text), contentWidth))
}

func (m Model) renderKeyHelp() string {
	return ansi.Truncate(m.help.View(keys), contentWidth, "")
}

// renderFrameStats renders the frame-timing overlay box.
func (m Model) renderFrameStats() string {
	ms := float64(m.clock.FrameTime()) / float64(time.Millisecond)
	lines := []string{
		TitleStyle.Render("Frame Stats"),
		LabelStyle.Render("Application average"),
		ValueStyle.Render(fmt.Sprintf("%.3f ms/frame (%.1f FPS)", ms, m.clock.FPS())),
	}
	return OverlayStyle.Render(strings.Join(lines, "\n"))
}

// truncateHead shortens s to width cells by dropping its start, so the tail
// of a long path stays visible.
func truncateHead(s string, width int) string {
	w := ansi.StringWidth(s)
	if w <= width {
		return s
	}
	if width <= 1 {
		return ansi.Truncate(s, width, "")
	}
	return "…" + ansi.TruncateLeft(s, w-width+1, "")
}
