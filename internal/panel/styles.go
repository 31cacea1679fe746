package panel

import "github.com/charmbracelet/lipgloss"

// Panel color palette
const (
	ColorBorder        = lipgloss.Color("#2A2A4A")
	ColorSurfaceBg     = lipgloss.Color("#12121A")
	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")
	ColorAccent        = lipgloss.Color("#FF2E97")
	ColorCurrentDir    = lipgloss.Color("#00FFFF")

	ColorHealthy  = lipgloss.Color("#39FF14")
	ColorWarning  = lipgloss.Color("#FFAA00")
	ColorCritical = lipgloss.Color("#FF0055")
)

// CPU thresholds for the readout color
const (
	WarningThreshold  = 70.0
	CriticalThreshold = 90.0
)

var (
	WindowStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, paddingX).
			Width(WindowWidth - 2*borderSize).
			Height(WindowHeight - 2*borderSize)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	CurrentDirStyle = lipgloss.NewStyle().
			Foreground(ColorCurrentDir)

	ColumnHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorTextPrimary).
				Bold(true)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	RowStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(ColorTextPrimary).
				Background(ColorAccent).
				Bold(true)

	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	WarningTextStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)

	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Background(ColorSurfaceBg).
			Padding(0, 1).
			Width(OverlayWidth - 2*borderSize).
			Height(OverlayHeight - 2*borderSize)
)

const (
	cursorMarker = "▌"
	separator    = "─"
)

// CPUColor returns the severity color for a CPU percentage.
func CPUColor(percent float64) lipgloss.Color {
	switch {
	case percent >= CriticalThreshold:
		return ColorCritical
	case percent >= WarningThreshold:
		return ColorWarning
	default:
		return ColorHealthy
	}
}
