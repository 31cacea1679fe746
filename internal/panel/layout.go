package panel

// Window geometry in terminal cells. These are fixed and never derived from
// the terminal size.
const (
	WindowWidth  = 120
	WindowHeight = 36
	WindowX      = 0
	WindowY      = 0

	OverlayWidth  = 36
	OverlayHeight = 5
	OverlayX      = 82
	OverlayY      = 0
)

// Interior layout, relative to the window's top-left corner.
const (
	borderSize    = 1
	paddingX      = 1
	contentLeft   = WindowX + borderSize + paddingX
	contentWidth  = WindowWidth - 2*borderSize - 2*paddingX
	contentHeight = WindowHeight - 2*borderSize

	titleRow  = 0
	menuRow   = 1
	columnRow = 2

	columnHeaderLines = 2 // header text + separator
	footerLines       = 2 // status + key help

	columnHeight = contentHeight - columnRow - footerLines
	listHeight   = columnHeight - columnHeaderLines

	leftColumnWidth  = contentWidth / 2
	rightColumnWidth = contentWidth - leftColumnWidth

	// CPU readout extras in the right column.
	graphLabelWidth = 9
	historyWidth    = rightColumnWidth - graphLabelWidth
)

// Absolute screen coordinates used for mouse hit testing.
const (
	menuY    = WindowY + borderSize + menuRow
	listTopY = WindowY + borderSize + columnRow + columnHeaderLines
)

const goUpLabel = "[ Go Up ]"
