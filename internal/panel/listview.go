package panel

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rileyhilliard/sx/internal/assets"
	"github.com/rileyhilliard/sx/internal/explorer"
)

// ListView shows the current directory of an explorer.Model as selectable
// rows. It re-enumerates on every Sync and keeps only the cursor between
// frames.
type ListView struct {
	lister  *explorer.Lister
	height  int
	entries []explorer.Entry
	err     error
	dir     string
	cursor  int
	offset  int
}

// NewListView creates a view showing at most height rows at a time.
func NewListView(lister *explorer.Lister, height int) *ListView {
	if height < 1 {
		height = 1
	}
	return &ListView{lister: lister, height: height}
}

// Sync re-reads the model's current directory. A failed read leaves the view
// empty with Err set; the model is not touched.
func (v *ListView) Sync(m *explorer.Model) {
	if m.Current() != v.dir {
		v.dir = m.Current()
		v.cursor = 0
		v.offset = 0
	}

	v.entries, v.err = v.lister.List(v.dir)
	if v.err != nil {
		v.entries = nil
	}
	v.clamp()
}

// Entries returns the rows from the last Sync.
func (v *ListView) Entries() []explorer.Entry {
	return v.entries
}

// Err returns the enumeration error from the last Sync, if any.
func (v *ListView) Err() error {
	return v.err
}

// Cursor returns the index of the highlighted row.
func (v *ListView) Cursor() int {
	return v.cursor
}

// Offset returns the index of the first visible row.
func (v *ListView) Offset() int {
	return v.offset
}

// MoveCursor moves the highlight by delta rows, stopping at the ends.
func (v *ListView) MoveCursor(delta int) {
	v.cursor += delta
	v.clamp()
}

// CursorFirst moves the highlight to the first row.
func (v *ListView) CursorFirst() {
	v.cursor = 0
	v.clamp()
}

// CursorLast moves the highlight to the last row.
func (v *ListView) CursorLast() {
	v.cursor = len(v.entries) - 1
	v.clamp()
}

// PageSize returns the number of visible rows.
func (v *ListView) PageSize() int {
	return v.height
}

// Activate opens entry i: directories are entered, and the entry is selected
// either way. The returned error is the Enter failure, if any; selection
// still happens. The view is re-synced so the next render shows the result.
func (v *ListView) Activate(m *explorer.Model, i int) error {
	if i < 0 || i >= len(v.entries) {
		return nil
	}
	entry := v.entries[i]

	var err error
	if entry.IsDir() {
		err = m.Enter(entry.Name)
	}
	m.Select(entry.Path)

	v.cursor = i
	v.Sync(m)
	return err
}

// ActivateCursor activates the highlighted row.
func (v *ListView) ActivateCursor(m *explorer.Model) error {
	return v.Activate(m, v.cursor)
}

// SelectCursor selects the highlighted row without entering it.
func (v *ListView) SelectCursor(m *explorer.Model) {
	if v.cursor < len(v.entries) {
		m.Select(v.entries[v.cursor].Path)
	}
}

// RowAt maps a visible row (0 = first visible line) to an entry index.
func (v *ListView) RowAt(row int) (int, bool) {
	if row < 0 || row >= v.height {
		return 0, false
	}
	i := v.offset + row
	if i >= len(v.entries) {
		return 0, false
	}
	return i, true
}

// clamp keeps the cursor in range and inside the visible window.
func (v *ListView) clamp() {
	if v.cursor >= len(v.entries) {
		v.cursor = len(v.entries) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}

	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+v.height {
		v.offset = v.cursor - v.height + 1
	}

	maxOffset := len(v.entries) - v.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.offset > maxOffset {
		v.offset = maxOffset
	}
}

// Render draws the visible rows, one per line, each at most width cells.
func (v *ListView) Render(m *explorer.Model, glyphs assets.Glyphs, width int) string {
	end := v.offset + v.height
	if end > len(v.entries) {
		end = len(v.entries)
	}

	lines := make([]string, 0, v.height)
	for i := v.offset; i < end; i++ {
		lines = append(lines, v.renderRow(v.entries[i], i == v.cursor, m.IsSelected(v.entries[i].Path), glyphs, width))
	}

	return strings.Join(lines, "\n")
}

func (v *ListView) renderRow(e explorer.Entry, isCursor, isSelected bool, glyphs assets.Glyphs, width int) string {
	marker := " "
	if isCursor {
		marker = CursorStyle.Render(cursorMarker)
	}

	icon := rowIcon(e, glyphs)

	name := sanitizeText(e.Name)
	if e.IsDir() && !glyphs.HasIcons() {
		name += string(filepath.Separator)
	}

	nameWidth := width - lipgloss.Width(marker) - lipgloss.Width(icon)
	if nameWidth < 1 {
		nameWidth = 1
	}
	name = ansi.Truncate(name, nameWidth, "…")

	style := RowStyle
	if isSelected {
		style = SelectedRowStyle
	}
	return marker + icon + style.Render(name)
}

// rowIcon renders the folder or file glyph followed by a space, or nothing
// when the icon set has no glyph for the entry's kind.
func rowIcon(e explorer.Entry, glyphs assets.Glyphs) string {
	glyph, color := glyphs.File, glyphs.FileColor
	if e.IsDir() {
		glyph, color = glyphs.Folder, glyphs.FolderColor
	}
	if glyph == "" {
		return ""
	}

	style := lipgloss.NewStyle()
	if color != "" {
		style = style.Foreground(lipgloss.Color(color))
	}
	return style.Render(glyph) + " "
}
