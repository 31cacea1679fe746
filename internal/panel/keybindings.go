package panel

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/sx/internal/errors"
)

// keyMap defines the panel key bindings.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	First    key.Binding
	Last     key.Binding
	Open     key.Binding
	Select   key.Binding
	GoUp     key.Binding
	Overlay  key.Binding
	Help     key.Binding
	Close    key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	First: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("home/g", "first"),
	),
	Last: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("end/G", "last"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", "l", "right"),
		key.WithHelp("enter", "open"),
	),
	Select: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "select"),
	),
	GoUp: key.NewBinding(
		key.WithKeys("backspace", "h", "left", "u"),
		key.WithHelp("⌫/h", "go up"),
	),
	Overlay: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "frame stats"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp returns the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.GoUp, k.Overlay, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.First, k.Last, k.Open, k.Select},
		{k.GoUp, k.Overlay, k.Help, k.Quit},
	}
}

// HandleKeyMsg processes keyboard input. Returns true if the key was handled.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	if key.Matches(msg, keys.Help) {
		m.showHelp = !m.showHelp
		return true, nil
	}

	if m.showHelp && key.Matches(msg, keys.Close) {
		m.showHelp = false
		return true, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, keys.Up):
		m.list.MoveCursor(-1)
	case key.Matches(msg, keys.Down):
		m.list.MoveCursor(1)
	case key.Matches(msg, keys.PageUp):
		m.list.MoveCursor(-m.list.PageSize())
	case key.Matches(msg, keys.PageDown):
		m.list.MoveCursor(m.list.PageSize())
	case key.Matches(msg, keys.First):
		m.list.CursorFirst()
	case key.Matches(msg, keys.Last):
		m.list.CursorLast()

	case key.Matches(msg, keys.Open):
		m.recordNavigation(m.list.ActivateCursor(m.dir))
	case key.Matches(msg, keys.Select):
		m.list.SelectCursor(m.dir)
	case key.Matches(msg, keys.GoUp):
		m.goUp()

	case key.Matches(msg, keys.Overlay):
		m.showOverlay = !m.showOverlay

	default:
		return false, nil
	}

	return true, nil
}

// HandleMouseMsg maps left clicks onto the Go Up button and list rows, and
// the wheel onto the cursor. While help is shown, a left click only closes it.
// Returns true if the event was handled.
func (m *Model) HandleMouseMsg(msg tea.MouseMsg) bool {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.list.MoveCursor(-1)
		return true
	case tea.MouseButtonWheelDown:
		m.list.MoveCursor(1)
		return true
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}

	// The help box is modal; a click dismisses it and goes no further.
	if m.showHelp {
		m.showHelp = false
		return true
	}

	if msg.Y == menuY && msg.X >= contentLeft && msg.X < contentLeft+lipgloss.Width(goUpLabel) {
		m.goUp()
		return true
	}

	if msg.X < contentLeft || msg.X >= contentLeft+leftColumnWidth {
		return false
	}
	i, ok := m.list.RowAt(msg.Y - listTopY)
	if !ok {
		return false
	}
	m.recordNavigation(m.list.Activate(m.dir, i))
	return true
}

func (m *Model) goUp() {
	m.dir.NavigateUp()
	m.navErr = ""
	m.list.Sync(m.dir)
}

// recordNavigation keeps the latest Enter failure for the status line.
func (m *Model) recordNavigation(err error) {
	if err != nil {
		m.log.Debug("navigation failed: %s", errors.Summary(err))
		m.navErr = errors.Summary(err)
		return
	}
	m.navErr = ""
}
