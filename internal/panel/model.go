package panel

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/sx/internal/assets"
	"github.com/rileyhilliard/sx/internal/errors"
	"github.com/rileyhilliard/sx/internal/explorer"
	"github.com/rileyhilliard/sx/internal/logger"
	"github.com/rileyhilliard/sx/internal/metrics"
)

// DefaultTitle is the window label.
const DefaultTitle = "Sum Explorer"

// DefaultInterval is the frame period when Options.Interval is unset.
const DefaultInterval = 100 * time.Millisecond

// Options configures a panel Model.
type Options struct {
	Title       string
	Interval    time.Duration
	Glyphs      assets.Glyphs
	ShowOverlay bool

	// Notice is shown in the status line until the first handled input, e.g.
	// an icon set that failed to load.
	Notice error

	Logger logger.Logger
}

// Model is the Bubble Tea model for the panel. It owns the explorer state and
// the metrics provider handed to NewModel.
type Model struct {
	dir     *explorer.Model
	metrics *metrics.Provider
	list    *ListView
	clock   *FrameClock
	history *ringBuffer
	help    help.Model
	glyphs  assets.Glyphs
	log     logger.Logger

	title    string
	interval time.Duration
	sample   metrics.Sample
	notice   string
	navErr   string

	width  int
	height int

	showOverlay bool
	showHelp    bool
	quitting    bool
}

// frameMsg drives the render loop.
type frameMsg time.Time

// NewModel creates a panel over dir, listing with lister and sampling from
// provider.
func NewModel(dir *explorer.Model, lister *explorer.Lister, provider *metrics.Provider, opts Options) Model {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}

	h := help.New()
	h.Width = contentWidth

	return Model{
		dir:         dir,
		metrics:     provider,
		list:        NewListView(lister, listHeight),
		clock:       NewFrameClock(DefaultFrameWindow),
		history:     newRingBuffer(historyWidth),
		help:        h,
		glyphs:      opts.Glyphs,
		log:         opts.Logger,
		title:       opts.Title,
		interval:    opts.Interval,
		notice:      errors.Summary(opts.Notice),
		showOverlay: opts.ShowOverlay,
	}
}

// Init renders the first frame immediately.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return frameMsg(time.Now())
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.RenderFrame(time.Time(msg))
		return m, m.frameCmd()

	case tea.KeyMsg:
		if handled, cmd := m.HandleKeyMsg(msg); handled {
			m.notice = ""
			return m, cmd
		}

	case tea.MouseMsg:
		if m.HandleMouseMsg(msg) {
			m.notice = ""
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// RenderFrame brings the frame state up to date: ticks the frame clock,
// re-enumerates the current directory, and takes a fresh metrics sample.
func (m *Model) RenderFrame(now time.Time) {
	m.clock.Tick(now)
	m.list.Sync(m.dir)
	m.sample = m.metrics.Sample()
	m.history.push(m.sample.CPUPercent)
}

func (m Model) frameCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Sample returns the metrics taken on the last frame.
func (m Model) Sample() metrics.Sample {
	return m.sample
}

// Explorer returns the navigation state.
func (m Model) Explorer() *explorer.Model {
	return m.dir
}

// List returns the directory list view.
func (m Model) List() *ListView {
	return m.list
}

// Clock returns the frame clock.
func (m Model) Clock() *FrameClock {
	return m.clock
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}
