package ui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucky7xz/labelgrid/internal/config"
	"github.com/lucky7xz/labelgrid/internal/core"
	"github.com/lucky7xz/labelgrid/internal/screen"
)

const statusDuration = 3 * time.Second

// Model is the live grid. The controller and observer are shared pointers,
// so copies of the model made by Bubble Tea all drive the same layout.
type Model struct {
	ctrl     *core.Controller
	observer *screen.Observer
	source   Source
	styles   Styles
	controls config.Controls
	spinner  spinner.Model

	termWidth  int
	termHeight int
	cursorRow  int
	cursorCol  int

	// Overrides set from the keyboard survive reloads.
	borderedOverride *bool
	sizeOverride     core.Size

	status        string
	statusIsError bool
	statusTimerID int

	Quitting bool
}

// NewModel builds a model over src, starting from props, and activates its
// controller on obs.
func NewModel(src Source, props core.Props, obs *screen.Observer, styles Styles) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = styles.Title

	ctrl := core.NewController(obs, props, core.WithWarnf(log.Printf))
	ctrl.Activate()

	return Model{
		ctrl:     ctrl,
		observer: obs,
		source:   src,
		styles:   styles,
		controls: config.DefaultControls(),
		spinner:  sp,
	}
}

// WithControls replaces the default key bindings.
func (m Model) WithControls(c config.Controls) Model {
	c.InitControls()
	m.controls = c
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.source.Watch())
}

// Grid returns the grid the model currently shows.
func (m Model) Grid() core.Grid {
	return m.ctrl.Grid()
}

// Close releases the breakpoint subscription. It is safe to call twice.
func (m Model) Close() {
	m.ctrl.Deactivate()
}

func (m *Model) applyProps(props core.Props) {
	if m.borderedOverride != nil {
		props.Bordered = *m.borderedOverride
	}
	if m.sizeOverride != "" {
		props.Size = m.sizeOverride
	}
	m.ctrl.SetProps(props)
	m.clampCursor()
}

func (m *Model) clampCursor() {
	r, c := core.ClampCursor(m.ctrl.Grid(), m.cursorRow, m.cursorCol)
	if r < 0 {
		r, c = 0, 0
	}
	m.cursorRow, m.cursorCol = r, c
}

func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.status = msg
	m.statusIsError = isErr
	m.statusTimerID++
	id := m.statusTimerID
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return statusClearMsg{id: id}
	})
}

func (m Model) statusLine() string {
	if m.status == "" {
		return ""
	}
	if m.statusIsError {
		return m.styles.Error.Render(m.status)
	}
	return lipgloss.NewStyle().Render(m.status)
}
