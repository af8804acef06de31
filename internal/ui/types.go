package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucky7xz/labelgrid/internal/core"
)

// labelgrid is built on Bubble Tea, which follows the Elm Architecture (Model-View-Update).
// These shared types describe the pieces that move through that loop.

// Source produces the items of a live grid.
type Source interface {
	// Name is shown in the status bar.
	Name() string
	// Load reads the current layout inputs.
	Load() (core.Props, error)
	// Watch returns a command that resolves to SourceChangedMsg once the
	// source has new data.
	Watch() tea.Cmd
}

type (
	// SourceChangedMsg is sent by a source's Watch command when it has new
	// data. Handling it reloads the source and starts the next watch.
	SourceChangedMsg struct {
		Reason string
	}
	// reloadMsg asks for a reload from the keyboard. The running watch is
	// left alone.
	reloadMsg struct{}
	statusClearMsg struct {
		id int
	}
	openResultMsg struct {
		target string
		err    error
	}
)
