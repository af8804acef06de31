package ui

import (
	"fmt"
	"log"
	"slices"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucky7xz/labelgrid/internal/core"
	"github.com/lucky7xz/labelgrid/internal/native"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		if m.observer.Dispatch(msg.Width) {
			bp, _ := m.ctrl.Screens().Widest()
			log.Printf("breakpoint %s at width %d: %d columns", bp, msg.Width, m.ctrl.Grid().Columns)
		}
		m.clampCursor()
		return m, nil

	case SourceChangedMsg:
		// Only watch-originated messages re-arm the watch, so exactly one
		// watch is outstanding at any time.
		return m.reload(msg.Reason, m.source.Watch())

	case reloadMsg:
		return m.reload("manual", nil)

	case statusClearMsg:
		if msg.id == m.statusTimerID {
			m.status = ""
			m.statusIsError = false
		}
		return m, nil

	case openResultMsg:
		if msg.err != nil {
			log.Printf("open %s: %v", msg.target, msg.err)
			return m, m.setStatus(fmt.Sprintf("Open failed: %v", msg.err), true)
		}
		return m, m.setStatus("Opened "+msg.target, false)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

// reload reads the source again and batches rearm, which may be nil. A
// failed load keeps the last good grid on screen.
func (m Model) reload(reason string, rearm tea.Cmd) (tea.Model, tea.Cmd) {
	props, err := m.source.Load()
	if err != nil {
		log.Printf("reload %s: %v", m.source.Name(), err)
		return m, tea.Batch(m.setStatus(fmt.Sprintf("Reload failed: %v", err), true), rearm)
	}
	m.applyProps(props)
	cmds := []tea.Cmd{rearm}
	if reason != "refresh" {
		cmds = append(cmds, m.setStatus("Reloaded "+m.source.Name(), false))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch {
	case key == "q" || key == "esc" || key == "ctrl+c":
		m.Close()
		m.Quitting = true
		return m, tea.Quit

	case key == m.controls.Border:
		bordered := !m.ctrl.Props().Bordered
		m.borderedOverride = &bordered
		m.applyProps(m.ctrl.Props())
		return m, m.setStatus(fmt.Sprintf("Bordered: %v", onOff(bordered)), false)

	case key == m.controls.Size:
		m.sizeOverride = m.ctrl.Props().Size.Next()
		m.applyProps(m.ctrl.Props())
		return m, m.setStatus(fmt.Sprintf("Size: %s", m.sizeOverride), false)

	case key == m.controls.Reload:
		return m, func() tea.Msg { return reloadMsg{} }

	case key == m.controls.Open:
		return m.openSelected()

	case slices.Contains(m.controls.NavUp, key):
		m.moveCursor(-1, 0)
	case slices.Contains(m.controls.NavDown, key):
		m.moveCursor(1, 0)
	case slices.Contains(m.controls.NavLeft, key):
		m.moveCursor(0, -1)
	case slices.Contains(m.controls.NavRight, key):
		m.moveCursor(0, 1)
	}
	return m, nil
}

// openSelected hands the selected item's content to the desktop when it is a
// URL or an existing path.
func (m Model) openSelected() (tea.Model, tea.Cmd) {
	g := m.ctrl.Grid()
	if m.cursorRow < 0 || m.cursorRow >= len(g.Rows) {
		return m, nil
	}
	_, content, ok := core.ItemAt(g.Rows[m.cursorRow], m.cursorCol)
	if !ok || !native.Openable(content) {
		return m, m.setStatus("Nothing to open", true)
	}
	return m, func() tea.Msg {
		return openResultMsg{target: content, err: native.Open(content)}
	}
}

// moveCursor steps the selection and keeps it on an existing item. Moving
// vertically keeps the column where the target row is long enough.
func (m *Model) moveCursor(rowDir, colDir int) {
	g := m.ctrl.Grid()
	if len(g.Rows) == 0 {
		return
	}
	m.cursorRow, m.cursorCol = core.ClampCursor(g, m.cursorRow+rowDir, m.cursorCol+colDir)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
