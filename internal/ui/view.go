package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucky7xz/labelgrid/internal/core"
)

func (m Model) View() string {
	if m.termWidth == 0 {
		return "Initializing..."
	}

	g := m.ctrl.Grid()
	grid := RenderGrid(g, GridWidth(m.termWidth), m.styles, Cursor{Row: m.cursorRow, Col: m.cursorCol})
	layout := CalculateLayout(m.termHeight, lipgloss.Height(grid))

	blocks := []string{grid}
	if len(g.Rows) == 0 {
		blocks = append(blocks, m.styles.Help.Render("(no items)"))
	}
	if layout.ShowDetail {
		if detail := m.renderDetail(g); detail != "" {
			blocks = append(blocks, detail)
		}
	}
	if layout.ShowStatus {
		blocks = append(blocks, m.renderStatusBar(g))
	}
	if layout.ShowHelp {
		blocks = append(blocks, m.styles.Help.Render(m.helpText()))
	}
	if s := m.statusLine(); s != "" {
		blocks = append(blocks, s)
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

// renderDetail repeats the selected item on one line, since its cell may
// wrap the text.
func (m Model) renderDetail(g core.Grid) string {
	if m.cursorRow < 0 || m.cursorRow >= len(g.Rows) {
		return ""
	}
	label, content, ok := core.ItemAt(g.Rows[m.cursorRow], m.cursorCol)
	if !ok {
		return ""
	}
	label = fitLine(label, GridWidth(m.termWidth)/2) + ": "
	content = fitLine(content, GridWidth(m.termWidth)-lipgloss.Width(label))
	return lipgloss.NewStyle().PaddingTop(1).Render(
		m.styles.Label.Render(label) + m.styles.Content.Render(content),
	)
}

func (m Model) renderStatusBar(g core.Grid) string {
	bp := string(g.Breakpoint)
	if bp == "" {
		bp = "?"
	}
	separator := m.styles.Help.Render(" | ")
	return m.styles.Status.Render(lipgloss.JoinHorizontal(lipgloss.Left,
		m.spinner.View()+" ",
		fmt.Sprintf("SOURCE: %s", m.source.Name()),
		separator,
		fmt.Sprintf("BREAKPOINT: %s", bp),
		separator,
		fmt.Sprintf("COLUMNS: %d", g.Columns),
		separator,
		fmt.Sprintf("SIZE: %s", g.Size),
	))
}

func (m Model) helpText() string {
	c := m.controls
	return fmt.Sprintf("↑/↓/←/→: Select | %s: Border | %s: Size | %s: Reload | %s: Open | q: Quit",
		c.Border, c.Size, c.Reload, c.Open)
}
