package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucky7xz/labelgrid/internal/core"
)

// minUnitWidth keeps a bordered single-unit cell wide enough for its frame
// and one character of text.
const minUnitWidth = 6

// Cursor marks the selected item of a grid. A negative Row selects nothing.
type Cursor struct {
	Row, Col int
}

// NoCursor renders a grid without a selection.
var NoCursor = Cursor{Row: -1, Col: -1}

// RenderGrid draws g into a block at most width cells wide (wider only when
// the grid has more units than fit). Every unit gets the same share of the
// width; rows that fill the grid absorb the rounding remainder in their last
// cell so right edges line up.
func RenderGrid(g core.Grid, width int, st Styles, cur Cursor) string {
	var blocks []string
	if header := renderGridHeader(g, width, st); header != "" {
		blocks = append(blocks, header)
	}

	units := g.Units()
	if units == 0 || len(g.Rows) == 0 {
		return strings.Join(blocks, "\n")
	}

	unit := width / units
	if unit < minUnitWidth {
		unit = minUnitWidth
	}
	extra := width - unit*units
	if extra < 0 {
		extra = 0
	}

	for r, row := range g.Rows {
		blocks = append(blocks, renderGridRow(g, r, row, unit, extra, st, cur))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func renderGridHeader(g core.Grid, width int, st Styles) string {
	if g.Title == "" && g.Extra == "" {
		return ""
	}
	title := st.Title.Render(g.Title)
	extra := st.Extra.Render(g.Extra)
	gap := width - lipgloss.Width(title) - lipgloss.Width(extra)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.NewStyle().PaddingBottom(1).Render(title + strings.Repeat(" ", gap) + extra)
}

// fitPadding caps hpad, applied on both sides of a cell with the given inner
// width, so at least one column is left for text.
func fitPadding(hpad, inner int) int {
	room := (inner - 1) / 2
	if room < 0 {
		room = 0
	}
	return min(hpad, room)
}

type drawnCell struct {
	text     string
	style    lipgloss.Style
	bordered bool
}

func renderGridRow(g core.Grid, r int, row []core.Cell, unit, extra int, st Styles, cur Cursor) string {
	vpad, hpad := cellPadding(g.Size)

	rowUnits := 0
	for _, c := range row {
		rowUnits += c.Span
	}

	cells := make([]drawnCell, 0, len(row))
	item := -1
	for i, c := range row {
		if c.Kind != core.CellContent {
			item++
		}
		selected := cur.Row == r && cur.Col == item

		w := c.Span * unit
		if i == len(row)-1 && rowUnits == g.Units() {
			w += extra
		}

		base := st.Cell
		if selected {
			base = st.SelectedCell
		}

		switch c.Kind {
		case core.CellLabel:
			cells = append(cells, drawnCell{
				text:     st.Label.Render(c.Label),
				style:    base.Border(retroBorder).Padding(vpad, fitPadding(hpad, w-2)).Width(w - 2),
				bordered: true,
			})
		case core.CellContent:
			cells = append(cells, drawnCell{
				text:     st.Content.Render(c.Content),
				style:    base.Border(retroBorder).Padding(vpad, fitPadding(hpad, w-2)).Width(w - 2),
				bordered: true,
			})
		default:
			label := c.Label
			if g.Colon && label != "" {
				label += ":"
			}
			text := st.Label.Render(label) + " " + st.Content.Render(c.Content)
			if selected {
				text = st.SelectedCell.Render("▸ ") + text
			}
			cells = append(cells, drawnCell{
				text:  text,
				style: lipgloss.NewStyle().PaddingRight(min(hpad, w-1)).PaddingBottom(vpad).Width(w),
			})
		}
	}

	// Equalize heights so borders line up across the row.
	maxH := 0
	for _, c := range cells {
		if h := lipgloss.Height(c.style.Render(c.text)); h > maxH {
			maxH = h
		}
	}
	rendered := make([]string, len(cells))
	for i, c := range cells {
		h := maxH
		if c.bordered {
			h -= 2
		}
		rendered[i] = c.style.Height(h).Render(c.text)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
