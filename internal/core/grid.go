package core

// ItemCount returns how many items a rendered row holds.
func ItemCount(row []Cell) int {
	n := 0
	for _, c := range row {
		if c.Kind != CellLabel {
			n++
		}
	}
	return n
}

// ItemAt returns the label and content of the col-th item of a rendered row.
func ItemAt(row []Cell, col int) (label, content string, ok bool) {
	if col < 0 {
		return "", "", false
	}
	i := 0
	for idx, c := range row {
		switch c.Kind {
		case CellItem:
			if i == col {
				return c.Label, c.Content, true
			}
			i++
		case CellContent:
			if i == col {
				if idx > 0 && row[idx-1].Kind == CellLabel {
					label = row[idx-1].Label
				}
				return label, c.Content, true
			}
			i++
		}
	}
	return "", "", false
}

// ClampCursor moves (row, col) onto the nearest existing item of g.
// It returns (-1, -1) for an empty grid.
func ClampCursor(g Grid, row, col int) (int, int) {
	if len(g.Rows) == 0 {
		return -1, -1
	}
	if row < 0 {
		row = 0
	}
	if row >= len(g.Rows) {
		row = len(g.Rows) - 1
	}
	last := ItemCount(g.Rows[row]) - 1
	if col > last {
		col = last
	}
	if col < 0 {
		col = 0
	}
	return row, col
}
