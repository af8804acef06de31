package core

// CellKind tells the renderer which shape a cell has.
type CellKind int

const (
	// CellItem is a combined label+content cell (unbordered grids).
	CellItem CellKind = iota
	// CellLabel is the label half of a bordered item.
	CellLabel
	// CellContent is the content half of a bordered item.
	CellContent
)

func (k CellKind) String() string {
	switch k {
	case CellItem:
		return "item"
	case CellLabel:
		return "label"
	case CellContent:
		return "content"
	default:
		return "unknown"
	}
}

// MarshalText lets cells serialize their kind by name.
func (k CellKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Cell is one renderer-facing cell of a row.
type Cell struct {
	Kind    CellKind `json:"kind"`
	Label   string   `json:"label,omitempty"`
	Content string   `json:"content,omitempty"`
	// Span is measured in grid units: columns for unbordered grids,
	// 2*columns for bordered ones (every item owns a label unit).
	Span int `json:"span"`
}

// RenderRow turns a row into cells.
//
// When last is set the final item is stretched to consume whatever columns
// the rest of the row leaves, so the grid's closing row fills its width.
// The stretched item is a copy; row is not modified.
func RenderRow(row Row, columns int, last, bordered bool) []Cell {
	if len(row) == 0 {
		return nil
	}

	head := row[:len(row)-1]
	tail := row[len(row)-1]

	if last {
		tail = tail.WithSpan(stretchSpan(head, columns))
	}

	cells := make([]Cell, 0, cellsPerItem(bordered)*len(row))
	for _, it := range head {
		cells = appendItemCells(cells, it, bordered)
	}
	return appendItemCells(cells, tail, bordered)
}

// stretchSpan returns the span the final item needs to fill the row.
// A head that already fills the row leaves nothing to stretch into; the item
// then keeps a single column rather than a non-positive span.
func stretchSpan(head Row, columns int) int {
	span := columns - head.Span()
	if span < 1 {
		return 1
	}
	return span
}

func cellsPerItem(bordered bool) int {
	if bordered {
		return 2
	}
	return 1
}

func appendItemCells(cells []Cell, it Item, bordered bool) []Cell {
	span := it.EffectiveSpan()
	if !bordered {
		return append(cells, Cell{
			Kind:    CellItem,
			Label:   it.Label,
			Content: it.Content,
			Span:    span,
		})
	}
	return append(cells,
		Cell{Kind: CellLabel, Label: it.Label, Span: 1},
		Cell{Kind: CellContent, Content: it.Content, Span: 2*span - 1},
	)
}
