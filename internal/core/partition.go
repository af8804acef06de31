package core

import "log"

// Item is one label/value pair of a grid.
type Item struct {
	Label   string `json:"label"`
	Content string `json:"content"`
	// Span is the number of columns the item occupies. Zero means 1.
	Span int `json:"span,omitempty"`
}

// EffectiveSpan returns the span used for layout. Non-positive spans count as 1.
func (it Item) EffectiveSpan() int {
	if it.Span < 1 {
		return 1
	}
	return it.Span
}

// WithSpan returns a copy of the item with its span replaced.
func (it Item) WithSpan(span int) Item {
	it.Span = span
	return it
}

// Row is a run of items laid out on one grid line.
type Row []Item

// Span returns the sum of the effective spans in the row.
func (r Row) Span() int {
	sum := 0
	for _, it := range r {
		sum += it.EffectiveSpan()
	}
	return sum
}

// Warnf receives non-fatal layout diagnostics.
type Warnf func(format string, args ...any)

func warner(w Warnf) Warnf {
	if w == nil {
		return log.Printf
	}
	return w
}

// Partition groups items into rows of the given width.
//
// A row closes as soon as its span sum reaches or passes columns. Passing it
// is reported through warn but the row still closes at that item; nothing is
// dropped or truncated. A trailing short row is returned as the last row
// without padding.
func Partition(items []Item, columns int, warn Warnf) []Row {
	warn = warner(warn)
	if columns < 1 {
		columns = 1
	}

	var rows []Row
	var current Row
	sum := 0

	for i, it := range items {
		if it.Span < 0 {
			warn("labelgrid: item %d (%q) has span %d, using 1", i, it.Label, it.Span)
		}
		current = append(current, it)
		sum += it.EffectiveSpan()

		if sum < columns {
			continue
		}
		if sum > columns {
			warn("labelgrid: row %d spans %d columns, more than the %d available", len(rows)+1, sum, columns)
		}
		rows = append(rows, current)
		current = nil
		sum = 0
	}

	if len(current) > 0 {
		rows = append(rows, current)
	}
	return rows
}
