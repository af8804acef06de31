package core

import (
	"reflect"
	"testing"
)

func cellSpans(cells []Cell) []int {
	out := make([]int, len(cells))
	for i, c := range cells {
		out[i] = c.Span
	}
	return out
}

func TestRenderRow_Unbordered(t *testing.T) {
	tests := []struct {
		name     string
		spans    []int
		columns  int
		last     bool
		expected []int
	}{
		{"Full row not last", []int{1, 1, 1}, 3, false, []int{1, 1, 1}},
		{"Full row last", []int{1, 1, 1}, 3, true, []int{1, 1, 1}},
		{"Short last row stretches", []int{1}, 3, true, []int{3}},
		{"Short last row with head", []int{1, 0}, 4, true, []int{1, 3}},
		{"Short row not last keeps span", []int{1}, 3, false, []int{1}},
		{"Overshot last row shrinks tail", []int{2, 2}, 3, true, []int{2, 1}},
		{"Head already past columns", []int{4, 1}, 3, true, []int{4, 1}},
		{"Empty row", nil, 3, true, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := RenderRow(Row(itemsWithSpans(tt.spans...)), tt.columns, tt.last, false)
			if got := cellSpans(cells); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("spans = %v, want %v", got, tt.expected)
			}
			for _, c := range cells {
				if c.Kind != CellItem {
					t.Errorf("unbordered cell kind = %v", c.Kind)
				}
			}
		})
	}
}

func TestRenderRow_Bordered(t *testing.T) {
	row := Row{
		{Label: "Name", Content: "orion", Span: 1},
		{Label: "Path", Content: "/tmp", Span: 2},
	}
	cells := RenderRow(row, 4, true, true)

	if len(cells) != 2*len(row) {
		t.Fatalf("expected %d cells, got %d", 2*len(row), len(cells))
	}
	want := []Cell{
		{Kind: CellLabel, Label: "Name", Span: 1},
		{Kind: CellContent, Content: "orion", Span: 1},
		{Kind: CellLabel, Label: "Path", Span: 1},
		// Stretched to 3 columns: 2*3-1 units.
		{Kind: CellContent, Content: "/tmp", Span: 5},
	}
	if !reflect.DeepEqual(cells, want) {
		t.Errorf("cells = %+v\nwant %+v", cells, want)
	}

	units := 0
	for _, c := range cells {
		units += c.Span
	}
	if units != 2*4 {
		t.Errorf("bordered row covers %d units, want %d", units, 8)
	}
}

func TestRenderRow_DoesNotMutateRow(t *testing.T) {
	row := Row(itemsWithSpans(1))
	before := append(Row(nil), row...)
	RenderRow(row, 3, true, false)
	if !reflect.DeepEqual(row, before) {
		t.Errorf("row mutated: %+v", row)
	}
}

func TestCellKindString(t *testing.T) {
	tests := []struct {
		kind     CellKind
		expected string
	}{
		{CellItem, "item"},
		{CellLabel, "label"},
		{CellContent, "content"},
		{CellKind(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("CellKind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}
