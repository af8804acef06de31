package core

import "testing"

func TestResolveColumns(t *testing.T) {
	wide := Screens{XXL: true, XL: true, LG: true, MD: true, SM: true}
	narrow := Screens{XS: true}

	tests := []struct {
		name     string
		cfg      ColumnConfig
		screens  Screens
		expected int
	}{
		{"Fixed ignores wide screens", FixedColumns(5), wide, 5},
		{"Fixed ignores narrow screens", FixedColumns(5), narrow, 5},
		{"Fixed without screens", FixedColumns(5), Screens{}, 5},
		{"Default table wide", ColumnConfig{}, wide, 3},
		{"Default table sm", ColumnConfig{}, Screens{SM: true}, 2},
		{"Default table xs", ColumnConfig{}, narrow, 1},
		{"Inactive wider entry skipped", ResponsiveColumns(map[Breakpoint]int{SM: 2, XS: 1}), Screens{XS: true, SM: false}, 1},
		{"Widest active entry wins", ResponsiveColumns(map[Breakpoint]int{XL: 6, MD: 4, SM: 2}), Screens{XL: true, LG: true, MD: true, SM: true}, 6},
		{"Active breakpoint missing from table", ResponsiveColumns(map[Breakpoint]int{XXL: 8, MD: 4}), Screens{LG: true, MD: true, SM: true}, 4},
		{"Zero entry uses built-in default", ResponsiveColumns(map[Breakpoint]int{SM: 0}), Screens{SM: true}, 2},
		{"Negative entry uses built-in default", ResponsiveColumns(map[Breakpoint]int{LG: -2}), Screens{LG: true}, 3},
		{"No match falls back", ResponsiveColumns(map[Breakpoint]int{XXL: 8}), Screens{MD: true}, FallbackColumns},
		{"Nothing reported yet", ResponsiveColumns(map[Breakpoint]int{XS: 1}), nil, FallbackColumns},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveColumns(tt.cfg, tt.screens); got != tt.expected {
				t.Errorf("ResolveColumns() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseBreakpoint(t *testing.T) {
	for _, bp := range Breakpoints {
		got, err := ParseBreakpoint(string(bp))
		if err != nil || got != bp {
			t.Errorf("ParseBreakpoint(%q) = %q, %v", bp, got, err)
		}
	}
	if _, err := ParseBreakpoint("2xl"); err == nil {
		t.Error("ParseBreakpoint(\"2xl\") should fail")
	}
}

func TestScreensWidest(t *testing.T) {
	tests := []struct {
		name     string
		screens  Screens
		expected Breakpoint
		ok       bool
	}{
		{"Empty", Screens{}, "", false},
		{"Only xs", Screens{XS: true}, XS, true},
		{"Several active", Screens{SM: true, MD: true, LG: true}, LG, true},
		{"False entries ignored", Screens{XXL: false, MD: true}, MD, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.screens.Widest()
			if got != tt.expected || ok != tt.ok {
				t.Errorf("Widest() = %q, %v, want %q, %v", got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestScreensEqualAndClone(t *testing.T) {
	a := Screens{MD: true, SM: true}
	b := a.Clone()
	if !a.Equal(b) {
		t.Fatal("clone should equal original")
	}
	b[LG] = true
	if a.Equal(b) {
		t.Error("snapshots with different active sets should differ")
	}
	if a[LG] {
		t.Error("mutating the clone changed the original")
	}
	if !(Screens{}).Equal(Screens{XS: false}) {
		t.Error("explicit false should equal absent")
	}
}
