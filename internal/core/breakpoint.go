package core

import "fmt"

// Breakpoint names a terminal width class that column counts can be keyed on.
type Breakpoint string

const (
	XXL Breakpoint = "xxl"
	XL  Breakpoint = "xl"
	LG  Breakpoint = "lg"
	MD  Breakpoint = "md"
	SM  Breakpoint = "sm"
	XS  Breakpoint = "xs"
)

// Breakpoints lists every breakpoint from widest to narrowest.
// Column resolution walks this slice in order; map iteration order is never used.
var Breakpoints = []Breakpoint{XXL, XL, LG, MD, SM, XS}

// FallbackColumns is used when no active breakpoint matches the column config.
const FallbackColumns = 3

// DefaultColumns is the per-breakpoint column table used for missing or zero entries.
var DefaultColumns = map[Breakpoint]int{
	XXL: 3,
	XL:  3,
	LG:  3,
	MD:  3,
	SM:  2,
	XS:  1,
}

// ParseBreakpoint converts a name like "md" into a Breakpoint.
func ParseBreakpoint(s string) (Breakpoint, error) {
	for _, bp := range Breakpoints {
		if string(bp) == s {
			return bp, nil
		}
	}
	return "", fmt.Errorf("unknown breakpoint %q", s)
}

// Screens reports which breakpoint conditions are currently satisfied.
type Screens map[Breakpoint]bool

// Widest returns the widest active breakpoint, or false if none is active.
func (s Screens) Widest() (Breakpoint, bool) {
	for _, bp := range Breakpoints {
		if s[bp] {
			return bp, true
		}
	}
	return "", false
}

// Clone returns an independent copy of s.
func (s Screens) Clone() Screens {
	if s == nil {
		return nil
	}
	out := make(Screens, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Equal reports whether both snapshots mark the same breakpoints active.
func (s Screens) Equal(o Screens) bool {
	for _, bp := range Breakpoints {
		if s[bp] != o[bp] {
			return false
		}
	}
	return true
}

// ColumnConfig is either a fixed column count or a per-breakpoint table.
// The zero value resolves through DefaultColumns.
type ColumnConfig struct {
	Fixed         int
	PerBreakpoint map[Breakpoint]int
}

// FixedColumns returns a config that ignores breakpoints.
func FixedColumns(n int) ColumnConfig {
	return ColumnConfig{Fixed: n}
}

// ResponsiveColumns returns a config keyed on breakpoints.
func ResponsiveColumns(m map[Breakpoint]int) ColumnConfig {
	return ColumnConfig{PerBreakpoint: m}
}

// IsFixed reports whether the config is a plain column count.
func (c ColumnConfig) IsFixed() bool {
	return c.Fixed > 0
}

// ResolveColumns returns the effective column count for the given screens.
//
// A fixed count is returned unchanged. Otherwise the first breakpoint, widest
// first, that is both active and present in the table wins; a zero or negative
// entry falls back to DefaultColumns for that breakpoint. When nothing matches
// (typically before the first screen report) FallbackColumns is returned.
func ResolveColumns(cfg ColumnConfig, screens Screens) int {
	if cfg.IsFixed() {
		return cfg.Fixed
	}

	table := cfg.PerBreakpoint
	if table == nil {
		table = DefaultColumns
	}

	for _, bp := range Breakpoints {
		if !screens[bp] {
			continue
		}
		n, ok := table[bp]
		if !ok {
			continue
		}
		if n > 0 {
			return n
		}
		return DefaultColumns[bp]
	}
	return FallbackColumns
}
