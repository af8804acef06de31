package config

import (
	"fmt"
	"sort"

	"github.com/lucky7xz/labelgrid/internal/core"
)

// ItemSpec is one [[items]] entry of a grid document.
type ItemSpec struct {
	Label   string `toml:"label"`
	Content string `toml:"content"`
	Span    int    `toml:"span"`
}

// ColumnSpec decodes the `column` key, which is either an integer
// (`column = 2`) or a table keyed by breakpoint (`[column] sm = 2`).
type ColumnSpec struct {
	core.ColumnConfig
}

// UnmarshalTOML implements toml.Unmarshaler.
func (c *ColumnSpec) UnmarshalTOML(v any) error {
	switch val := v.(type) {
	case int64:
		if val < 1 {
			return fmt.Errorf("column must be at least 1, got %d", val)
		}
		c.ColumnConfig = core.FixedColumns(int(val))
		return nil
	case map[string]any:
		table := make(map[core.Breakpoint]int, len(val))
		for name, raw := range val {
			bp, err := core.ParseBreakpoint(name)
			if err != nil {
				return fmt.Errorf("column: %w", err)
			}
			n, ok := raw.(int64)
			if !ok {
				return fmt.Errorf("column.%s must be an integer, got %T", name, raw)
			}
			table[bp] = int(n)
		}
		c.ColumnConfig = core.ResponsiveColumns(table)
		return nil
	default:
		return fmt.Errorf("column must be an integer or a table, got %T", v)
	}
}

// String renders the column setting the way it would be written in a document.
func (c ColumnSpec) String() string {
	if c.IsFixed() {
		return fmt.Sprintf("%d", c.Fixed)
	}
	if c.PerBreakpoint == nil {
		return "auto"
	}
	keys := make([]string, 0, len(c.PerBreakpoint))
	for bp, n := range c.PerBreakpoint {
		keys = append(keys, fmt.Sprintf("%s=%d", bp, n))
	}
	sort.Strings(keys)
	return fmt.Sprint(keys)
}

// Document is a grid document as authored on disk (e.g. host.grid.toml).
type Document struct {
	Title    string     `toml:"title"`
	Extra    string     `toml:"extra"`
	Bordered bool       `toml:"bordered"`
	Size     string     `toml:"size"`
	Colon    *bool      `toml:"colon"`
	Prefix   string     `toml:"prefix"`
	Column   ColumnSpec `toml:"column"`
	Items    []ItemSpec `toml:"items"`
}

// Settings represents the global configuration in settings.toml
type Settings struct {
	Theme          string         `toml:"theme"`
	Document       string         `toml:"document"`
	RefreshSeconds int            `toml:"refresh_seconds"`
	Breakpoints    map[string]int `toml:"breakpoints"`
	Controls       Controls       `toml:"controls"`
}
