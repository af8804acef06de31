package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const ellipsis = "…"

// fitLine flattens s to a single line of at most width cells. Text that does
// not fit is cut at a rune boundary and ends in an ellipsis.
func fitLine(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}

	limit := width - lipgloss.Width(ellipsis)
	var b strings.Builder
	cur := 0
	for _, r := range s {
		w := lipgloss.Width(string(r))
		if cur+w > limit {
			break
		}
		b.WriteRune(r)
		cur += w
	}
	return strings.TrimRight(b.String(), " ") + ellipsis
}
