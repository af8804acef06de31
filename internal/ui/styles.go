package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucky7xz/labelgrid/internal/config"
	"github.com/lucky7xz/labelgrid/internal/core"
)

// Styling lives in one place so colors and layout tweaks are easy to reason about.

var appStyle = lipgloss.NewStyle().Margin(1, 2)

// retroBorder frames bordered cells.
var retroBorder = lipgloss.Border{
	Top:         "━",
	Bottom:      "━",
	Left:        "│",
	Right:       "│",
	TopLeft:     "┍",
	TopRight:    "┑",
	BottomLeft:  "┕",
	BottomRight: "┙",
}

// UIColors describes concrete UI component colors derived from a theme.
type UIColors struct {
	TitleFG     string
	ExtraFG     string
	LabelFG     string
	ContentFG   string
	GridBorder  string
	GridSel     string
	LabelCellBG string
	HelpFG      string
	Warning     string
	StatusInfo  string
}

// MapThemeToUI maps a theme palette to concrete UI component colors.
func MapThemeToUI(t config.ThemeConfig) UIColors {
	return UIColors{
		TitleFG:     t.Primary,
		ExtraFG:     t.Secondary,
		LabelFG:     t.Info,
		ContentFG:   t.Foreground,
		GridBorder:  t.Comment,
		GridSel:     t.Accent,
		LabelCellBG: t.Background,
		HelpFG:      t.Comment,
		Warning:     t.Warning,
		StatusInfo:  t.Success,
	}
}

// Styles holds every style the grid view and the TUI chrome use.
type Styles struct {
	Title        lipgloss.Style
	Extra        lipgloss.Style
	Label        lipgloss.Style
	Content      lipgloss.Style
	Cell         lipgloss.Style
	SelectedCell lipgloss.Style
	Help         lipgloss.Style
	Status       lipgloss.Style
	Error        lipgloss.Style
}

// NewStyles builds styles for the named theme.
func NewStyles(theme string) Styles {
	ui := MapThemeToUI(config.GetTheme(theme))

	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ui.TitleFG)).
			Bold(true),
		Extra: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ui.ExtraFG)),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ui.LabelFG)).
			Bold(true),
		Content: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ui.ContentFG)),
		Cell: lipgloss.NewStyle().
			BorderForeground(lipgloss.Color(ui.GridBorder)),
		SelectedCell: lipgloss.NewStyle().
			BorderForeground(lipgloss.Color(ui.GridSel)).
			Foreground(lipgloss.Color(ui.GridSel)),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ui.HelpFG)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ui.StatusInfo)).
			PaddingTop(1),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ui.Warning)).
			Bold(true),
	}
}

// PlainStyles renders without colors, for piping and tests.
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{
		Title: s, Extra: s, Label: s, Content: s,
		Cell: s, SelectedCell: s, Help: s, Status: s.PaddingTop(1), Error: s,
	}
}

// cellPadding returns vertical and horizontal padding for a size modifier.
// Unbordered cells only apply the vertical part below the text.
func cellPadding(size core.Size) (int, int) {
	switch size {
	case core.SizeSmall:
		return 0, 1
	case core.SizeMiddle:
		return 0, 2
	default:
		return 1, 2
	}
}
