package ui

// Layout constants define the geometry of the TUI chrome around the grid.
const (
	LayoutSideMargin   = 4 // Left + Right margins (appStyle)
	LayoutVertPadding  = 2 // Top + Bottom margins (appStyle)
	LayoutStatusHeight = 2 // Status bar incl. its top padding
	LayoutHelpHeight   = 1
	LayoutDetailHeight = 2
)

// Layout controls the visibility of UI elements based on terminal size.
type Layout struct {
	ShowDetail bool
	ShowStatus bool
	ShowHelp   bool
}

// GridWidth returns the width available to the grid inside the margins.
func GridWidth(termW int) int {
	if w := termW - LayoutSideMargin; w > 0 {
		return w
	}
	return 1
}

// CalculateLayout decides which chrome fits around a grid of gridHeight
// lines. It prioritizes the grid, then the status bar, then help and detail.
func CalculateLayout(termH, gridHeight int) Layout {
	l := Layout{
		ShowDetail: true,
		ShowStatus: true,
		ShowHelp:   true,
	}

	free := termH - LayoutVertPadding - gridHeight
	if free < LayoutStatusHeight+LayoutHelpHeight+LayoutDetailHeight {
		l.ShowDetail = false
	}
	if free < LayoutStatusHeight+LayoutHelpHeight {
		l.ShowHelp = false
	}
	if free < LayoutStatusHeight {
		l.ShowStatus = false
	}
	return l
}
