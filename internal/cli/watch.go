package cli

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucky7xz/labelgrid/internal/core"
	"github.com/lucky7xz/labelgrid/internal/screen"
	"github.com/lucky7xz/labelgrid/internal/ui"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [file]",
		Short: "Show a grid document live",
		Long: `Watch opens a grid document in a full screen view. The grid reflows as the
terminal is resized and reloads whenever the document is saved.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runWatch,
	}
}

func newNetCmd(a *app) *cobra.Command {
	var bordered, once bool

	cmd := &cobra.Command{
		Use:   "net",
		Short: "Show network interface counters as a live grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src := ui.NetSource{Interval: a.settings.Refresh(), Bordered: bordered}
			if once {
				props, err := src.Load()
				if err != nil {
					return fmt.Errorf("read interface counters: %w", err)
				}
				width := screen.TerminalWidth(int(os.Stdout.Fd()))
				return a.printGrid(cmd, props, width, false, false)
			}
			props, err := src.Load()
			if err != nil {
				// The first tick retries; start with an empty grid.
				log.Printf("initial interface read failed: %v", err)
			}
			return a.runProgram(src, props)
		},
	}
	cmd.Flags().BoolVarP(&bordered, "bordered", "b", false, "draw cells in boxes")
	cmd.Flags().BoolVar(&once, "once", false, "print the counters once and exit")
	return cmd
}

func (a *app) runWatch(_ *cobra.Command, args []string) error {
	path, props, err := a.loadDocument(args)
	if err != nil {
		return err
	}
	return a.runProgram(ui.FileSource{Path: path}, props)
}

// runProgram runs the TUI until the user quits. The breakpoint subscription
// is released however the program ends.
func (a *app) runProgram(src ui.Source, props core.Props) error {
	thresholds, err := a.settings.Thresholds()
	if err != nil {
		return err
	}

	obs := screen.NewObserver(thresholds)
	m := ui.NewModel(src, props, obs, ui.NewStyles(a.theme)).WithControls(a.settings.Controls)
	defer m.Close()

	log.Printf("Starting live grid for %s", src.Name())
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("alas, there's been an error: %w", err)
	}
	return nil
}
