package cli

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/lucky7xz/labelgrid/internal/config"
	"github.com/lucky7xz/labelgrid/internal/core"
	"github.com/lucky7xz/labelgrid/internal/screen"
	"github.com/lucky7xz/labelgrid/internal/ui"
	"github.com/spf13/cobra"
)

// renderOptions override what the document says.
type renderOptions struct {
	width    int
	asJSON   bool
	bordered bool
	columns  int
	size     string
	plain    bool
}

func newRenderCmd(a *app) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Lay out a grid document once and print it",
		Long: `Render lays out a grid document at the given width, or the width of the
terminal, and prints it. With --json it prints the computed layout instead:
the active breakpoint, the resolved column count and every row of cells.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd, args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0,
		"layout width in terminal cells (default is the terminal width)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false,
		"print the computed layout as JSON")
	cmd.Flags().BoolVarP(&opts.bordered, "bordered", "b", false,
		"draw label and content cells in boxes")
	cmd.Flags().IntVarP(&opts.columns, "columns", "c", 0,
		"fixed column count (default follows the document and breakpoint)")
	cmd.Flags().StringVarP(&opts.size, "size", "s", "",
		"cell padding: default, middle or small")
	cmd.Flags().BoolVar(&opts.plain, "plain", false,
		"render without colors")
	return cmd
}

func (a *app) runRender(cmd *cobra.Command, args []string, opts *renderOptions) error {
	_, props, err := a.loadDocument(args)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("bordered") {
		props.Bordered = opts.bordered
	}
	if opts.columns < 0 {
		return fmt.Errorf("--columns must not be negative, got %d", opts.columns)
	}
	if opts.columns > 0 {
		props.Columns = core.FixedColumns(opts.columns)
	}
	if opts.size != "" {
		size, err := core.ParseSize(opts.size)
		if err != nil {
			return err
		}
		props.Size = size
	}

	width := opts.width
	if width <= 0 {
		width = screen.TerminalWidth(int(os.Stdout.Fd()))
	}
	return a.printGrid(cmd, props, width, opts.asJSON, opts.plain)
}

// printGrid lays props out once at width and writes the result to the
// command's output.
func (a *app) printGrid(cmd *cobra.Command, props core.Props, width int, asJSON, plain bool) error {
	thresholds, err := a.settings.Thresholds()
	if err != nil {
		return err
	}

	obs := screen.NewObserver(thresholds)
	obs.Dispatch(width)

	ctrl := core.NewController(obs, props, core.WithWarnf(warnTo(cmd.ErrOrStderr())))
	ctrl.Activate()
	defer ctrl.Deactivate()

	g := ctrl.Grid()
	log.Printf("render: width=%d breakpoint=%s columns=%d rows=%d", width, g.Breakpoint, g.Columns, len(g.Rows))

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(g)
	}

	styles := ui.NewStyles(a.theme)
	if plain {
		styles = ui.PlainStyles()
	}
	_, err = fmt.Fprintln(out, ui.RenderGrid(g, width, styles, ui.NoCursor))
	return err
}

// loadDocument resolves the document named by args, or the configured one,
// and converts it to layout inputs.
func (a *app) loadDocument(args []string) (string, core.Props, error) {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	path, err := config.DocumentPath(arg, a.settings, a.configDir)
	if err != nil {
		return "", core.Props{}, err
	}
	doc, err := config.LoadDocument(path)
	if err != nil {
		return "", core.Props{}, err
	}
	return path, doc.Props(), nil
}
