// Package app is the process entry point of the labelgrid binary.
package app

import (
	"os"

	"github.com/lucky7xz/labelgrid/internal/cli"
)

// Run dispatches the process arguments to the command tree. Without a
// subcommand it opens the configured grid document in the live view.
func Run() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
