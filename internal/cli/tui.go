package cli

import (
	"github.com/spf13/cobra"

	"github.com/runoshun/todo/internal/app"
)

// newTUICommand creates the tui command for launching the interactive TUI.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long: `Launch the interactive terminal user interface.

Keys: j/k move, space or enter marks done, a adds, f cycles the
status filter, r reloads, ? shows help, q quits.`,
		Args:        cobra.NoArgs,
		Annotations: needs(storageTasks),
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
}
