package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Format  string
		Output  string
		Pending bool
		Done    bool
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tasks to a document",
		Long: `Render the task list as text, json, yaml, csv or pdf.

Output goes to stdout unless --output is given. pdf requires --output.

Examples:
  todo export --format json
  todo export --format pdf --output todo.pdf
  todo export -f yaml --pending`,
		Args:        cobra.NoArgs,
		Annotations: needs(storageTasks),
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := domain.FilterAll
			switch {
			case opts.Pending:
				filter = domain.FilterPending
			case opts.Done:
				filter = domain.FilterDone
			}

			out, err := c.ExportTasksUseCase().Execute(cmd.Context(), usecase.ExportTasksInput{
				Stdout:     cmd.OutOrStdout(),
				Format:     opts.Format,
				OutputPath: opts.Output,
				Filter:     filter,
			})
			if err != nil {
				return err
			}

			if out.Path != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d tasks to %s\n", out.Count, out.Path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "text", "Output format: text, json, yaml, csv, pdf")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().BoolVar(&opts.Pending, "pending", false, "Export only pending tasks")
	cmd.Flags().BoolVar(&opts.Done, "done", false, "Export only finished tasks")
	cmd.MarkFlagsMutuallyExclusive("pending", "done")

	return cmd
}
