package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// newAddCommand creates the add command.
func newAddCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "add <description>...",
		Short: "Add a task",
		Long: `Append a pending task to the end of the list.

All arguments are joined with single spaces to form the description.

Examples:
  todo add buy milk
  todo add "call mom"`,
		Args:        cobra.MinimumNArgs(1),
		Annotations: needs(storageTasks),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{
				Description: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task added: %s\n", out.Task.Description)
			return nil
		},
	}
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Pending bool
		Done    bool
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display every task with its number and status marker.

Numbers always refer to the position in the full list, also when
--pending or --done hides some tasks.

Examples:
  todo list
  todo list --pending`,
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

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{Filter: filter})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Total == 0 {
				_, _ = fmt.Fprintln(w, "No tasks yet!")
				return nil
			}
			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(w, "No matching tasks.")
				return nil
			}
			printTaskList(w, out.Tasks, c.AppConfig == nil || c.AppConfig.UI.Color)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Pending, "pending", false, "Show only pending tasks")
	cmd.Flags().BoolVar(&opts.Done, "done", false, "Show only finished tasks")
	cmd.MarkFlagsMutuallyExclusive("pending", "done")

	return cmd
}

// printTaskList prints one "N. [ ] description" line per task.
// Markers are colored when color is set and w is a color terminal.
func printTaskList(w io.Writer, tasks []domain.Task, color bool) {
	r := lipgloss.NewRenderer(w)
	pending := r.NewStyle().Foreground(lipgloss.Color("#74B9FF"))
	done := r.NewStyle().Foreground(lipgloss.Color("#00B894"))

	for _, t := range tasks {
		marker := t.Marker()
		if color {
			if t.Done {
				marker = done.Render(marker)
			} else {
				marker = pending.Render(marker)
			}
		}
		_, _ = fmt.Fprintf(w, "%d. %s %s\n", t.Index, marker, t.Description)
	}
}

// newDoneCommand creates the done command.
func newDoneCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "done <number>",
		Short: "Mark a task as done",
		Long: `Mark the task with the given number as done.

A number outside the list prints "Invalid task number." and changes nothing.

Examples:
  todo done 2`,
		Args:        cobra.ExactArgs(1),
		Annotations: needs(storageTasks),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task number %q: must be an integer", args[0])
			}

			out, err := c.MarkDoneUseCase().Execute(cmd.Context(), usecase.MarkDoneInput{Index: index})
			if errors.Is(err, domain.ErrInvalidIndex) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Invalid task number.")
				return nil
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %d marked as done.\n", out.Task.Index)
			return nil
		},
	}
}

// newClearCommand creates the clear command.
func newClearCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:         "clear",
		Short:       "Remove all tasks",
		Long:        `Remove every task, pending or done. There is no confirmation.`,
		Args:        cobra.NoArgs,
		Annotations: needs(storageTasks),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := c.ClearTasksUseCase().Execute(cmd.Context(), usecase.ClearTasksInput{}); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "All tasks cleared!")
			return nil
		},
	}
}
