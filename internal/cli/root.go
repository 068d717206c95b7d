// Package cli provides the command-line interface for todo.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/tui"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupSetup = "setup"
)

// storageAnnotation marks what a command needs opened before it runs.
const storageAnnotation = "todo/storage"

const (
	storageTasks  = "tasks"  // Config and task backend
	storageConfig = "config" // Config only; backend errors are not fatal
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = tui.Run

// NewRootCommand creates the root command for todo.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "todo",
		Short: "Persisted command line todo list",
		Long: `todo keeps an ordered list of tasks in a plain text file.

Each task is one line starting with a status marker:
  [ ] pending task
  [x] finished task

Tasks are addressed by their 1-based position as shown by 'todo list'.`,
		Version: version,
		Args:    cobra.ArbitraryArgs,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			switch requiredStorage(cmd) {
			case storageTasks:
				return c.Open(opts)
			case storageConfig:
				o := opts
				o.NoStorage = true
				return c.Open(o)
			default:
				return nil
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No or unknown command: show usage and succeed
			if len(args) > 0 {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s\n\n", strings.Join(args, " "))
			}
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&opts.File, "file", "", "Storage file path (overrides storage.path)")
	root.PersistentFlags().StringVar(&opts.Backend, "backend", "", "Storage backend: text, json, git, sqlite, mysql, postgres")
	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Additional config file merged last")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	// Task management commands
	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	doneCmd := newDoneCommand(c)
	doneCmd.GroupID = groupTask

	clearCmd := newClearCommand(c)
	clearCmd.GroupID = groupTask

	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupTask

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTask

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		addCmd,
		listCmd,
		doneCmd,
		clearCmd,
		exportCmd,
		tuiCmd,
		configCmd,
	)

	return root
}

// requiredStorage returns the storage annotation of cmd or its nearest annotated parent.
func requiredStorage(cmd *cobra.Command) string {
	for cur := cmd; cur != nil; cur = cur.Parent() {
		if v, ok := cur.Annotations[storageAnnotation]; ok {
			return v
		}
	}
	return ""
}

// needs returns the annotation map for a storage requirement.
func needs(storage string) map[string]string {
	return map[string]string{storageAnnotation: storage}
}
