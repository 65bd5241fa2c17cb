// Package cli provides the command-line interface for todo.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/todo/internal/app"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupSetup = "setup"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for todo.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "todo",
		Short: "A small to-do list",
		Long: `todo keeps a list of tasks, each with an assignee and a done flag.

Run without arguments to open the interactive list. The subcommands
operate on the same list for scripting.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	// Task management commands
	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTask

	toggleCmd := newToggleCommand(c)
	toggleCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupTask

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTask

	// Setup commands
	assigneesCmd := newAssigneesCommand(c)
	assigneesCmd.GroupID = groupSetup

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	migrateCmd := newMigrateCommand(c)
	migrateCmd.GroupID = groupSetup

	root.AddCommand(
		addCmd,
		rmCmd,
		toggleCmd,
		listCmd,
		exportCmd,
		tuiCmd,
		assigneesCmd,
		configCmd,
		migrateCmd,
	)

	return root
}
