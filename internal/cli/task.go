package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// Section headings and empty texts shared with the TUI.
const (
	pendingHeading   = "Pending Tasks"
	completedHeading = "Tasks Done"
	pendingEmpty     = "No tasks yet! Add one above."
	completedEmpty   = "No tasks completed yet."
)

// newAddCommand creates the add command for creating tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	var assign string

	cmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a task",
		Long: `Add a task to the end of the list.

The words are joined with single spaces and trimmed. The new task is
pending and gets the next free ID.

Examples:
  todo add Buy milk
  todo add --assign Alice "Review the budget"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{
				Text:       strings.Join(args, " "),
				AssignedTo: assign,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d\n", out.Task.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&assign, "assign", "a", "", "Assignee (must be in [assignees] people)")

	return cmd
}

// newRmCommand creates the rm command for deleting tasks.
func newRmCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			out, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: id})
			if err != nil {
				return err
			}

			if !out.Deleted {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No task #%d\n", id)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d\n", id)
			return nil
		},
	}
	return cmd
}

// newToggleCommand creates the toggle command for flipping completion.
func newToggleCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"done"},
		Short:   "Mark a task complete or pending",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			out, err := c.ToggleTaskUseCase().Execute(cmd.Context(), usecase.ToggleTaskInput{TaskID: id})
			if err != nil {
				return err
			}

			if !out.Found {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No task #%d\n", id)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task #%d marked %s\n", id, out.Task.StatusLabel())
			return nil
		},
	}
	return cmd
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Assignee string
		Pending  bool
		Done     bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `Display the task list split into pending and completed sections.

Each section keeps the order in which tasks were added.

Examples:
  todo list
  todo list --pending
  todo list --assignee Alice`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Pending && opts.Done {
				return errors.New("cannot use --pending and --done together")
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{
				Assignee: opts.Assignee,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if !opts.Done {
				printSection(w, pendingHeading, pendingEmpty, out.Pending)
			}
			if !opts.Pending && !opts.Done {
				_, _ = fmt.Fprintln(w)
			}
			if !opts.Pending {
				printSection(w, completedHeading, completedEmpty, out.Completed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Pending, "pending", false, "Show only pending tasks")
	cmd.Flags().BoolVar(&opts.Done, "done", false, "Show only completed tasks")
	cmd.Flags().StringVar(&opts.Assignee, "assignee", "", "Show only tasks assigned to this person")

	return cmd
}

// printSection prints a heading with its count followed by the tasks.
func printSection(w io.Writer, heading, empty string, tasks []domain.Task) {
	_, _ = fmt.Fprintf(w, "%s (%d)\n", heading, len(tasks))
	if len(tasks) == 0 {
		_, _ = fmt.Fprintf(w, "  %s\n", empty)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer func() { _ = tw.Flush() }()
	for _, t := range tasks {
		_, _ = fmt.Fprintf(tw, "  #%d\t%s\t%s\n", t.ID, t.Text, t.AssignedTo)
	}
}

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the whole list as JSON or YAML",
		Long: `Print every task in storage order.

The JSON output has the same shape as the stored slot, so it can be
fed back into any backend.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ExportTasksUseCase().Execute(cmd.Context(), usecase.ExportTasksInput{Format: format})
			if err != nil {
				return err
			}
			_, _ = io.WriteString(cmd.OutOrStdout(), out.Data)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", usecase.FormatJSON, "Output format: json or yaml")

	return cmd
}

// parseTaskID parses a task ID, accepting an optional leading '#'.
func parseTaskID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(s, "#"))
	if err != nil {
		return 0, err
	}
	if id < 0 {
		return 0, fmt.Errorf("task ID must not be negative")
	}
	return id, nil
}
