package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/infra/config"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Display effective configuration",
		Long: `Display the configuration after merging defaults, the global file
($XDG_CONFIG_HOME/todo/config.toml) and the local file (./.todo/config.toml).
TODO_STORE overrides [storage] backend.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := config.Render(c.AppConfig)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, "[Paths]")
			_, _ = fmt.Fprintf(w, "- data: %s\n", c.Config.DataDir)
			_, _ = fmt.Fprintf(w, "- log:  %s\n", c.Config.LogPath)
			_, _ = fmt.Fprintln(w)
			_, _ = fmt.Fprint(w, out)
			return nil
		},
	}
	return cmd
}

// newAssigneesCommand creates the assignees command.
func newAssigneesCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assignees",
		Short: "List the people tasks can be assigned to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListAssigneesUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range out.Assignees {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	return cmd
}
