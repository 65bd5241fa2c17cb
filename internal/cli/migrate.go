package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// newMigrateCommand creates the migrate command.
func newMigrateCommand(c *app.Container) *cobra.Command {
	var opts struct {
		To    string
		Force bool
	}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Copy the task list to another storage backend",
		Long: `Copy the current task list into another storage backend.

The destination uses the settings from the [storage] section. A
destination that already holds the same list is left alone; one that
holds a different list is only overwritten with --force.

After migrating, set [storage] backend (or TODO_STORE) to switch.

Examples:
  # Move from the local file to redis
  todo migrate --to redis

  # Snapshot the list into the current git repository
  todo migrate --to git`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			to := strings.ToLower(strings.TrimSpace(opts.To))
			if to == "" {
				return errors.New("required flag(s) \"to\" not set")
			}
			if !domain.ValidBackend(to) {
				return fmt.Errorf("%w: %q", domain.ErrUnknownBackend, to)
			}
			if to == c.AppConfig.Storage.Backend {
				return fmt.Errorf("already using the %s backend", to)
			}

			dest, closer, err := c.OpenBackend(to)
			if err != nil {
				return err
			}
			if closer != nil {
				defer func() { _ = closer.Close() }()
			}

			out, err := c.MigrateStoreUseCase(dest).Execute(cmd.Context(), usecase.MigrateStoreInput{Force: opts.Force})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Skipped {
				_, _ = fmt.Fprintf(w, "%s already holds these %d tasks\n", to, out.Total)
				return nil
			}
			_, _ = fmt.Fprintf(w, "Migrated %d tasks to %s\n", out.Total, to)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.To, "to", "", "Destination backend: file, git, redis or memory")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite a destination holding a different list")

	return cmd
}
