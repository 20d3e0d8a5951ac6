package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/ariane-backend/internal/adapter/postgres"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate [up|down|status]",
		Short: "Apply, revert or list database migrations",
		Long: `Run the embedded goose migrations against the configured database.

up applies every pending migration (default), down reverts the most recent
one and status lists applied and pending versions.`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(postgres.MigrateUp), string(postgres.MigrateDown), string(postgres.MigrateStatus)},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := postgres.MigrateUp
			if len(args) == 1 {
				dir = postgres.MigrateDirection(args[0])
			}

			_, logger, pool, err := connect(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := postgres.Migrate(cmd.Context(), pool, dir, logger); err != nil {
				return fmt.Errorf("migrate %s: %w", dir, err)
			}
			return nil
		},
	}
}
