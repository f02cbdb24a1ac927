package cli

import (
	"context"
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-task-tracker/internal/adapters/storage"
)

// newSeedCommand creates the seed command.
func newSeedCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default task statuses",
		Long: `Insert the default task statuses that are missing. Existing statuses
are left untouched. The schema is migrated first when the profile sets
database.auto_migrate.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabase(cmd.Context(), opts, func(ctx context.Context, injector do.Injector) error {
				if opts.cfg.Database.AutoMigrate {
					if err := storage.Migrate(ctx, do.MustInvoke[*storage.Database](injector)); err != nil {
						return err
					}
				}

				n, err := storage.Seed(ctx, do.MustInvoke[*storage.StatusStore](injector), opts.logger)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "seeded %d task statuses\n", n)
				return nil
			})
		},
	}
}
