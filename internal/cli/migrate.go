package cli

import (
	"context"
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-task-tracker/internal/adapters/storage"
	"github.com/jsamuelsen11/go-task-tracker/internal/platform/telemetry"
)

// newMigrateCommand creates the migrate command.
func newMigrateCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Long: `Create or update the task_statuses and tasks tables, the foreign key
between them and the list indexes. Running it again is harmless.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabase(cmd.Context(), opts, func(ctx context.Context, injector do.Injector) error {
				db := do.MustInvoke[*storage.Database](injector)
				if err := storage.Migrate(ctx, db); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
				return nil
			})
		},
	}
}

// withDatabase opens the configured database, runs fn and closes it again.
func withDatabase(ctx context.Context, opts *globalOptions, fn func(context.Context, do.Injector) error) error {
	injector := newInjector(ctx, opts.cfg, opts.logger, telemetry.NoopMetrics())

	db, err := do.Invoke[*storage.Database](injector)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	return fn(ctx, injector)
}
