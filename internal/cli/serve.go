package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-task-tracker/internal/adapters/cache"
	adapthttp "github.com/jsamuelsen11/go-task-tracker/internal/adapters/http"
	"github.com/jsamuelsen11/go-task-tracker/internal/adapters/storage"
)

func newServeCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API and the task page",
		Long: `Serve the JSON API under /api, the task page at / and the health
endpoints under /health.

The schema is migrated and default statuses seeded first when the profile
sets database.auto_migrate or database.seed. SIGINT or SIGTERM drains
in-flight requests within server.shutdown_timeout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func runServe(ctx context.Context, opts *globalOptions) error {
	cfg, logger := opts.cfg, opts.logger

	otel, err := initTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := newInjector(ctx, cfg, logger, otel.metrics())

	db, err := do.Invoke[*storage.Database](injector)
	if err != nil {
		_ = otel.Shutdown(ctx)
		return fmt.Errorf("opening database: %w", err)
	}

	var stats *cache.StatisticsCache
	if cfg.Cache.Enabled {
		stats = do.MustInvoke[*cache.StatisticsCache](injector)
	}

	abort := func(err error) error {
		return errors.Join(err, closeStores(db, stats), otel.Shutdown(ctx))
	}

	if err := prepareDatabase(ctx, injector, cfg.Database, logger); err != nil {
		return abort(fmt.Errorf("preparing database: %w", err))
	}

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return abort(fmt.Errorf("resolving server: %w", err))
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	wait := gfshutdown.GracefulShutdown(context.Background(), cfg.Server.ShutdownTimeout,
		shutdownOperations(server, db, stats, otel, logger))

	select {
	case err := <-serverErr:
		if err != nil {
			logger.ErrorContext(ctx, "server failed", slog.Any("error", err))
			return abort(err)
		}
		// Start returns nil only once a shutdown operation stopped it.
		return exitError(<-wait)
	case code := <-wait:
		return exitError(code)
	}
}

// shutdownOperations drains the HTTP server and closes the stores behind it,
// then flushes telemetry once the drain has finished or ctx expires.
func shutdownOperations(
	server *adapthttp.Server,
	db *storage.Database,
	stats *cache.StatisticsCache,
	otel *otelProviders,
	logger *slog.Logger,
) map[string]gfshutdown.Operation {
	drained := make(chan struct{})

	return map[string]gfshutdown.Operation{
		"http-server": func(ctx context.Context) error {
			defer close(drained)
			logger.InfoContext(ctx, "draining HTTP server")
			return errors.Join(server.Shutdown(ctx), closeStores(db, stats))
		},
		"telemetry": func(ctx context.Context) error {
			select {
			case <-drained:
			case <-ctx.Done():
			}
			return otel.Shutdown(ctx)
		},
	}
}

func exitError(code int) error {
	if code == 0 {
		return nil
	}
	return fmt.Errorf("graceful shutdown finished with exit code %d", code)
}
