package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/go-task-tracker/internal/adapters/cache"
	adapthttp "github.com/jsamuelsen11/go-task-tracker/internal/adapters/http"
	"github.com/jsamuelsen11/go-task-tracker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-task-tracker/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-task-tracker/internal/adapters/storage"
	"github.com/jsamuelsen11/go-task-tracker/internal/app"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain/model"
	"github.com/jsamuelsen11/go-task-tracker/internal/platform/config"
	"github.com/jsamuelsen11/go-task-tracker/internal/platform/health"
	"github.com/jsamuelsen11/go-task-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-task-tracker/internal/ports"
)

// newInjector registers the service graph. Providers run lazily on first
// invocation, so a command only opens the resources it resolves.
func newInjector(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)

	registerStorage(ctx, injector, cfg, logger, metrics)
	registerServices(injector, cfg, logger)
	registerHTTP(injector, cfg, logger, metrics)

	return injector
}

func registerStorage(ctx context.Context, injector do.Injector, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) {
	do.Provide(injector, func(_ do.Injector) (*storage.Database, error) {
		return storage.Open(ctx, cfg.Database, logger)
	})

	do.Provide(injector, func(i do.Injector) (*model.Lifecycle, error) {
		db, err := do.Invoke[*storage.Database](i)
		if err != nil {
			return nil, err
		}
		return model.NewLifecycle(model.NewValidator(storage.NewReferences(db))), nil
	})

	do.Provide(injector, func(i do.Injector) (*storage.TaskStore, error) {
		db, err := do.Invoke[*storage.Database](i)
		if err != nil {
			return nil, err
		}
		return storage.NewTaskStore(db, do.MustInvoke[*model.Lifecycle](i), metrics), nil
	})

	do.Provide(injector, func(i do.Injector) (*storage.StatusStore, error) {
		db, err := do.Invoke[*storage.Database](i)
		if err != nil {
			return nil, err
		}
		return storage.NewStatusStore(db, do.MustInvoke[*model.Lifecycle](i), metrics), nil
	})

	if cfg.Cache.Enabled {
		do.Provide(injector, func(_ do.Injector) (*cache.StatisticsCache, error) {
			return cache.New(cache.NewClient(cfg.Cache), cfg.Cache, metrics, logger), nil
		})
	}
}

func registerServices(injector do.Injector, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		tasks, err := do.Invoke[*storage.TaskStore](i)
		if err != nil {
			return nil, err
		}
		statuses := do.MustInvoke[*storage.StatusStore](i)

		var stats ports.StatisticsCache
		if cfg.Cache.Enabled {
			stats = do.MustInvoke[*cache.StatisticsCache](i)
		}
		return app.NewTaskService(tasks, statuses, stats, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskStatusService, error) {
		statuses, err := do.Invoke[*storage.StatusStore](i)
		if err != nil {
			return nil, err
		}
		return app.NewTaskStatusService(statuses, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		db, err := do.Invoke[*storage.Database](i)
		if err != nil {
			return nil, err
		}
		registry := health.New()
		registry.Register(db)
		if cfg.Cache.Enabled {
			registry.Register(do.MustInvoke[*cache.StatisticsCache](i))
		}
		return registry, nil
	})
}

func registerHTTP(injector do.Injector, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) {
	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		tasks, err := do.Invoke[ports.TaskService](i)
		if err != nil {
			return nil, err
		}
		statuses := do.MustInvoke[ports.TaskStatusService](i)
		registry := do.MustInvoke[ports.HealthRegistry](i)

		h := adapthttp.Handlers{
			Tasks:    handlers.NewTaskHandler(tasks),
			Statuses: handlers.NewTaskStatusHandler(statuses),
			Page:     handlers.NewPageHandler(tasks, statuses),
			Health:   handlers.NewHealthHandler(registry),
		}

		return adapthttp.NewRouter(h,
			adapthttp.WithMiddleware(middleware.Chain(
				middleware.Recovery(logger),
				middleware.RequestID(),
				middleware.CorrelationID(),
				middleware.AppContext(),
				middleware.OpenTelemetry(metrics),
				middleware.Logging(logger),
				middleware.Timeout(cfg.Server.RequestTimeout),
			)),
			adapthttp.WithAPIMiddleware(
				middleware.RateLimit(cfg.Server.RateLimit),
			),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler, err := do.Invoke[nethttp.Handler](i)
		if err != nil {
			return nil, err
		}
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// prepareDatabase applies the auto_migrate and seed settings.
func prepareDatabase(ctx context.Context, injector do.Injector, cfg config.DatabaseConfig, logger *slog.Logger) error {
	if cfg.AutoMigrate {
		db, err := do.Invoke[*storage.Database](injector)
		if err != nil {
			return err
		}
		if err := storage.Migrate(ctx, db); err != nil {
			return err
		}
		logger.InfoContext(ctx, "schema migrated")
	}

	if cfg.Seed {
		statuses, err := do.Invoke[*storage.StatusStore](injector)
		if err != nil {
			return err
		}
		n, err := storage.Seed(ctx, statuses, logger)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "task statuses seeded", slog.Int("inserted", n))
	}
	return nil
}

// closeStores releases the statistics cache and then the database. stats may
// be nil.
func closeStores(db *storage.Database, stats *cache.StatisticsCache) error {
	var errs []error
	if stats != nil {
		if err := stats.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing statistics cache: %w", err))
		}
	}
	if err := db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing database: %w", err))
	}
	return errors.Join(errs...)
}
