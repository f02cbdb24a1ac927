// Package storage is the backing store adapter. It persists tasks and task
// statuses with GORM over SQLite or PostgreSQL and runs the entity lifecycle
// inside the transaction of every write.
//
// Opening a database:
//
//	db, err := storage.Open(ctx, cfg.Database, logger)
//	defer db.Close()
//
// Wiring the stores:
//
//	refs := storage.NewReferences(db)
//	lc := model.NewLifecycle(model.NewValidator(refs))
//	tasks := storage.NewTaskStore(db, lc, metrics)
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jsamuelsen11/go-task-tracker/internal/domain"
	"github.com/jsamuelsen11/go-task-tracker/internal/platform/config"
	"github.com/jsamuelsen11/go-task-tracker/internal/platform/retry"
	"github.com/jsamuelsen11/go-task-tracker/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthChecker = (*Database)(nil)

// Database is an open connection to the backing store.
type Database struct {
	gorm   *gorm.DB
	driver string
	pool   *pgxpool.Pool // nil unless driver is postgres
}

// Open connects to the configured database. Connecting is retried with
// backoff according to cfg.ConnectRetry; configuration errors fail at once.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Database, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	gormCfg := &gorm.Config{
		Logger:         NewGormLogger(logger, cfg.SlowThreshold),
		TranslateError: true,
	}

	var (
		db  *Database
		err error
	)
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err = openSQLite(ctx, cfg, gormCfg)
	case config.DriverPostgres:
		db, err = openPostgres(ctx, cfg, gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "database connected", slog.String("driver", cfg.Driver))
	return db, nil
}

func openSQLite(ctx context.Context, cfg config.DatabaseConfig, gormCfg *gorm.Config) (*Database, error) {
	gdb, err := gorm.Open(sqlite.Open(sqliteDSN(cfg.DSN)), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	// SQLite allows one writer; a single long-lived connection also keeps
	// in-memory databases alive.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	err = retry.Do(ctx, cfg.ConnectRetry, "storage.Open", func(ctx context.Context) error {
		return sqlDB.PingContext(ctx)
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}

	return &Database{gorm: gdb, driver: config.DriverSQLite}, nil
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig, gormCfg *gorm.Config) (*Database, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		poolCfg.MaxConns = int32(min(cfg.MaxOpenConns, 1<<15)) //nolint:gosec // bounded above
	}
	if cfg.MaxIdleConns > 0 {
		poolCfg.MinConns = int32(min(cfg.MaxIdleConns, cfg.MaxOpenConns, 1<<15)) //nolint:gosec // bounded above
	}
	if cfg.ConnMaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	}

	var pool *pgxpool.Pool
	err = retry.Do(ctx, cfg.ConnectRetry, "storage.Open", func(ctx context.Context) error {
		p, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			return retry.Permanent(fmt.Errorf("failed to create connection pool: %w", err))
		}
		if err := p.Ping(ctx); err != nil {
			p.Close()
			return fmt.Errorf("failed to ping database: %w", err)
		}
		pool = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: stdlib.OpenDBFromPool(pool)}), gormCfg)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to open postgres database: %w", err)
	}

	return &Database{gorm: gdb, driver: config.DriverPostgres, pool: pool}, nil
}

// Gorm returns the underlying GORM handle.
func (d *Database) Gorm() *gorm.DB {
	return d.gorm
}

// Driver returns the configured driver name.
func (d *Database) Driver() string {
	return d.driver
}

// Close releases the connections.
func (d *Database) Close() error {
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	err = sqlDB.Close()
	if d.pool != nil {
		d.pool.Close()
	}
	if err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (d *Database) Name() string {
	return "database"
}

// HealthCheck pings the database.
func (d *Database) HealthCheck(ctx context.Context) error {
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// sqliteDSN turns on foreign key enforcement for every connection the driver
// opens unless the DSN already sets it.
func sqliteDSN(dsn string) string {
	query := ""
	if i := strings.IndexByte(dsn, '?'); i >= 0 {
		query = dsn[i+1:]
	}
	for param := range strings.SplitSeq(query, "&") {
		key, _, _ := strings.Cut(param, "=")
		if key == "_foreign_keys" || key == "_fk" {
			return dsn
		}
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

// txKey carries the active transaction so reference lookups made by the
// lifecycle run on the same connection as the write.
type txKey struct{}

func withTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// conn returns the transaction carried by ctx, or a new session on db.
func (d *Database) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return d.gorm.WithContext(ctx)
}

// transaction runs fn in a transaction, joining one already carried by ctx.
func (d *Database) transaction(ctx context.Context, fn func(ctx context.Context, tx *gorm.DB) error) error {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx, tx.WithContext(ctx))
	}
	return d.gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx), tx)
	})
}

// translate marks constraint violations reported by the driver as conflicts.
// The driver error stays in the chain.
func translate(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", domain.ErrConflict, err)
	}
	return err
}
