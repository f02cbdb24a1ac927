package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-task-tracker/internal/domain"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain/taskstatus"
)

// Migrate creates or updates the schema: both tables, the restricting
// foreign key from tasks to task_statuses and the list indexes.
func Migrate(ctx context.Context, db *Database) error {
	if err := db.gorm.WithContext(ctx).AutoMigrate(&taskStatusRow{}, &taskRow{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Seed inserts the default statuses that are missing. Existing statuses are
// left untouched, so seeding twice is harmless. It returns the number of
// statuses inserted.
func Seed(ctx context.Context, statuses *StatusStore, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	inserted := 0
	for _, snap := range taskstatus.Defaults() {
		_, err := statuses.FindStatus(ctx, snap.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return inserted, err
		}

		if err := statuses.Create(ctx, taskstatus.New(snap.ID, snap.Name, snap.Color)); err != nil {
			return inserted, fmt.Errorf("failed to seed task status %d: %w", snap.ID, err)
		}
		inserted++
		logger.InfoContext(ctx, "seeded task status",
			slog.Int("id", int(snap.ID)),
			slog.String("name", snap.Name),
		)
	}
	return inserted, nil
}
