package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen11/go-task-tracker/internal/domain"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain/model"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain/taskstatus"
	"github.com/jsamuelsen11/go-task-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-task-tracker/internal/ports"
)

// Compile-time interface check.
var _ ports.TaskStatusRepository = (*StatusStore)(nil)

// StatusStore implements ports.TaskStatusRepository with GORM.
type StatusStore struct {
	db        *Database
	lifecycle *model.Lifecycle
	instr     instrumentation
}

// NewStatusStore creates a StatusStore. metrics may be nil.
func NewStatusStore(db *Database, lifecycle *model.Lifecycle, metrics *telemetry.Metrics) *StatusStore {
	return &StatusStore{
		db:        db,
		lifecycle: lifecycle,
		instr:     newInstrumentation(taskstatus.Table, metrics),
	}
}

// List returns every status ordered by ID.
func (s *StatusStore) List(ctx context.Context) ([]*taskstatus.Status, error) {
	var rows []taskStatusRow
	err := s.instr.observe(ctx, "list", func(ctx context.Context) error {
		return s.db.conn(ctx).Order(clause.OrderByColumn{Column: clause.Column{Name: taskstatus.AttrID}}).Find(&rows).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list task statuses: %w", err)
	}

	statuses := make([]*taskstatus.Status, 0, len(rows))
	for i := range rows {
		statuses = append(statuses, rows[i].restore())
	}
	return statuses, nil
}

// FindStatus returns a status by ID.
func (s *StatusStore) FindStatus(ctx context.Context, id uint8) (*taskstatus.Status, error) {
	var row taskStatusRow
	err := s.instr.observe(ctx, "find", func(ctx context.Context) error {
		return s.db.conn(ctx).Where(clause.Eq{Column: clause.Column{Name: taskstatus.AttrID}, Value: id}).Take(&row).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("task status %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find task status %d: %w", id, err)
	}
	return row.restore(), nil
}

// Create runs the create lifecycle and inserts the status.
func (s *StatusStore) Create(ctx context.Context, st *taskstatus.Status) error {
	err := s.instr.observe(ctx, "create", func(ctx context.Context) error {
		return s.db.transaction(ctx, func(ctx context.Context, tx *gorm.DB) error {
			if err := s.lifecycle.BeforeCreate(ctx, st); err != nil {
				return err
			}
			row := statusRowFrom(st)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to create task status: %w", translate(err))
			}
			return nil
		})
	})
	if err != nil {
		return err
	}

	st.State().Sync(st.Attributes())
	return nil
}
