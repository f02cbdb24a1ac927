package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen11/go-task-tracker/internal/domain"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain/model"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/go-task-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-task-tracker/internal/ports"
)

// Compile-time interface check.
var _ ports.TaskRepository = (*TaskStore)(nil)

// TaskStore implements ports.TaskRepository with GORM.
type TaskStore struct {
	db        *Database
	lifecycle *model.Lifecycle
	instr     instrumentation
}

// NewTaskStore creates a TaskStore. metrics may be nil.
func NewTaskStore(db *Database, lifecycle *model.Lifecycle, metrics *telemetry.Metrics) *TaskStore {
	return &TaskStore{
		db:        db,
		lifecycle: lifecycle,
		instr:     newInstrumentation(task.Table, metrics),
	}
}

// List returns tasks matching the filter, most recently updated first, with
// their status loaded.
func (s *TaskStore) List(ctx context.Context, filter task.Filter) ([]*task.Task, error) {
	var rows []taskRow
	err := s.instr.observe(ctx, "list", func(ctx context.Context) error {
		return s.filtered(ctx, filter).
			Preload("Status").
			Order(clause.OrderBy{Columns: []clause.OrderByColumn{
				{Column: clause.Column{Name: task.AttrUpdatedAt}, Desc: true},
				{Column: clause.Column{Name: task.AttrID}, Desc: true},
			}}).
			Find(&rows).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*task.Task, 0, len(rows))
	for i := range rows {
		tasks = append(tasks, rows[i].restore())
	}
	return tasks, nil
}

// Find returns a task by ID.
func (s *TaskStore) Find(ctx context.Context, id uint64, withStatus bool) (*task.Task, error) {
	var row taskRow
	err := s.instr.observe(ctx, "find", func(ctx context.Context) error {
		q := s.db.conn(ctx)
		if withStatus {
			q = q.Preload("Status")
		}
		return q.Where(clause.Eq{Column: clause.Column{Name: task.AttrID}, Value: id}).Take(&row).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("task %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find task %d: %w", id, err)
	}
	return row.restore(), nil
}

// Count returns the number of tasks matching the filter.
func (s *TaskStore) Count(ctx context.Context, filter task.Filter) (int64, error) {
	var n int64
	err := s.instr.observe(ctx, "count", func(ctx context.Context) error {
		return s.filtered(ctx, filter).Count(&n).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return n, nil
}

// Create runs the create lifecycle and inserts the task. On success the task
// carries its new ID and has no pending changes.
// A failed create leaves the task's timestamps as they were.
func (s *TaskStore) Create(ctx context.Context, t *task.Task) error {
	sp := model.NewSavepoint(t)
	var id uint64
	err := s.instr.observe(ctx, "create", func(ctx context.Context) error {
		return s.db.transaction(ctx, func(ctx context.Context, tx *gorm.DB) error {
			if err := s.lifecycle.BeforeCreate(ctx, t); err != nil {
				return err
			}
			row := taskRowFrom(t)
			if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
				return fmt.Errorf("failed to create task: %w", translate(err))
			}
			id = row.ID
			return nil
		})
	})
	if err != nil {
		return sp.Rollback(err)
	}

	if err := t.Assign(task.AttrID, id); err != nil {
		return err
	}
	t.State().Sync(t.Attributes())
	return nil
}

// Update runs the update lifecycle and writes the changed columns. A task
// without changes is not written and keeps its modification time, as does
// a task whose update failed.
func (s *TaskStore) Update(ctx context.Context, t *task.Task) error {
	if !t.State().IsDirty() {
		return nil
	}
	sp := model.NewSavepoint(t)

	err := s.instr.observe(ctx, "update", func(ctx context.Context) error {
		return s.db.transaction(ctx, func(ctx context.Context, tx *gorm.DB) error {
			if err := s.lifecycle.BeforeUpdate(ctx, t); err != nil {
				return err
			}
			attrs := t.Attributes()
			changes := make(map[string]any)
			for _, name := range t.State().Dirty() {
				changes[name] = attrs[name]
			}
			res := tx.Model(&taskRow{}).
				Where(clause.Eq{Column: clause.Column{Name: task.AttrID}, Value: t.ID()}).
				Updates(changes)
			if res.Error != nil {
				return fmt.Errorf("failed to update task %d: %w", t.ID(), translate(res.Error))
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("task %d: %w", t.ID(), domain.ErrNotFound)
			}
			return nil
		})
	})
	if err != nil {
		return sp.Rollback(err)
	}

	t.State().Sync(t.Attributes())
	return nil
}

// Delete runs the delete lifecycle and removes the task.
func (s *TaskStore) Delete(ctx context.Context, t *task.Task) error {
	err := s.instr.observe(ctx, "delete", func(ctx context.Context) error {
		return s.db.transaction(ctx, func(ctx context.Context, tx *gorm.DB) error {
			if err := s.lifecycle.BeforeDelete(ctx, t); err != nil {
				return err
			}
			res := tx.Where(clause.Eq{Column: clause.Column{Name: task.AttrID}, Value: t.ID()}).Delete(&taskRow{})
			if res.Error != nil {
				return fmt.Errorf("failed to delete task %d: %w", t.ID(), translate(res.Error))
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("task %d: %w", t.ID(), domain.ErrNotFound)
			}
			return nil
		})
	})
	if err != nil {
		return err
	}

	t.State().Detach()
	return nil
}

// filtered applies the list filters. A zero status ID and a nil completion
// flag match every task.
func (s *TaskStore) filtered(ctx context.Context, filter task.Filter) *gorm.DB {
	q := s.db.conn(ctx).Model(&taskRow{})
	if filter.StatusID > 0 {
		q = q.Where(clause.Eq{Column: clause.Column{Name: task.AttrStatusID}, Value: filter.StatusID})
	}
	if filter.IsCompleted != nil {
		q = q.Where(clause.Eq{Column: clause.Column{Name: task.AttrIsCompleted}, Value: *filter.IsCompleted})
	}
	return q
}
