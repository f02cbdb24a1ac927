package ports

import (
	"context"

	"github.com/jsamuelsen11/go-task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain/taskstatus"
)

// TaskRepository is the backing store port for tasks. Implementations run the
// entity lifecycle before every write and keep the entity's change-set in
// sync with what was committed.
type TaskRepository interface {
	// List returns tasks matching the filter ordered by updated_at, then id,
	// descending, with their status relation loaded.
	List(ctx context.Context, filter task.Filter) ([]*task.Task, error)

	// Find returns a task by ID. withStatus also loads the status relation.
	// Returns domain.ErrNotFound if the task does not exist.
	Find(ctx context.Context, id uint64, withStatus bool) (*task.Task, error)

	// Count returns the number of tasks matching the filter.
	Count(ctx context.Context, filter task.Filter) (int64, error)

	// Create inserts the task and assigns its ID.
	Create(ctx context.Context, t *task.Task) error

	// Update writes the changed attributes of the task. A task without
	// changes is left untouched.
	Update(ctx context.Context, t *task.Task) error

	// Delete removes the task.
	Delete(ctx context.Context, t *task.Task) error
}

// TaskStatusRepository is the backing store port for task statuses.
type TaskStatusRepository interface {
	// List returns all statuses ordered by ID ascending.
	List(ctx context.Context) ([]*taskstatus.Status, error)

	// FindStatus returns a status by ID.
	// Returns domain.ErrNotFound if the status does not exist.
	FindStatus(ctx context.Context, id uint8) (*taskstatus.Status, error)

	// Create inserts the status.
	Create(ctx context.Context, s *taskstatus.Status) error
}

// StatisticsCache stores task statistics between requests. A miss is
// reported with ok=false and a nil error.
type StatisticsCache interface {
	Get(ctx context.Context) (stats task.Statistics, ok bool, err error)
	Set(ctx context.Context, stats task.Statistics) error
	Invalidate(ctx context.Context) error
}
