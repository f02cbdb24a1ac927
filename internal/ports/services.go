package ports

import (
	"context"

	"github.com/jsamuelsen11/go-task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain/taskstatus"
)

// TaskService defines the service port for task queries and mutations.
// Implemented by the application layer; called by inbound adapters (handlers).
type TaskService interface {
	// List returns tasks matching the filter, most recently updated first,
	// with their status relation loaded.
	List(ctx context.Context, filter task.Filter) ([]*task.Task, error)

	// Get returns a single task by ID.
	// Returns a *domain.ModelNotFoundError if the task does not exist.
	Get(ctx context.Context, id uint64) (*task.Task, error)

	// GetDetailed is Get with the status relation resolved.
	GetDetailed(ctx context.Context, id uint64) (*task.Task, error)

	// Count returns the number of tasks.
	Count(ctx context.Context) (int64, error)

	// ActiveCount returns the number of tasks that are not completed.
	ActiveCount(ctx context.Context) (int64, error)

	// Statistics returns both counts.
	Statistics(ctx context.Context) (task.Statistics, error)

	// Create persists a new task built from caller data.
	// Returns domain.ErrValidation if the task fails validation.
	Create(ctx context.Context, data task.Data) (*task.Task, error)

	// Update replaces the fillable attributes of an existing task.
	// Returns a *domain.ModelNotFoundError if the task does not exist.
	Update(ctx context.Context, id uint64, data task.Data) (*task.Task, error)

	// SetCompletion sets the completion flag of an existing task.
	// Returns a *domain.ModelNotFoundError if the task does not exist.
	SetCompletion(ctx context.Context, id uint64, completed bool) (*task.Task, error)

	// Delete removes a task and reports whether it was deleted.
	// Returns a *domain.ModelNotFoundError if the task does not exist.
	Delete(ctx context.Context, id uint64) (bool, error)
}

// TaskStatusService defines the service port for task status reference data.
type TaskStatusService interface {
	// List returns all statuses ordered by ID.
	List(ctx context.Context) ([]*taskstatus.Status, error)
}
