// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	appctx "github.com/jsamuelsen11/go-task-tracker/internal/app/context"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain/taskstatus"
	"github.com/jsamuelsen11/go-task-tracker/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

const msgTaskNotFound = "Task model not found"

// TaskService implements ports.TaskService on top of the task repository.
// Entity rules run inside the repository; the service resolves identifiers,
// applies caller data and keeps the statistics cache honest.
type TaskService struct {
	tasks    ports.TaskRepository
	statuses *statusLoader
	cache    ports.StatisticsCache
	flight   singleflight.Group
	logger   *slog.Logger

	// generation advances on every write that invalidates statistics. A
	// computation only caches its result if no write happened meanwhile.
	generation atomic.Uint64
}

// NewTaskService creates a TaskService. cache may be nil to always compute
// statistics from the repository.
func NewTaskService(
	tasks ports.TaskRepository,
	statuses ports.TaskStatusRepository,
	cache ports.StatisticsCache,
	logger *slog.Logger,
) *TaskService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskService{
		tasks:    tasks,
		statuses: &statusLoader{repo: statuses},
		cache:    cache,
		logger:   logger,
	}
}

// List returns tasks matching the filter, most recently updated first.
func (s *TaskService) List(ctx context.Context, filter task.Filter) ([]*task.Task, error) {
	s.logger.InfoContext(ctx, "listing tasks", filterAttrs(filter)...)

	tasks, err := s.tasks.List(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks",
			slog.String("operation", "List"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return tasks, nil
}

// Get returns a task by ID.
func (s *TaskService) Get(ctx context.Context, id uint64) (*task.Task, error) {
	return s.find(ctx, "Get", id, false)
}

// GetDetailed returns a task by ID with its status resolved.
func (s *TaskService) GetDetailed(ctx context.Context, id uint64) (*task.Task, error) {
	t, err := s.find(ctx, "GetDetailed", id, true)
	if err != nil {
		return nil, err
	}
	if err := s.resolveStatus(ctx, "GetDetailed", t); err != nil {
		return nil, err
	}
	return t, nil
}

// Count returns the number of tasks.
func (s *TaskService) Count(ctx context.Context) (int64, error) {
	return s.count(ctx, "Count", task.Filter{})
}

// ActiveCount returns the number of tasks that are not completed.
func (s *TaskService) ActiveCount(ctx context.Context) (int64, error) {
	return s.count(ctx, "ActiveCount", activeFilter())
}

// Statistics returns the total and active counts. Cached values are served
// when a cache is configured. On a miss both counts are computed concurrently,
// and concurrent misses share one computation. The shared computation is
// detached from the caller that started it, so a cancelled caller only stops
// its own wait.
func (s *TaskService) Statistics(ctx context.Context) (task.Statistics, error) {
	if stats, ok := s.cachedStatistics(ctx); ok {
		return stats, nil
	}

	gen := s.generation.Load()
	shared := context.WithoutCancel(ctx)
	ch := s.flight.DoChan("statistics/"+strconv.FormatUint(gen, 10), func() (any, error) {
		return s.computeStatistics(shared, gen)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return task.Statistics{}, res.Err
		}
		return res.Val.(task.Statistics), nil
	case <-ctx.Done():
		return task.Statistics{}, ctx.Err()
	}
}

func (s *TaskService) computeStatistics(ctx context.Context, gen uint64) (task.Statistics, error) {
	var stats task.Statistics

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.Count, err = s.tasks.Count(gctx, task.Filter{})
		return err
	})
	g.Go(func() (err error) {
		stats.ActiveCount, err = s.tasks.Count(gctx, activeFilter())
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "failed to compute task statistics",
			slog.String("operation", "Statistics"),
			slog.Any("error", err),
		)
		return task.Statistics{}, err
	}

	s.storeStatistics(ctx, gen, stats)
	return stats, nil
}

// storeStatistics caches stats computed at generation gen. Counts computed
// before a write are never cached once the write has invalidated; a write
// that lands while Set is in flight is caught by the second check.
func (s *TaskService) storeStatistics(ctx context.Context, gen uint64, stats task.Statistics) {
	if s.cache == nil || s.generation.Load() != gen {
		return
	}
	if err := s.cache.Set(ctx, stats); err != nil {
		s.logger.WarnContext(ctx, "failed to cache task statistics",
			slog.String("operation", "Statistics"),
			slog.Any("error", err),
		)
		return
	}
	if s.generation.Load() != gen {
		s.dropCachedStatistics(ctx)
	}
}

// Create builds a task from caller data and persists it.
func (s *TaskService) Create(ctx context.Context, data task.Data) (*task.Task, error) {
	s.logger.InfoContext(ctx, "creating task", slog.Int("status_id", int(data.StatusID)))

	t := task.New(data)
	if err := s.tasks.Create(ctx, t); err != nil {
		s.logger.ErrorContext(ctx, "failed to create task",
			slog.String("operation", "Create"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.invalidateStatistics(ctx)
	return t, nil
}

// Update replaces the fillable attributes of an existing task.
func (s *TaskService) Update(ctx context.Context, id uint64, data task.Data) (*task.Task, error) {
	s.logger.InfoContext(ctx, "updating task", slog.Uint64("id", id))

	t, err := s.find(ctx, "Update", id, false)
	if err != nil {
		return nil, err
	}

	t.Fill(data)
	if err := s.tasks.Update(ctx, t); err != nil {
		s.logger.ErrorContext(ctx, "failed to update task",
			slog.String("operation", "Update"),
			slog.Uint64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return t, nil
}

// SetCompletion sets the completion flag of an existing task.
func (s *TaskService) SetCompletion(ctx context.Context, id uint64, completed bool) (*task.Task, error) {
	s.logger.InfoContext(ctx, "setting task completion",
		slog.Uint64("id", id),
		slog.Bool("completed", completed),
	)

	t, err := s.find(ctx, "SetCompletion", id, false)
	if err != nil {
		return nil, err
	}

	t.SetCompleted(completed)
	if err := s.tasks.Update(ctx, t); err != nil {
		s.logger.ErrorContext(ctx, "failed to set task completion",
			slog.String("operation", "SetCompletion"),
			slog.Uint64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.invalidateStatistics(ctx)
	return t, nil
}

// Delete removes an existing task.
func (s *TaskService) Delete(ctx context.Context, id uint64) (bool, error) {
	s.logger.InfoContext(ctx, "deleting task", slog.Uint64("id", id))

	t, err := s.find(ctx, "Delete", id, false)
	if err != nil {
		return false, err
	}

	if err := s.tasks.Delete(ctx, t); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task",
			slog.String("operation", "Delete"),
			slog.Uint64("id", id),
			slog.Any("error", err),
		)
		return false, err
	}

	s.invalidateStatistics(ctx)
	return true, nil
}

// find loads a task, turning a repository miss into a ModelNotFoundError
// carrying the requested ID.
func (s *TaskService) find(ctx context.Context, operation string, id uint64, withStatus bool) (*task.Task, error) {
	t, err := s.tasks.Find(ctx, id, withStatus)
	if err == nil {
		return t, nil
	}

	if errors.Is(err, domain.ErrNotFound) {
		s.logger.InfoContext(ctx, "task not found",
			slog.String("operation", operation),
			slog.Uint64("id", id),
		)
		return nil, domain.NewModelNotFoundError(msgTaskNotFound, id, "Task", domain.WithCause(err))
	}

	s.logger.ErrorContext(ctx, "failed to fetch task",
		slog.String("operation", operation),
		slog.Uint64("id", id),
		slog.Any("error", err),
	)
	return nil, err
}

func (s *TaskService) resolveStatus(ctx context.Context, operation string, t *task.Task) error {
	if _, err := t.ResolveStatus(ctx, s.statuses); err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve task status",
			slog.String("operation", operation),
			slog.Uint64("id", t.ID()),
			slog.Int("status_id", int(t.StatusID())),
			slog.Any("error", err),
		)
		return fmt.Errorf("resolving status of task %d: %w", t.ID(), err)
	}
	return nil
}

func (s *TaskService) count(ctx context.Context, operation string, filter task.Filter) (int64, error) {
	n, err := s.tasks.Count(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to count tasks",
			slog.String("operation", operation),
			slog.Any("error", err),
		)
		return 0, err
	}
	return n, nil
}

func (s *TaskService) cachedStatistics(ctx context.Context) (task.Statistics, bool) {
	if s.cache == nil {
		return task.Statistics{}, false
	}
	stats, ok, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "statistics cache unavailable",
			slog.String("operation", "Statistics"),
			slog.Any("error", err),
		)
		return task.Statistics{}, false
	}
	return stats, ok
}

// invalidateStatistics drops cached statistics after a write that changes
// the counts. Cache failures are logged; the write has already committed.
func (s *TaskService) invalidateStatistics(ctx context.Context) {
	s.generation.Add(1)
	if s.cache == nil {
		return
	}
	s.dropCachedStatistics(ctx)
}

func (s *TaskService) dropCachedStatistics(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate statistics cache", slog.Any("error", err))
	}
}

func activeFilter() task.Filter {
	completed := false
	return task.Filter{IsCompleted: &completed}
}

func filterAttrs(f task.Filter) []any {
	attrs := []any{slog.Int("status_id", int(f.StatusID))}
	if f.IsCompleted != nil {
		attrs = append(attrs, slog.Bool("is_completed", *f.IsCompleted))
	}
	return attrs
}

// statusLoader resolves task statuses, memoizing them for the duration of a
// request when the context carries an appctx.RequestContext.
type statusLoader struct {
	repo ports.TaskStatusRepository
}

func (l *statusLoader) FindStatus(ctx context.Context, id uint8) (*taskstatus.Status, error) {
	p := appctx.NewDataProvider(fmt.Sprintf("task_status:%d", id), func(ctx context.Context) (*taskstatus.Status, error) {
		return l.repo.FindStatus(ctx, id)
	})
	return p.Get(ctx)
}
