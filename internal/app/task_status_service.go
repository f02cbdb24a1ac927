package app

import (
	"context"
	"log/slog"

	appctx "github.com/jsamuelsen11/go-task-tracker/internal/app/context"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain/taskstatus"
	"github.com/jsamuelsen11/go-task-tracker/internal/ports"
)

// Compile-time check that TaskStatusService implements ports.TaskStatusService.
var _ ports.TaskStatusService = (*TaskStatusService)(nil)

// TaskStatusService implements ports.TaskStatusService. Statuses are
// memoized per request since both the page and the API may ask for them
// more than once.
type TaskStatusService struct {
	all    *appctx.DataProvider[[]*taskstatus.Status]
	logger *slog.Logger
}

// NewTaskStatusService creates a TaskStatusService.
func NewTaskStatusService(repo ports.TaskStatusRepository, logger *slog.Logger) *TaskStatusService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskStatusService{
		all:    appctx.NewDataProvider("task_statuses", repo.List),
		logger: logger,
	}
}

// List returns all statuses ordered by ID.
func (s *TaskStatusService) List(ctx context.Context) ([]*taskstatus.Status, error) {
	s.logger.InfoContext(ctx, "listing task statuses")

	statuses, err := s.all.Get(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list task statuses",
			slog.String("operation", "List"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return statuses, nil
}
