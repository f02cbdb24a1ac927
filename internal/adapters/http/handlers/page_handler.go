package handlers

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/go-task-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain/taskstatus"
	"github.com/jsamuelsen11/go-task-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/go-task-tracker/internal/ports"
)

//go:embed templates/tasks.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/tasks.html"))

const pageTitle = "My task list"

// pageData is the view model of the task page.
type pageData struct {
	Title      string
	Tasks      []dto.TaskResponse
	Statuses   []dto.TaskStatusResponse
	Statistics dto.StatisticsResponse
}

// PageHandler renders the HTML task page.
type PageHandler struct {
	tasks    ports.TaskService
	statuses ports.TaskStatusService
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(tasks ports.TaskService, statuses ports.TaskStatusService) *PageHandler {
	return &PageHandler{tasks: tasks, statuses: statuses}
}

// Index handles GET /.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	data, err := h.load(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	// Render into a buffer so a template failure can still produce an error
	// response.
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to write page", slog.Any("error", err))
	}
}

// load fetches the page's tasks, statuses and counters concurrently.
func (h *PageHandler) load(ctx context.Context) (pageData, error) {
	var (
		tasks    []*task.Task
		statuses []*taskstatus.Status
		stats    task.Statistics
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = h.tasks.List(gctx, task.Filter{})
		return err
	})
	g.Go(func() error {
		var err error
		statuses, err = h.statuses.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = h.tasks.Statistics(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return pageData{}, err
	}

	return pageData{
		Title:      pageTitle,
		Tasks:      dto.ToTaskListResponse(tasks),
		Statuses:   dto.ToTaskStatusListResponse(statuses),
		Statistics: dto.ToStatisticsResponse(stats),
	}, nil
}
