package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-task-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-tracker/internal/ports"
)

// TaskStatusHandler serves the task status reference list.
type TaskStatusHandler struct {
	service ports.TaskStatusService
}

// NewTaskStatusHandler creates a new TaskStatusHandler.
func NewTaskStatusHandler(service ports.TaskStatusService) *TaskStatusHandler {
	return &TaskStatusHandler{service: service}
}

// List handles GET /api/task-statuses.
func (h *TaskStatusHandler) List(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.service.List(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTaskStatusListResponse(statuses))
}
