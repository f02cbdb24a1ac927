package handlers

import (
	"math"
	"net/http"

	"github.com/jsamuelsen11/go-task-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/go-task-tracker/internal/ports"
)

// TaskIDParam is the chi URL parameter carrying the task identifier.
const TaskIDParam = "taskId"

// TaskHandler handles the task JSON API.
type TaskHandler struct {
	service ports.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given service port.
func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// List handles GET /api/tasks.
//
// status_id filters by status when positive. Any positive is_completed
// restricts the list to tasks that are NOT completed; the page sends 1 for
// its "active only" option.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	statusID := queryUint(r, "status_id")
	if statusID > math.MaxUint8 {
		// No status can carry this identifier.
		writeJSON(w, r, http.StatusOK, dto.ToTaskListResponse(nil))
		return
	}

	filter := task.Filter{StatusID: uint8(statusID)}
	if queryUint(r, "is_completed") > 0 {
		active := false
		filter.IsCompleted = &active
	}

	tasks, err := h.service.List(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTaskListResponse(tasks))
}

// Statistics handles GET /api/tasks/statistics.
func (h *TaskHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Statistics(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToStatisticsResponse(stats))
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.service.Create(r.Context(), req.Data())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.writeDetailed(w, r, http.StatusCreated, created.ID())
}

// Update handles PUT /api/tasks/{taskId}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, TaskIDParam)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.TaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if _, err := h.service.Update(r.Context(), id, req.Data()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.writeDetailed(w, r, http.StatusOK, id)
}

// Complete handles PATCH /api/tasks/{taskId}/completed.
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.setCompletion(w, r, true)
}

// Reopen handles PATCH /api/tasks/{taskId}/not_completed.
func (h *TaskHandler) Reopen(w http.ResponseWriter, r *http.Request) {
	h.setCompletion(w, r, false)
}

// Delete handles DELETE /api/tasks/{taskId}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, TaskIDParam)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if _, err := h.service.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TaskHandler) setCompletion(w http.ResponseWriter, r *http.Request, completed bool) {
	id, err := parseID(r, TaskIDParam)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if _, err := h.service.SetCompletion(r.Context(), id, completed); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.writeDetailed(w, r, http.StatusOK, id)
}

// writeDetailed reloads the task with its status and writes it.
func (h *TaskHandler) writeDetailed(w http.ResponseWriter, r *http.Request, status int, id uint64) {
	t, err := h.service.GetDetailed(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, status, dto.ToTaskResponse(t))
}
