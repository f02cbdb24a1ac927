// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/go-task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain/taskstatus"
)

// TimestampLayout is the wire format of task timestamps: UTC with
// microsecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// TaskStatusResponse represents a single task status in HTTP responses.
type TaskStatusResponse struct {
	ID    uint8  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TaskResponse represents a single task in HTTP responses. RelatedStatus is
// present only when the status relation was loaded.
type TaskResponse struct {
	ID            uint64              `json:"id"`
	CreatedAt     string              `json:"created_at"`
	UpdatedAt     string              `json:"updated_at"`
	StatusID      uint8               `json:"status_id"`
	Text          string              `json:"text"`
	IsCompleted   bool                `json:"is_completed"`
	RelatedStatus *TaskStatusResponse `json:"related_status,omitempty"`
}

// StatisticsResponse carries the task counters.
type StatisticsResponse struct {
	Count       int64 `json:"count"`
	ActiveCount int64 `json:"active_count"`
}

// ToTaskStatusResponse converts a domain Status to an HTTP response DTO.
func ToTaskStatusResponse(s *taskstatus.Status) TaskStatusResponse {
	return TaskStatusResponse{
		ID:    s.ID(),
		Name:  s.Name(),
		Color: s.Color(),
	}
}

// ToTaskStatusListResponse converts a slice of statuses. The result is never
// nil so it encodes as a JSON array.
func ToTaskStatusListResponse(statuses []*taskstatus.Status) []TaskStatusResponse {
	items := make([]TaskStatusResponse, len(statuses))
	for i, s := range statuses {
		items[i] = ToTaskStatusResponse(s)
	}
	return items
}

// ToTaskResponse converts a domain Task to an HTTP response DTO.
func ToTaskResponse(t *task.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID(),
		CreatedAt:   FormatTimestamp(t.CreatedAt()),
		UpdatedAt:   FormatTimestamp(t.UpdatedAt()),
		StatusID:    t.StatusID(),
		Text:        t.Text(),
		IsCompleted: t.IsCompleted(),
	}
	if s, ok := t.Status(); ok {
		status := ToTaskStatusResponse(s)
		resp.RelatedStatus = &status
	}
	return resp
}

// ToTaskListResponse converts a slice of tasks. The result is never nil so
// it encodes as a JSON array.
func ToTaskListResponse(tasks []*task.Task) []TaskResponse {
	items := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		items[i] = ToTaskResponse(t)
	}
	return items
}

// ToStatisticsResponse converts task statistics to an HTTP response DTO.
func ToStatisticsResponse(s task.Statistics) StatisticsResponse {
	return StatisticsResponse{Count: s.Count, ActiveCount: s.ActiveCount}
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
