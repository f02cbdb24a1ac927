package dto

import (
	"math"

	"github.com/jsamuelsen11/go-task-tracker/internal/domain"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain/task"
)

const msgInvalidStatus = "The selected Status ID is invalid."

// TaskRequest represents the JSON body for creating or changing a task.
// Entity rules (required fields, text length, status existence) are checked
// by the entity lifecycle; Validate only rejects values that cannot be
// represented as task data.
type TaskRequest struct {
	StatusID int64  `json:"status_id"`
	Text     string `json:"text"`
}

// Validate checks that status_id fits the status identifier range.
// Returns a *domain.ValidationError if it does not.
func (r *TaskRequest) Validate() error {
	if r.StatusID < 0 || r.StatusID > math.MaxUint8 {
		return &domain.ValidationError{
			Fields: map[string]string{"status_id": msgInvalidStatus},
			Rules:  map[string]string{"status_id": "exists"},
		}
	}
	return nil
}

// Data converts the request to task data. Call Validate first.
func (r *TaskRequest) Data() task.Data {
	return task.Data{
		StatusID: uint8(r.StatusID),
		Text:     r.Text,
	}
}
