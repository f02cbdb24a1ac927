package dto_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-task-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain/taskstatus"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 123456000, time.UTC)

func restoredStatus() *taskstatus.Status {
	return taskstatus.Restore(taskstatus.Snapshot{ID: 2, Name: "In progress", Color: "LemonChiffon"})
}

func restoredTask(withStatus bool) *task.Task {
	var status *taskstatus.Status
	if withStatus {
		status = restoredStatus()
	}
	return task.Restore(task.Snapshot{
		ID:          7,
		CreatedAt:   testTime,
		UpdatedAt:   testTime.Add(time.Minute),
		StatusID:    2,
		Text:        "write the report",
		IsCompleted: true,
	}, status)
}

func TestToTaskResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		task   *task.Task
		verify func(t *testing.T, got dto.TaskResponse)
	}{
		{
			name: "maps all fields correctly",
			task: restoredTask(false),
			verify: func(t *testing.T, got dto.TaskResponse) {
				t.Helper()
				if got.ID != 7 || got.StatusID != 2 || got.Text != "write the report" || !got.IsCompleted {
					t.Errorf("unexpected fields: %+v", got)
				}
				if got.CreatedAt != "2026-02-12T15:04:05.123456Z" {
					t.Errorf("CreatedAt = %q", got.CreatedAt)
				}
				if got.UpdatedAt != "2026-02-12T15:05:05.123456Z" {
					t.Errorf("UpdatedAt = %q", got.UpdatedAt)
				}
				if got.RelatedStatus != nil {
					t.Errorf("RelatedStatus = %+v, want nil when not loaded", got.RelatedStatus)
				}
			},
		},
		{
			name: "includes loaded status",
			task: restoredTask(true),
			verify: func(t *testing.T, got dto.TaskResponse) {
				t.Helper()
				if got.RelatedStatus == nil {
					t.Fatal("RelatedStatus = nil, want status")
				}
				want := dto.TaskStatusResponse{ID: 2, Name: "In progress", Color: "LemonChiffon"}
				if *got.RelatedStatus != want {
					t.Errorf("RelatedStatus = %+v, want %+v", *got.RelatedStatus, want)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.verify(t, dto.ToTaskResponse(tt.task))
		})
	}
}

func TestToTaskResponse_JSONOmitsMissingStatus(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(dto.ToTaskResponse(restoredTask(false)))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), "related_status") {
		t.Errorf("JSON %s contains related_status", data)
	}
	if !strings.Contains(string(data), `"is_completed":true`) {
		t.Errorf("JSON %s missing is_completed", data)
	}
}

func TestToTaskListResponse_EmptyIsArray(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(dto.ToTaskListResponse(nil))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("JSON = %s, want []", data)
	}

	statuses, err := json.Marshal(dto.ToTaskStatusListResponse(nil))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(statuses) != "[]" {
		t.Errorf("JSON = %s, want []", statuses)
	}
}

func TestToStatisticsResponse(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(dto.ToStatisticsResponse(task.Statistics{Count: 5, ActiveCount: 2}))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `{"count":5,"active_count":2}`; string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}
}

func TestFormatTimestamp_ConvertsToUTC(t *testing.T) {
	t.Parallel()

	local := time.Date(2026, 2, 12, 18, 4, 5, 0, time.FixedZone("MSK", 3*3600))
	if got, want := dto.FormatTimestamp(local), "2026-02-12T15:04:05.000000Z"; got != want {
		t.Errorf("FormatTimestamp() = %q, want %q", got, want)
	}
}
