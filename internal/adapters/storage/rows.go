package storage

import (
	"time"

	"github.com/jsamuelsen11/go-task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain/taskstatus"
)

// taskStatusRow maps the task_statuses table.
type taskStatusRow struct {
	ID    uint8  `gorm:"primaryKey;autoIncrement:false"`
	Name  string `gorm:"size:30;not null"`
	Color string `gorm:"size:30;not null"`
}

func (taskStatusRow) TableName() string {
	return taskstatus.Table
}

func statusRowFrom(s *taskstatus.Status) taskStatusRow {
	snap := s.Snapshot()
	return taskStatusRow{ID: snap.ID, Name: snap.Name, Color: snap.Color}
}

func (r *taskStatusRow) restore() *taskstatus.Status {
	return taskstatus.Restore(taskstatus.Snapshot{ID: r.ID, Name: r.Name, Color: r.Color})
}

// taskRow maps the tasks table. The composite indexes serve the list filters,
// which always sort by updated_at.
type taskRow struct {
	ID          uint64         `gorm:"primaryKey;autoIncrement"`
	CreatedAt   time.Time      `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   time.Time      `gorm:"not null;autoUpdateTime:false;index;index:idx_tasks_status_updated,priority:2;index:idx_tasks_completed_updated,priority:2;index:idx_tasks_status_completed_updated,priority:3"`
	StatusID    uint8          `gorm:"not null;index;index:idx_tasks_status_updated,priority:1;index:idx_tasks_status_completed_updated,priority:1"`
	Text        string         `gorm:"size:4000;not null"`
	IsCompleted bool           `gorm:"not null;index:idx_tasks_completed_updated,priority:1;index:idx_tasks_status_completed_updated,priority:2"`
	Status      *taskStatusRow `gorm:"foreignKey:StatusID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

func (taskRow) TableName() string {
	return task.Table
}

func taskRowFrom(t *task.Task) taskRow {
	snap := t.Snapshot()
	return taskRow{
		ID:          snap.ID,
		CreatedAt:   snap.CreatedAt,
		UpdatedAt:   snap.UpdatedAt,
		StatusID:    snap.StatusID,
		Text:        snap.Text,
		IsCompleted: snap.IsCompleted,
	}
}

func (r *taskRow) restore() *task.Task {
	var status *taskstatus.Status
	if r.Status != nil {
		status = r.Status.restore()
	}
	return task.Restore(task.Snapshot{
		ID:          r.ID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		StatusID:    r.StatusID,
		Text:        r.Text,
		IsCompleted: r.IsCompleted,
	}, status)
}
