// Package task defines the Task entity together with the filter and
// statistics types used to query it.
package task

import (
	"context"
	"fmt"
	"time"

	"github.com/jsamuelsen11/go-task-tracker/internal/domain/model"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain/taskstatus"
)

// Attribute names.
const (
	AttrID          = "id"
	AttrCreatedAt   = "created_at"
	AttrUpdatedAt   = "updated_at"
	AttrStatusID    = "status_id"
	AttrText        = "text"
	AttrIsCompleted = "is_completed"
)

// Table is the backing table name.
const Table = "tasks"

// Text length bounds, in characters.
const (
	MinTextLength = 5
	MaxTextLength = 4000
)

var definition = model.Definition{
	Name:         "Task",
	PrimaryKey:   model.Key(AttrID),
	Incrementing: true,
	Timestamps:   true,
	Rules: model.Rules{
		AttrCreatedAt:   "required,lte,ltefield=" + AttrUpdatedAt,
		AttrUpdatedAt:   "required,lte,gtefield=" + AttrCreatedAt,
		AttrStatusID:    "required,exists=" + taskstatus.Table + "." + taskstatus.AttrID,
		AttrText:        fmt.Sprintf("required,min=%d,max=%d", MinTextLength, MaxTextLength),
		AttrIsCompleted: "boolean",
	},
	Labels: map[string]string{
		AttrID:          "ID",
		AttrCreatedAt:   "Creation date",
		AttrUpdatedAt:   "Last modified date",
		AttrStatusID:    "Status ID",
		AttrText:        "Text",
		AttrIsCompleted: "Completion flag",
	},
}

// StatusLoader resolves a status by identifier.
type StatusLoader interface {
	FindStatus(ctx context.Context, id uint8) (*taskstatus.Status, error)
}

// Data holds the caller-supplied (fillable) attributes of a task.
type Data struct {
	StatusID uint8
	Text     string
}

// Snapshot is the plain attribute set of a Task, used to hydrate it from
// storage and to write it back.
type Snapshot struct {
	ID          uint64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	StatusID    uint8
	Text        string
	IsCompleted bool
}

// Task is a unit of work with a status and a completion flag.
type Task struct {
	model.Base

	id          uint64
	createdAt   time.Time
	updatedAt   time.Time
	statusID    uint8
	text        string
	isCompleted bool

	status *taskstatus.Status
}

// New creates an unsaved, incomplete Task from caller data.
func New(data Data) *Task {
	t := &Task{}
	t.Fill(data)
	return t
}

// Restore hydrates a persisted Task. status may be nil when the relation was
// not loaded.
func Restore(snap Snapshot, status *taskstatus.Status) *Task {
	t := &Task{
		id:          snap.ID,
		createdAt:   snap.CreatedAt,
		updatedAt:   snap.UpdatedAt,
		statusID:    snap.StatusID,
		text:        snap.Text,
		isCompleted: snap.IsCompleted,
	}
	t.State().Sync(t.Attributes())
	t.SetStatus(status)
	return t
}

// Snapshot returns the current attribute values.
func (t *Task) Snapshot() Snapshot {
	return Snapshot{
		ID:          t.id,
		CreatedAt:   t.createdAt,
		UpdatedAt:   t.updatedAt,
		StatusID:    t.statusID,
		Text:        t.text,
		IsCompleted: t.isCompleted,
	}
}

// Fill assigns the fillable attributes.
func (t *Task) Fill(data Data) {
	t.SetStatusID(data.StatusID)
	t.SetText(data.Text)
}

// ID returns the primary key, zero until the task is stored.
func (t *Task) ID() uint64 { return t.id }

// CreatedAt returns the creation time.
func (t *Task) CreatedAt() time.Time { return t.createdAt }

// UpdatedAt returns the last modification time.
func (t *Task) UpdatedAt() time.Time { return t.updatedAt }

// StatusID returns the referenced task status id.
func (t *Task) StatusID() uint8 { return t.statusID }

// Text returns the task description.
func (t *Task) Text() string { return t.text }

// IsCompleted reports whether the task is done.
func (t *Task) IsCompleted() bool { return t.isCompleted }

// SetStatusID changes the status reference. A loaded status relation that no
// longer matches is dropped.
func (t *Task) SetStatusID(id uint8) { t.set(AttrStatusID, id) }

// SetText changes the task description.
func (t *Task) SetText(text string) { t.set(AttrText, text) }

// SetCompleted marks the task done or not done.
func (t *Task) SetCompleted(done bool) { t.set(AttrIsCompleted, done) }

// Status returns the loaded status relation, if any.
func (t *Task) Status() (*taskstatus.Status, bool) {
	return t.status, t.status != nil
}

// SetStatus attaches a loaded status. A status that does not match the
// task's status_id is ignored.
func (t *Task) SetStatus(s *taskstatus.Status) {
	if s != nil && s.ID() != t.statusID {
		s = nil
	}
	t.status = s
}

// ResolveStatus returns the status relation, loading it on first use.
func (t *Task) ResolveStatus(ctx context.Context, loader StatusLoader) (*taskstatus.Status, error) {
	if t.status != nil {
		return t.status, nil
	}
	s, err := loader.FindStatus(ctx, t.statusID)
	if err != nil {
		return nil, err
	}
	t.SetStatus(s)
	return s, nil
}

// Definition implements model.Entity.
func (t *Task) Definition() *model.Definition {
	return &definition
}

// Attributes implements model.Entity.
func (t *Task) Attributes() map[string]any {
	return map[string]any{
		AttrID:          t.id,
		AttrCreatedAt:   t.createdAt,
		AttrUpdatedAt:   t.updatedAt,
		AttrStatusID:    t.statusID,
		AttrText:        t.text,
		AttrIsCompleted: t.isCompleted,
	}
}

// Assign implements model.Entity.
func (t *Task) Assign(name string, value any) error {
	var ok bool
	switch name {
	case AttrID:
		ok = model.AssignAs(&t.id, value)
	case AttrCreatedAt:
		ok = model.AssignAs(&t.createdAt, value)
	case AttrUpdatedAt:
		ok = model.AssignAs(&t.updatedAt, value)
	case AttrStatusID:
		if ok = model.AssignAs(&t.statusID, value); ok && t.status != nil && t.status.ID() != t.statusID {
			t.status = nil
		}
	case AttrText:
		ok = model.AssignAs(&t.text, value)
	case AttrIsCompleted:
		ok = model.AssignAs(&t.isCompleted, value)
	default:
		return fmt.Errorf("task: unknown attribute %q", name)
	}
	if !ok {
		return fmt.Errorf("task: attribute %q: unexpected type %T", name, value)
	}
	t.State().Track(name, value)
	return nil
}

// Unset implements model.Entity.
func (t *Task) Unset(name string) error {
	switch name {
	case AttrID:
		t.id = 0
	case AttrCreatedAt:
		t.createdAt = time.Time{}
	case AttrUpdatedAt:
		t.updatedAt = time.Time{}
	case AttrStatusID:
		t.statusID = 0
		t.status = nil
	case AttrText:
		t.text = ""
	case AttrIsCompleted:
		t.isCompleted = false
	default:
		return fmt.Errorf("task: unknown attribute %q", name)
	}
	t.State().Forget(name)
	return nil
}

func (t *Task) set(name string, value any) {
	if err := t.Assign(name, value); err != nil {
		panic(err)
	}
}

var _ model.Entity = (*Task)(nil)
