// Package taskstatus defines the TaskStatus entity: read-mostly reference
// data that every task points at.
package taskstatus

import (
	"fmt"

	"github.com/jsamuelsen11/go-task-tracker/internal/domain/model"
)

// Attribute names.
const (
	AttrID    = "id"
	AttrName  = "name"
	AttrColor = "color"
)

// Table is the backing table name, referenced by the exists/unique rules.
const Table = "task_statuses"

var definition = model.Definition{
	Name:         "TaskStatus",
	PrimaryKey:   model.Key(AttrID),
	Incrementing: false,
	Timestamps:   false,
	Rules: model.Rules{
		AttrID:    "required,min=1,max=255,unique=" + Table + "." + AttrID,
		AttrName:  "required,min=3,max=30",
		AttrColor: "required,min=2,max=30,alpha",
	},
	Messages: map[string]string{
		AttrColor + ".alpha": "Color must consist of Latin letters only",
	},
	Labels: map[string]string{
		AttrID:    "ID",
		AttrName:  "Name",
		AttrColor: "Color",
	},
}

// Status is a task status with a manually assigned identifier.
type Status struct {
	model.Base

	id    uint8
	name  string
	color string
}

// Snapshot is the plain attribute set of a Status, used to hydrate it from
// storage and to write it back.
type Snapshot struct {
	ID    uint8
	Name  string
	Color string
}

// New creates an unsaved Status.
func New(id uint8, name, color string) *Status {
	s := &Status{}
	s.set(AttrID, id)
	s.set(AttrName, name)
	s.set(AttrColor, color)
	return s
}

// Restore hydrates a persisted Status.
func Restore(snap Snapshot) *Status {
	s := &Status{id: snap.ID, name: snap.Name, color: snap.Color}
	s.State().Sync(s.Attributes())
	return s
}

// Snapshot returns the current attribute values.
func (s *Status) Snapshot() Snapshot {
	return Snapshot{ID: s.id, Name: s.name, Color: s.color}
}

// ID returns the manually assigned key.
func (s *Status) ID() uint8 { return s.id }

// Name returns the display name.
func (s *Status) Name() string { return s.name }

// Color returns the CSS color name used on the page.
func (s *Status) Color() string { return s.color }

// SetName changes the display name.
func (s *Status) SetName(v string) { s.set(AttrName, v) }

// SetColor changes the CSS color name.
func (s *Status) SetColor(v string) { s.set(AttrColor, v) }

// Definition implements model.Entity.
func (s *Status) Definition() *model.Definition {
	return &definition
}

// Attributes implements model.Entity.
func (s *Status) Attributes() map[string]any {
	return map[string]any{
		AttrID:    s.id,
		AttrName:  s.name,
		AttrColor: s.color,
	}
}

// Assign implements model.Entity.
func (s *Status) Assign(name string, value any) error {
	var ok bool
	switch name {
	case AttrID:
		ok = model.AssignAs(&s.id, value)
	case AttrName:
		ok = model.AssignAs(&s.name, value)
	case AttrColor:
		ok = model.AssignAs(&s.color, value)
	default:
		return fmt.Errorf("task status: unknown attribute %q", name)
	}
	if !ok {
		return fmt.Errorf("task status: attribute %q: unexpected type %T", name, value)
	}
	s.State().Track(name, value)
	return nil
}

// Unset implements model.Entity.
func (s *Status) Unset(name string) error {
	switch name {
	case AttrID:
		s.id = 0
	case AttrName:
		s.name = ""
	case AttrColor:
		s.color = ""
	default:
		return fmt.Errorf("task status: unknown attribute %q", name)
	}
	s.State().Forget(name)
	return nil
}

// set assigns a value whose type is known to match.
func (s *Status) set(name string, value any) {
	if err := s.Assign(name, value); err != nil {
		panic(err)
	}
}

var _ model.Entity = (*Status)(nil)
