package model

import (
	"context"
	"fmt"
	"time"
)

var noteDefinition = Definition{
	Name:         "Note",
	PrimaryKey:   Key("id"),
	Incrementing: true,
	Timestamps:   true,
	Rules: Rules{
		"created_at": "required,lte,ltefield=updated_at",
		"updated_at": "required,lte,gtefield=created_at",
		"owner_id":   "required,exists=owners.id",
		"title":      "required,min=3,max=20",
	},
	DeletionRules: Rules{
		"owner_id": "unique=locks.owner_id",
	},
	Messages: map[string]string{
		"title.max": "Title is too long",
	},
	Labels: map[string]string{
		"created_at": "Creation date",
		"updated_at": "Last modified date",
	},
}

// note is a minimal entity exercising every lifecycle feature.
type note struct {
	Base

	def       *Definition
	id        int64
	ownerID   int64
	title     string
	createdAt time.Time
	updatedAt time.Time

	createHook func(context.Context) error
}

func newNote(ownerID int64, title string) *note {
	n := &note{def: &noteDefinition}
	_ = n.Assign("owner_id", ownerID)
	_ = n.Assign("title", title)
	return n
}

func (n *note) Definition() *Definition { return n.def }

func (n *note) Attributes() map[string]any {
	return map[string]any{
		"id":         n.id,
		"owner_id":   n.ownerID,
		"title":      n.title,
		"created_at": n.createdAt,
		"updated_at": n.updatedAt,
	}
}

func (n *note) Assign(name string, value any) error {
	var ok bool
	switch name {
	case "id":
		ok = AssignAs(&n.id, value)
	case "owner_id":
		ok = AssignAs(&n.ownerID, value)
	case "title":
		ok = AssignAs(&n.title, value)
	case "created_at":
		ok = AssignAs(&n.createdAt, value)
	case "updated_at":
		ok = AssignAs(&n.updatedAt, value)
	default:
		return fmt.Errorf("unknown attribute %q", name)
	}
	if !ok {
		return fmt.Errorf("attribute %q: unexpected type %T", name, value)
	}
	n.State().Track(name, value)
	return nil
}

func (n *note) Unset(name string) error {
	switch name {
	case "id":
		n.id = 0
	case "owner_id":
		n.ownerID = 0
	case "title":
		n.title = ""
	case "created_at":
		n.createdAt = time.Time{}
	case "updated_at":
		n.updatedAt = time.Time{}
	default:
		return fmt.Errorf("unknown attribute %q", name)
	}
	n.State().Forget(name)
	return nil
}

func (n *note) BeforeCreate(ctx context.Context) error {
	if n.createHook != nil {
		return n.createHook(ctx)
	}
	return nil
}

// persist simulates a successful insert.
func (n *note) persist(id int64) {
	n.id = id
	n.State().Sync(n.Attributes())
}

// fakeRefs answers existence queries from a fixed set of "table.column=value" keys.
type fakeRefs struct {
	rows map[string]bool
	err  error
}

func (f *fakeRefs) Exists(_ context.Context, table, column string, value any) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.rows[fmt.Sprintf("%s.%s=%v", table, column, value)], nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
