package taskstatus

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/go-task-tracker/internal/domain"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain/model"
)

type takenIDs map[uint8]bool

func (r takenIDs) Exists(_ context.Context, _, _ string, value any) (bool, error) {
	id, _ := value.(uint8)
	return r[id], nil
}

func TestStatus_CreateValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    *Status
		wantField string
		wantMsg   string
	}{
		{
			name:   "valid",
			status: New(4, "Someday", "Gray"),
		},
		{
			name:      "color must be letters",
			status:    New(4, "Someday", "123"),
			wantField: AttrColor,
			wantMsg:   "Color must consist of Latin letters only",
		},
		{
			name:      "name too short",
			status:    New(4, "Ok", "Gray"),
			wantField: AttrName,
			wantMsg:   "The Name must be at least 3 characters.",
		},
		{
			name:      "id already taken",
			status:    New(1, "Duplicate", "Gray"),
			wantField: AttrID,
			wantMsg:   "The ID has already been taken.",
		},
		{
			name:      "id required",
			status:    New(0, "Nothing", "Gray"),
			wantField: AttrID,
			wantMsg:   "The ID field is required.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lc := model.NewLifecycle(model.NewValidator(takenIDs{1: true}))
			err := lc.BeforeCreate(context.Background(), tt.status)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("BeforeCreate() error = %v", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("BeforeCreate() error = %v, want *ValidationError", err)
			}
			if got := verr.Fields[tt.wantField]; got != tt.wantMsg {
				t.Errorf("Fields[%q] = %q, want %q", tt.wantField, got, tt.wantMsg)
			}
		})
	}
}

func TestStatus_ManualKeyMayBeSet(t *testing.T) {
	t.Parallel()

	s := New(7, "Waiting", "Blue")
	if err := model.CheckPrimaryKeyBeforeCreate(s); err != nil {
		t.Errorf("CheckPrimaryKeyBeforeCreate() error = %v, want nil", err)
	}
	if s.Definition().CreatedAt() != "" {
		t.Error("task statuses should not use timestamps")
	}
}

func TestRestore(t *testing.T) {
	t.Parallel()

	s := Restore(Snapshot{ID: 2, Name: "Important task", Color: "LemonChiffon"})
	if !s.State().Exists() || s.State().IsDirty() {
		t.Fatalf("Restore() state: exists=%v dirty=%v", s.State().Exists(), s.State().Dirty())
	}

	s.SetColor("Gold")
	if err := model.CancelChanges(s, AttrColor); err != nil {
		t.Fatalf("CancelChanges() error = %v", err)
	}
	if s.Color() != "LemonChiffon" {
		t.Errorf("Color() = %q, want LemonChiffon", s.Color())
	}
}

func TestStatus_AssignRejectsWrongType(t *testing.T) {
	t.Parallel()

	s := Restore(Snapshot{ID: 2, Name: "Important task", Color: "LemonChiffon"})
	want := s.Snapshot()

	for attr, value := range map[string]any{AttrID: 3, AttrName: 7, AttrColor: nil} {
		if err := s.Assign(attr, value); err == nil {
			t.Errorf("Assign(%s, %T) error = nil, want type error", attr, value)
		}
	}
	if got := s.Snapshot(); got != want {
		t.Errorf("Snapshot() after rejected Assign = %+v, want %+v", got, want)
	}
	if s.State().IsDirty() {
		t.Errorf("rejected Assign left dirty attributes %v", s.State().Dirty())
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	lc := model.NewLifecycle(model.NewValidator(takenIDs{}))
	for _, snap := range Defaults() {
		if err := lc.BeforeCreate(context.Background(), New(snap.ID, snap.Name, snap.Color)); err != nil {
			t.Errorf("default status %d invalid: %v", snap.ID, err)
		}
	}
}
