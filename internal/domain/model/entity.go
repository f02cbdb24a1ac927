package model

import "context"

// Hooks are extension points invoked by the Lifecycle before the create,
// update and delete checks run. Returning an error aborts the operation.
type Hooks interface {
	BeforeCreate(ctx context.Context) error
	BeforeUpdate(ctx context.Context) error
	BeforeDelete(ctx context.Context) error
}

// Entity is implemented by every persisted entity type.
type Entity interface {
	Hooks

	// Definition describes the entity type.
	Definition() *Definition

	// Attributes returns every attribute keyed by name, including ones that
	// are normally hidden from callers. Used by validation.
	Attributes() map[string]any

	// Assign sets an attribute by name and records the change.
	Assign(name string, value any) error

	// Unset clears an attribute and drops its pending change.
	Unset(name string) error

	// State returns the entity's change-set.
	State() *State
}

// Base supplies the change-set and no-op hooks. Embed it in entity structs.
type Base struct {
	state State
}

// State returns the entity's change-set.
func (b *Base) State() *State {
	return &b.state
}

// BeforeCreate does nothing.
func (*Base) BeforeCreate(context.Context) error { return nil }

// BeforeUpdate does nothing.
func (*Base) BeforeUpdate(context.Context) error { return nil }

// BeforeDelete does nothing.
func (*Base) BeforeDelete(context.Context) error { return nil }

// AssignAs stores value in dst when it has type T and reports whether it did.
// dst is left untouched on a type mismatch.
func AssignAs[T any](dst *T, value any) bool {
	v, ok := value.(T)
	if ok {
		*dst = v
	}
	return ok
}
