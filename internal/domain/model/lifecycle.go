package model

import (
	"context"
	"errors"
	"time"
)

// Lifecycle runs the checks every entity passes before it is inserted,
// updated or deleted. Any error aborts the operation before the backing
// store is touched.
type Lifecycle struct {
	validator *Validator
	now       func() time.Time
}

// LifecycleOption configures a Lifecycle.
type LifecycleOption func(*Lifecycle)

// WithClock overrides the source of timestamps.
func WithClock(now func() time.Time) LifecycleOption {
	return func(l *Lifecycle) { l.now = now }
}

// NewLifecycle creates a Lifecycle backed by the given validator.
func NewLifecycle(v *Validator, opts ...LifecycleOption) *Lifecycle {
	l := &Lifecycle{
		validator: v,
		now:       freshTimestamp,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// freshTimestamp returns the current instant at the precision the supported
// databases store.
func freshTimestamp() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Savepoint remembers which timestamp attributes of an entity had no pending
// change, so a failed write can drop the values the lifecycle assigned.
type Savepoint struct {
	entity Entity
	clean  []string
}

// NewSavepoint records the timestamp attributes of e that are not dirty.
func NewSavepoint(e Entity) Savepoint {
	def := e.Definition()
	sp := Savepoint{entity: e}
	if !def.Timestamps {
		return sp
	}
	for _, name := range []string{def.CreatedAt(), def.UpdatedAt()} {
		if name != "" && !e.State().IsDirty(name) {
			sp.clean = append(sp.clean, name)
		}
	}
	return sp
}

// Rollback cancels changes made since the savepoint to the recorded
// attributes and returns cause, joined with any cancel failure.
func (sp Savepoint) Rollback(cause error) error {
	if err := CancelChanges(sp.entity, sp.clean...); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}

// Validator returns the validator used by the lifecycle.
func (l *Lifecycle) Validator() *Validator {
	return l.validator
}

// BeforeCreate runs the create hook, fills empty timestamps with the same
// instant, validates every attribute and checks the primary key.
// Timestamps it filled are reverted when a later check fails.
func (l *Lifecycle) BeforeCreate(ctx context.Context, e Entity) error {
	if err := e.BeforeCreate(ctx); err != nil {
		return err
	}
	sp := NewSavepoint(e)
	if err := l.applyTimestampDefaults(e); err != nil {
		return sp.Rollback(err)
	}
	if err := l.validator.Validate(ctx, e, false); err != nil {
		return sp.Rollback(err)
	}
	if err := CheckPrimaryKeyBeforeCreate(e); err != nil {
		return sp.Rollback(err)
	}
	return nil
}

// BeforeUpdate runs the update hook, validates the changed attributes,
// checks that the primary key is untouched and refreshes the modification
// timestamp.
func (l *Lifecycle) BeforeUpdate(ctx context.Context, e Entity) error {
	if err := e.BeforeUpdate(ctx); err != nil {
		return err
	}
	if err := l.validator.ValidateChanges(ctx, e); err != nil {
		return err
	}
	if err := CheckPrimaryKeyBeforeUpdate(e); err != nil {
		return err
	}
	return l.touch(e)
}

// BeforeDelete runs the delete hook and validates the deletion rules.
func (l *Lifecycle) BeforeDelete(ctx context.Context, e Entity) error {
	if err := e.BeforeDelete(ctx); err != nil {
		return err
	}
	return l.validator.Validate(ctx, e, true)
}

func (l *Lifecycle) applyTimestampDefaults(e Entity) error {
	def := e.Definition()
	if !def.Timestamps {
		return nil
	}

	now := l.now()
	attrs := e.Attributes()
	for _, name := range []string{def.CreatedAt(), def.UpdatedAt()} {
		if name == "" || !isEmpty(attrs[name]) {
			continue
		}
		if err := e.Assign(name, now); err != nil {
			return err
		}
	}
	return nil
}

// touch sets the modification timestamp unless the caller already changed it.
func (l *Lifecycle) touch(e Entity) error {
	name := e.Definition().UpdatedAt()
	if name == "" || e.State().IsDirty(name) {
		return nil
	}
	return e.Assign(name, l.now())
}

// CancelChanges reverts the named dirty attributes. A persisted entity gets
// its last persisted values back; a new entity loses the pending values.
func CancelChanges(e Entity, names ...string) error {
	state := e.State()
	for _, name := range names {
		if !state.IsDirty(name) {
			continue
		}
		if !state.Exists() {
			if err := e.Unset(name); err != nil {
				return err
			}
			continue
		}
		original, _ := state.Original(name)
		if err := e.Assign(name, original); err != nil {
			return err
		}
	}
	return nil
}
