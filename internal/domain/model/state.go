package model

import (
	"maps"
	"reflect"
	"slices"
	"time"
)

// State is the explicit change-set of an entity: whether it exists in the
// backing store, a snapshot of its persisted values and the set of
// attributes changed since that snapshot.
//
// The zero value describes a new, unsaved entity.
type State struct {
	exists   bool
	original map[string]any
	dirty    map[string]struct{}
}

// Exists reports whether the entity has been loaded from or written to the
// backing store.
func (s *State) Exists() bool {
	return s.exists
}

// Track records an assignment. The attribute becomes dirty unless the value
// equals the persisted original. Entities that were never persisted have no
// originals, so every assignment marks the attribute dirty.
func (s *State) Track(name string, value any) {
	if original, ok := s.original[name]; ok && sameValue(original, value) {
		delete(s.dirty, name)
		return
	}
	if s.dirty == nil {
		s.dirty = make(map[string]struct{})
	}
	s.dirty[name] = struct{}{}
}

// Forget drops any pending change of the attribute.
func (s *State) Forget(name string) {
	delete(s.dirty, name)
}

// IsDirty reports whether any of the given attributes changed. With no
// arguments it reports whether any attribute changed.
func (s *State) IsDirty(names ...string) bool {
	if len(names) == 0 {
		return len(s.dirty) > 0
	}
	for _, name := range names {
		if _, ok := s.dirty[name]; ok {
			return true
		}
	}
	return false
}

// Dirty returns the changed attributes in sorted order.
func (s *State) Dirty() []string {
	return slices.Sorted(maps.Keys(s.dirty))
}

// Original returns the persisted value of an attribute.
func (s *State) Original(name string) (any, bool) {
	v, ok := s.original[name]
	return v, ok
}

// Sync snapshots values as the persisted state and clears the change-set.
// Called after the entity is loaded or committed.
func (s *State) Sync(values map[string]any) {
	s.exists = true
	s.original = maps.Clone(values)
	s.dirty = nil
}

// Detach marks the entity as no longer present in the backing store.
func (s *State) Detach() {
	s.exists = false
	s.original = nil
	s.dirty = nil
}

func sameValue(a, b any) bool {
	ta, okA := a.(time.Time)
	tb, okB := b.(time.Time)
	if okA || okB {
		return okA && okB && ta.Equal(tb)
	}
	return reflect.DeepEqual(a, b)
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).IsZero()
}
