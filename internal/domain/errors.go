package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation error")
	ErrConflict         = errors.New("conflict")
	ErrInvalidModel     = errors.New("invalid model")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrUnavailable      = errors.New("unavailable")
)

// ValidationError provides programmatic access to attribute-level validation
// failures. Use errors.Is(err, ErrValidation) for simple checks, or
// errors.As(err, &verr) to read verr.Fields (attribute -> message) and
// verr.Rules (attribute -> failed rule, e.g. "min=5").
type ValidationError struct {
	Fields map[string]string
	Rules  map[string]string
}

// NewValidationError creates a ValidationError with a single failing field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// Add records a failure for the given attribute.
func (e *ValidationError) Add(field, rule, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
	if rule == "" {
		return
	}
	if e.Rules == nil {
		e.Rules = make(map[string]string)
	}
	e.Rules[field] = rule
}

// Empty reports whether no failures were recorded.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
