package domain

import "fmt"

// Canned messages used when an error is created without an explicit message.
const (
	msgModelFailed           = "An error occurred while performing an operation on the model"
	msgModelFailedNamed      = "An error occurred while performing an operation on model (%s)"
	msgInvalidModel          = "Model is in an invalid state"
	msgInvalidAttribute      = "Model attribute is in an invalid state"
	msgInvalidAttributeNamed = "Attribute (%s) of the model is in an invalid state"
	msgModelNotFound         = "Model was not found"
	msgModelNotFoundWithID   = "Model with ID (%v) was not found"
	msgInvalidOperation      = "Operation is not valid for the current state of the object"
	labelModelName           = "Model name"
	labelAttributeName       = "Attribute name"
	labelModelID             = "Model ID"
	contextSuffixFormat      = "%s. %s: %v"
)

// ErrorOption configures optional fields of model and operation errors.
type ErrorOption func(*errorOptions)

type errorOptions struct {
	code  int
	cause error
}

// WithCode sets a numeric error code.
func WithCode(code int) ErrorOption {
	return func(o *errorOptions) { o.code = code }
}

// WithCause records the error that caused this one. It is returned by Unwrap.
func WithCause(err error) ErrorOption {
	return func(o *errorOptions) { o.cause = err }
}

func applyErrorOptions(opts []ErrorOption) errorOptions {
	var o errorOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// withContext appends ". <label>: <value>" to a non-empty message, or
// replaces an empty one with the given template.
func withContext(message, label string, value any, template string) string {
	if message != "" {
		return fmt.Sprintf(contextSuffixFormat, message, label, value)
	}
	return fmt.Sprintf(template, value)
}

// ModelError is the base failure for an operation performed on an entity type.
type ModelError struct {
	ModelName string
	Code      int
	Cause     error
	message   string
}

// NewModelError creates a ModelError. An empty message is replaced with a
// canned one mentioning the model name when it is known.
func NewModelError(message, modelName string, opts ...ErrorOption) *ModelError {
	o := applyErrorOptions(opts)
	e := newModelError(message, modelName)
	e.Code = o.code
	e.Cause = o.cause
	return e
}

func newModelError(message, modelName string) *ModelError {
	if modelName != "" {
		message = withContext(message, labelModelName, modelName, msgModelFailedNamed)
	}
	if message == "" {
		message = msgModelFailed
	}
	return &ModelError{ModelName: modelName, message: message}
}

func (e *ModelError) Error() string {
	return e.message
}

func (e *ModelError) Unwrap() error {
	return e.Cause
}

// InvalidModelError reports an entity that fails a structural or validation
// invariant. It matches ErrInvalidModel and can be read as a *ModelError.
type InvalidModelError struct {
	ModelError
}

// NewInvalidModelError creates an InvalidModelError.
func NewInvalidModelError(message, modelName string, opts ...ErrorOption) *InvalidModelError {
	if message == "" {
		message = msgInvalidModel
	}
	return &InvalidModelError{ModelError: *NewModelError(message, modelName, opts...)}
}

func (e *InvalidModelError) Is(target error) bool {
	return target == ErrInvalidModel
}

func (e *InvalidModelError) As(target any) bool {
	if t, ok := target.(**ModelError); ok {
		*t = &e.ModelError
		return true
	}
	return false
}

// InvalidModelAttributeError reports a specific invalid attribute, such as a
// primary key that was set or changed illegally.
type InvalidModelAttributeError struct {
	InvalidModelError
	AttributeName string
}

// NewInvalidModelAttributeError creates an InvalidModelAttributeError.
func NewInvalidModelAttributeError(message, attributeName, modelName string, opts ...ErrorOption) *InvalidModelAttributeError {
	if attributeName != "" {
		message = withContext(message, labelAttributeName, attributeName, msgInvalidAttributeNamed)
	}
	if message == "" {
		message = msgInvalidAttribute
	}
	return &InvalidModelAttributeError{
		InvalidModelError: *NewInvalidModelError(message, modelName, opts...),
		AttributeName:     attributeName,
	}
}

func (e *InvalidModelAttributeError) As(target any) bool {
	switch t := target.(type) {
	case **InvalidModelError:
		*t = &e.InvalidModelError
		return true
	case **ModelError:
		*t = &e.ModelError
		return true
	}
	return false
}

// ModelNotFoundError reports a lookup by identifier that returned nothing.
type ModelNotFoundError struct {
	ModelError
	ModelID any
}

// NewModelNotFoundError creates a ModelNotFoundError. A nil id leaves the
// message without identifier context.
func NewModelNotFoundError(message string, id any, modelName string, opts ...ErrorOption) *ModelNotFoundError {
	if id != nil {
		message = withContext(message, labelModelID, id, msgModelNotFoundWithID)
	}
	if message == "" {
		message = msgModelNotFound
	}
	return &ModelNotFoundError{
		ModelError: *NewModelError(message, modelName, opts...),
		ModelID:    id,
	}
}

func (e *ModelNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func (e *ModelNotFoundError) As(target any) bool {
	if t, ok := target.(**ModelError); ok {
		*t = &e.ModelError
		return true
	}
	return false
}

// InvalidOperationError reports an operation invoked while the object is in
// a state that forbids it.
type InvalidOperationError struct {
	Code    int
	Cause   error
	message string
}

// NewInvalidOperationError creates an InvalidOperationError.
func NewInvalidOperationError(message string, opts ...ErrorOption) *InvalidOperationError {
	o := applyErrorOptions(opts)
	if message == "" {
		message = msgInvalidOperation
	}
	return &InvalidOperationError{Code: o.code, Cause: o.cause, message: message}
}

func (e *InvalidOperationError) Error() string {
	return e.message
}

func (e *InvalidOperationError) Unwrap() error {
	return e.Cause
}

func (e *InvalidOperationError) Is(target error) bool {
	return target == ErrInvalidOperation
}
