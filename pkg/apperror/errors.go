package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an application error so callers can decide how to react
// without inspecting messages.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidArgument
	KindConflict
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindConflict:
		return "Conflict"
	case KindPersistence:
		return "PersistenceFailure"
	default:
		return "Internal"
	}
}

// AppError represents an application error with its kind
type AppError struct {
	Kind    Kind         `json:"kind"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	Err     error        `json:"-"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another AppError of the same kind and message, so the sentinel
// values below work with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == e.Message
}

// Common errors
var (
	ErrInvalidQuantity = &AppError{Kind: KindInvalidArgument, Message: "quantity must be a positive integer"}
	ErrInternal        = &AppError{Kind: KindInternal, Message: "internal error"}
)

// NewAppError creates a new application error
func NewAppError(kind Kind, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Kind:    KindNotFound,
		Message: resource + " not found",
	}
}

// NewInvalidArgumentError creates an invalid argument error
func NewInvalidArgumentError(message string) *AppError {
	return &AppError{
		Kind:    KindInvalidArgument,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Kind:    KindInvalidArgument,
		Message: "validation failed",
		Errors:  fieldErrors,
	}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Kind:    KindConflict,
		Message: message,
	}
}

// NewPersistenceError wraps a storage failure. The cause stays reachable
// through errors.Is / errors.As.
func NewPersistenceError(err error, op string, args ...interface{}) *AppError {
	return &AppError{
		Kind:    KindPersistence,
		Message: fmt.Sprintf(op, args...),
		Err:     err,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Kind:    KindInternal,
		Message: err.Error(),
		Err:     err,
	}
}
