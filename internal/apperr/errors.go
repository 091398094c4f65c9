// Package apperr defines the error taxonomy surfaced by the HTTP layer.
// Transactional mutators roll back entirely and return exactly one of these
// (or a raw storage error, which maps to 500).
package apperr

import "fmt"

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Validation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NotFound(format string, args ...any) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func Conflict(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

type InsufficientInventoryError struct {
	Message string
}

func (e *InsufficientInventoryError) Error() string { return e.Message }

func InsufficientInventory(format string, args ...any) error {
	return &InsufficientInventoryError{Message: fmt.Sprintf(format, args...)}
}
