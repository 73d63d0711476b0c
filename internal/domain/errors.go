package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// NotFoundError reports that no live entity of Resource has the requested id.
// It matches ErrNotFound with errors.Is.
type NotFoundError struct {
	Resource string
}

// NewNotFoundError creates a NotFoundError for the given resource name,
// e.g. "Anime".
func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ValidationError carries every constraint violation found on a request.
// It matches ErrInvalidInput with errors.Is.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
