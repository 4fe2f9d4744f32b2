package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is the kind behind every "no such record" failure.
	ErrNotFound = errors.New("requested resource not found")

	ErrMatchNotFound  = fmt.Errorf("match %w", ErrNotFound)
	ErrPlayerNotFound = fmt.Errorf("player %w", ErrNotFound)

	// ErrValidationFailed is the kind behind every *ValidationError.
	ErrValidationFailed = errors.New("validation failed")

	// ErrPersistence wraps failures of the underlying store. It is always
	// returned to the caller, never swallowed.
	ErrPersistence = errors.New("persistence failure")

	ErrPhotoStorageUnavailable = errors.New("photo storage is not configured")
)

// ValidationError lists the offending input fields with a message for each.
type ValidationError struct {
	Fields map[string]string
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) add(field, message string) {
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

// orNil returns nil when nothing was added, so callers can return it directly.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

func persistenceError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}
