package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ActiveTimerError reports that the user already has a running timer.
// Entry is the conflicting active entry, surfaced so the caller can offer
// "clock out first".
type ActiveTimerError struct {
	Entry *TimeEntry
}

func (e *ActiveTimerError) Error() string {
	return fmt.Sprintf("active timer already running (entry %s)", e.Entry.ID)
}

func (e *ActiveTimerError) Unwrap() error { return ErrConflict }

// OverlapError reports that a candidate interval overlaps an existing entry.
// Entry is one conflicting entry; callers only need "conflict exists" plus
// one example.
type OverlapError struct {
	Entry *TimeEntry
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("time entry overlaps with existing entry %s", e.Entry.ID)
}

func (e *OverlapError) Unwrap() error { return ErrConflict }
