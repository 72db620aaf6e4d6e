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

	// ErrUnauthenticated is returned when an operation runs without a session.
	ErrUnauthenticated = ErrUnauthorized

	ErrEmptyContent = fmt.Errorf("%w: content is empty", ErrValidation)
	ErrFutureDate   = fmt.Errorf("%w: target date is in the future", ErrValidation)

	// ErrAnalysis means the feedback function could not be reached or failed.
	ErrAnalysis = errors.New("could not analyze")
	// ErrAnalysisRejected means the feedback function answered success=false.
	ErrAnalysisRejected = fmt.Errorf("%w: rejected", ErrAnalysis)

	ErrConfirmationRequired = errors.New("confirmation required")

	// ErrRateLimited is reported by clients when the server answers 429.
	ErrRateLimited = errors.New("too many requests")
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
