package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrValidation = errors.New("validation error")
	ErrNetwork    = errors.New("network error")
	ErrResolution = errors.New("resolution error")
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

// NetworkError is a transport-level failure (DNS, refused connection, timeout)
// while requesting URL. HTTP error statuses are never reported as NetworkError.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network: %s: %v", e.URL, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *NetworkError) Unwrap() []error { return []error{ErrNetwork, e.Err} }

// ResolutionError is returned when remote lookup failed and no local
// fallback was available for Word.
type ResolutionError struct {
	Word string
	Err  error
}

func (e *ResolutionError) Error() string {
	if e.Connectivity() {
		return "could not fetch synonyms: could not reach the synonym service, check your internet connection"
	}
	if e.Err == nil {
		return "could not fetch synonyms: unknown error"
	}
	return "could not fetch synonyms: " + e.Err.Error()
}

func (e *ResolutionError) Unwrap() []error { return []error{ErrResolution, e.Err} }

// Connectivity reports whether the failure was caused by the network.
func (e *ResolutionError) Connectivity() bool {
	return errors.Is(e.Err, ErrNetwork)
}
