// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates no entity matched the request.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates required input was missing or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrUnavailable indicates a required dependency is unavailable.
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError provides context for not found errors.
// Criteria describes the lookup that came back empty, e.g. `feeling "sad"`.
type NotFoundError struct {
	Entity   string
	Criteria string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Criteria != "" {
		return fmt.Sprintf("no %s found for %s", e.Entity, e.Criteria)
	}

	return fmt.Sprintf("no %s found", e.Entity)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, criteria string) error {
	return &NotFoundError{Entity: entity, Criteria: criteria}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// UnavailableError reports that a dependency could not serve the request
// right now, such as a store that stayed locked past its busy timeout.
// It matches both ErrUnavailable and its cause under errors.Is.
type UnavailableError struct {
	Service string
	Err     error
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %q unavailable: %v", e.Service, e.Err)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap exposes the sentinel and the underlying cause.
func (e *UnavailableError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUnavailable}
	}

	return []error{ErrUnavailable, e.Err}
}

// NewUnavailableError wraps cause as an unavailable error for service.
func NewUnavailableError(service string, cause error) error {
	return &UnavailableError{Service: service, Err: cause}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
