package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// InvalidInputError signals a scenario precondition violation.
// It is the only error the voyage calculator returns; all other degenerate
// inputs produce well-defined zero-valued results instead.
type InvalidInputError struct {
	*DomainError
}

func NewInvalidInputError(message string) *InvalidInputError {
	return &InvalidInputError{DomainError: &DomainError{Message: message}}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError signals a catalog or repository lookup miss

type NotFoundError struct {
	*DomainError
	Kind string
	Key  string
}

func NewNotFoundError(kind, key string) *NotFoundError {
	return &NotFoundError{
		DomainError: &DomainError{Message: fmt.Sprintf("%s not found: %s", kind, key)},
		Kind:        kind,
		Key:         key,
	}
}
