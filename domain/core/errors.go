package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound         = errors.New("resource not found")
	ErrSessionNotFound  = fmt.Errorf("%w: questionnaire session", ErrNotFound)
	ErrAnalysisNotFound = fmt.Errorf("%w: analysis", ErrNotFound)
	ErrQuestionNotFound = fmt.Errorf("%w: question", ErrNotFound)
	ErrCatalogNotFound  = fmt.Errorf("%w: question catalog", ErrNotFound)

	// Validation errors
	ErrValidation           = errors.New("validation failed")
	ErrUnknownInsuranceType = fmt.Errorf("%w: unknown insurance type", ErrValidation)
	ErrQuestionMismatch     = fmt.Errorf("%w: question id does not match current question", ErrValidation)
	ErrMissingAnswer        = fmt.Errorf("%w: missing answer", ErrValidation)

	// State errors
	ErrInvalidState       = errors.New("operation not allowed in current state")
	ErrSessionNotActive   = fmt.Errorf("%w: session is not in progress", ErrInvalidState)
	ErrSessionIncomplete  = fmt.Errorf("%w: required questions unanswered", ErrInvalidState)
	ErrAlreadyAtFirstStep = fmt.Errorf("%w: already at the first question", ErrInvalidState)

	// Ownership errors
	ErrForbidden = errors.New("caller does not own this resource")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewValidationError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrValidation, field, reason)
}

func NewForbiddenError(resource string, id string) error {
	return fmt.Errorf("%w: %s %s", ErrForbidden, resource, id)
}

func NewInvalidStateError(op string, state string) error {
	return fmt.Errorf("%w: cannot %s while %s", ErrInvalidState, op, state)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsInvalidStateError(err error) bool {
	return errors.Is(err, ErrInvalidState)
}

func IsForbiddenError(err error) bool {
	return errors.Is(err, ErrForbidden)
}
