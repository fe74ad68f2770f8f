package errors

import (
	"fmt"

	"assurscore/domain/core"
)

// AppError represents a structured application error carried to the
// transport boundary. Code is stable and machine-readable; Message is safe
// to show a caller; Cause never leaves the process.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// GetCode returns the error code if it's an AppError, otherwise "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeNotFound        = "NOT_FOUND"
	CodeForbidden       = "FORBIDDEN"
	CodeValidationError = "VALIDATION_ERROR"
	CodeInvalidState    = "INVALID_STATE"
	CodeConfigInvalid   = "CONFIG_INVALID"
	CodeDatabaseError   = "DATABASE_ERROR"
	CodeInternalError   = "INTERNAL_ERROR"
)

// FromDomain maps a domain error onto the coded taxonomy. The original
// error stays attached as the cause for server-side logging; only the code
// and a sanitized message reach the caller.
func FromDomain(err error) *AppError {
	switch {
	case err == nil:
		return nil
	case core.IsNotFoundError(err):
		return &AppError{Code: CodeNotFound, Message: err.Error(), Cause: err}
	case core.IsForbiddenError(err):
		return &AppError{Code: CodeForbidden, Message: "access denied", Cause: err}
	case core.IsValidationError(err):
		return &AppError{Code: CodeValidationError, Message: err.Error(), Cause: err}
	case core.IsInvalidStateError(err):
		return &AppError{Code: CodeInvalidState, Message: err.Error(), Cause: err}
	default:
		return &AppError{Code: CodeInternalError, Message: "internal error", Cause: err}
	}
}

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func DatabaseError(message string) *AppError {
	return New(CodeDatabaseError, message)
}

func ValidationError(message string) *AppError {
	return New(CodeValidationError, message)
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}
