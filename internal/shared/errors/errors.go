package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeInvalidOperation indicates a command issued in a state that cannot accept it
	ErrorTypeInvalidOperation ErrorType = "invalid_operation"
	// ErrorTypeNotFound indicates a named resource (preset, body) was not found
	ErrorTypeNotFound ErrorType = "not_found"
	// ErrorTypeValidation indicates malformed input data
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeInternal indicates an unexpected failure
	ErrorTypeInternal ErrorType = "internal"
)

// AppError is the base error type for simulation errors
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// InvalidOperation creates an invalid-operation error
func InvalidOperation(message string) error {
	return &AppError{
		Type:    ErrorTypeInvalidOperation,
		Message: message,
	}
}

// InvalidOperationf creates an invalid-operation error with formatting
func InvalidOperationf(format string, args ...interface{}) error {
	return &AppError{
		Type:    ErrorTypeInvalidOperation,
		Message: fmt.Sprintf(format, args...),
	}
}

// NotFoundf creates a not found error with formatting
func NotFoundf(format string, args ...interface{}) error {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

// Validationf creates a validation error with formatting
func Validationf(format string, args ...interface{}) error {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapValidation wraps an error as a validation error
func WrapValidation(message string, err error) error {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Err:     err,
	}
}

// WrapInternal wraps an error as an internal error
func WrapInternal(message string, err error) error {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// GetType returns the error type of an error
func GetType(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// Is reports whether err carries the given error type
func Is(err error, t ErrorType) bool {
	if err == nil {
		return false
	}
	return GetType(err) == t
}
