// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeUnknownCurrency indicates a currency code absent from the rate table
	TypeUnknownCurrency Type = "UNKNOWN_CURRENCY"

	// TypeInvalidRate indicates a non-positive exchange rate
	TypeInvalidRate Type = "INVALID_RATE"

	// TypeInvalidCapacity indicates a zero or negative vehicle capacity
	TypeInvalidCapacity Type = "INVALID_CAPACITY"

	// TypeInactiveRule indicates pricing was attempted with a disabled markup rule
	TypeInactiveRule Type = "INACTIVE_RULE"

	// TypeInput indicates an input validation error
	TypeInput Type = "INPUT_ERROR"

	// TypeParsing indicates a parsing error
	TypeParsing Type = "PARSING_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// UnknownCurrency creates an unknown currency error.
// The message names the missing code so an admin can fix the rate table
// instead of seeing a generic computation failure.
func UnknownCurrency(code string) *Error {
	return Newf(TypeUnknownCurrency, "currency %q has no entry in the rate table; add a rate for it before pricing", code).
		WithContext("currency", code)
}

// InvalidRate creates an invalid rate error
func InvalidRate(code string, rate string) *Error {
	return Newf(TypeInvalidRate, "currency %q has non-positive rate %s; rates must be greater than zero", code, rate).
		WithContext("currency", code).
		WithContext("rate", rate)
}

// InvalidCapacity creates an invalid vehicle capacity error
func InvalidCapacity(capacity int) *Error {
	return Newf(TypeInvalidCapacity, "vehicle capacity must be positive, got %d", capacity).
		WithContext("capacity", capacity)
}

// InactiveRule creates an inactive markup rule error
func InactiveRule() *Error {
	return New(TypeInactiveRule, "markup rule is inactive; refusing to price with a disabled rule")
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// Inputf creates a formatted input error
func Inputf(format string, args ...interface{}) *Error {
	return Newf(TypeInput, format, args...)
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// Config creates a configuration error
func Config(message string) *Error {
	return New(TypeConfig, message)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
