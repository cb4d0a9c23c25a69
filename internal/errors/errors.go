// Package errors provides the typed error taxonomy for the analysis core.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInput indicates a malformed or missing input value
	TypeInput Type = "INPUT_ERROR"

	// TypeGeometry indicates non-positive or inconsistent dowel dimensions
	TypeGeometry Type = "INVALID_GEOMETRY"

	// TypeDegenerate indicates a derived area or length that computed to
	// zero or negative, making the stress model undefined
	TypeDegenerate Type = "GEOMETRY_DEGENERATE"

	// TypeFactor indicates the modification pipeline produced a
	// non-physical multiplier
	TypeFactor Type = "INVALID_FACTOR_COMBINATION"

	// TypeValidation indicates analysis was requested despite ERROR-level
	// findings in the validation report
	TypeValidation Type = "VALIDATION_ERROR"

	// TypeMaterial indicates material properties outside physical bounds
	TypeMaterial Type = "INVALID_MATERIAL"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeStorage indicates a persistence error
	TypeStorage Type = "STORAGE_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with the offending field and value
// attached, so callers can report what was wrong rather than just that
// something was.
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

// WithField attaches the offending field name and value
func (e *Error) WithField(field string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context["field"] = field
	e.Context["value"] = value
	return e
}

// WithContext adds arbitrary context to the error
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

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// Geometry creates an invalid-geometry error
func Geometry(format string, args ...interface{}) *Error {
	return Newf(TypeGeometry, format, args...)
}

// Degenerate creates a degenerate-geometry error
func Degenerate(format string, args ...interface{}) *Error {
	return Newf(TypeDegenerate, format, args...)
}

// Factor creates an invalid-factor-combination error
func Factor(format string, args ...interface{}) *Error {
	return Newf(TypeFactor, format, args...)
}

// Validation creates a validation-precondition error
func Validation(message string) *Error {
	return New(TypeValidation, message)
}

// Material creates an invalid-material error
func Material(format string, args ...interface{}) *Error {
	return Newf(TypeMaterial, format, args...)
}

// Storage creates a persistence error
func Storage(message string, cause error) *Error {
	return Wrap(TypeStorage, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
