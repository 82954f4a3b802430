package domain

import "fmt"

// ValidationError marks a caller input problem detected by a local check.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// NotFoundError marks a referenced flight, booking or PNR that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) error {
	return &NotFoundError{Message: message}
}

// UnavailableError marks a failed remote inventory call or an open circuit.
type UnavailableError struct {
	Message string
	Cause   error
}

func (e *UnavailableError) Error() string {
	return e.Message
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

func NewUnavailableError(message string, cause error) error {
	return &UnavailableError{Message: message, Cause: cause}
}

// EnumError marks a JSON value that does not decode into one of the domain
// enums. The HTTP layer maps the enum name to an allowed-values message.
type EnumError struct {
	Enum  string
	Value string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("invalid %s value %q", e.Enum, e.Value)
}
