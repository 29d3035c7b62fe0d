package catalog

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrEmptyName         = errors.New("operator has empty name")
	ErrDuplicateOperator = errors.New("duplicate operator name")
	ErrMalformedArgument = errors.New("malformed operator argument")
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// ValidationError provides detailed information about catalog contract violations.
type ValidationError struct {
	Type     string // Type of error (e.g., "duplicate_operator", "malformed_argument")
	Operator string // Operator name involved, if any
	Details  string // Additional details
	Err      error  // Sentinel the error matches under errors.Is
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Operator != "" {
		return fmt.Sprintf("%s: operator %q: %s", e.Type, e.Operator, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Details)
}

// Unwrap returns the sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// MalformedArgument reports an argument whose shape violates the catalog contract.
func MalformedArgument(op string, format string, args ...any) error {
	return &ValidationError{
		Type:     "malformed_argument",
		Operator: op,
		Details:  fmt.Sprintf(format, args...),
		Err:      ErrMalformedArgument,
	}
}
