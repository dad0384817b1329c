package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the selfcheck ran out of time.
	ExitErrorMismatch = 3   // Indicates a selfcheck property did not hold.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ContractError is the panic value raised when a caller breaks the
// precondition of an arithmetic primitive. It marks a bug in the caller and
// is not meant to be recovered and turned into a result.
type ContractError struct {
	// Op is the fully qualified name of the primitive whose contract was broken.
	Op string
	// Detail describes the violated precondition.
	Detail string
}

func (e ContractError) Error() string {
	return fmt.Sprintf("%s: contract violation: %s", e.Op, e.Detail)
}

// CheckFailureError reports an arithmetic property that did not hold during a
// selfcheck run, together with the operands that broke it.
type CheckFailureError struct {
	// Property names the property that failed (e.g. "roundtrip").
	Property string
	// Case is the index of the generated case.
	Case int
	// Operands are the rendered inputs of the failing case.
	Operands []string
	// Want and Got are the rendered expected and actual results.
	Want, Got string
}

func (e CheckFailureError) Error() string {
	return fmt.Sprintf("property %q failed on case %d %v: want %s, got %s",
		e.Property, e.Case, e.Operands, e.Want, e.Got)
}

// TimeoutError represents a run that exceeded its time limit.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// It returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCode maps an error returned by a run to the process exit status.
func ExitCode(err error) int {
	var (
		cfgErr   ConfigError
		valErr   ValidationError
		checkErr CheckFailureError
		toErr    TimeoutError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &cfgErr), errors.As(err, &valErr):
		return ExitErrorConfig
	case errors.As(err, &checkErr):
		return ExitErrorMismatch
	case errors.As(err, &toErr), errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	default:
		return ExitErrorGeneric
	}
}
