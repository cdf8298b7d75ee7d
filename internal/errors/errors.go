package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode identifies a class of failure.
type ErrorCode string

const (
	ErrInvalidDate    ErrorCode = "INVALID_DATE"    // usage
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // usage
	ErrConfigRead     ErrorCode = "CONFIG_READ"     // non-fatal
	ErrConfigWrite    ErrorCode = "CONFIG_WRITE"    // non-fatal
	ErrInternal       ErrorCode = "INTERNAL"
)

// Exit codes returned by the CLI.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// PeriodError is a structured error with a code, exit code, and details.
type PeriodError struct {
	Code     ErrorCode
	ExitCode int
	Message  string
	Details  map[string]any
	Err      error
}

// Error implements the error interface.
func (e *PeriodError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *PeriodError) Unwrap() error {
	return e.Err
}

// NewInvalidDate creates a usage error for a --date value that is not YYYY-MM-DD.
func NewInvalidDate(value string) *PeriodError {
	return &PeriodError{
		Code:     ErrInvalidDate,
		ExitCode: ExitUsage,
		Message:  fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", value),
		Details:  map[string]any{"value": value},
	}
}

// NewInvalidRequest creates a usage error for invalid arguments.
func NewInvalidRequest(msg string) *PeriodError {
	return &PeriodError{
		Code:     ErrInvalidRequest,
		ExitCode: ExitUsage,
		Message:  msg,
	}
}

// NewConfigRead creates an error for a configuration file that exists but
// could not be read or parsed.
func NewConfigRead(path string, err error) *PeriodError {
	return &PeriodError{
		Code:     ErrConfigRead,
		ExitCode: ExitFailure,
		Message:  fmt.Sprintf("failed to read config %s: %v", path, err),
		Details:  map[string]any{"path": path},
		Err:      err,
	}
}

// NewConfigWrite creates an error for a configuration file that could not be written.
func NewConfigWrite(path string, err error) *PeriodError {
	return &PeriodError{
		Code:     ErrConfigWrite,
		ExitCode: ExitFailure,
		Message:  fmt.Sprintf("failed to write config %s: %v", path, err),
		Details:  map[string]any{"path": path},
		Err:      err,
	}
}

// NewInternal creates an error for unexpected internal failures.
func NewInternal(err error) *PeriodError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &PeriodError{
		Code:     ErrInternal,
		ExitCode: ExitFailure,
		Message:  msg,
		Err:      err,
	}
}

// Is checks if err is, or wraps, a PeriodError with the given code.
func Is(err error, code ErrorCode) bool {
	var pErr *PeriodError
	if stderrors.As(err, &pErr) {
		return pErr.Code == code
	}
	return false
}
