package output

import (
	"context"
	"errors"
)

// Process exit codes.
const (
	ExitSuccess = 0
	// ExitUserError covers bad invocations: missing --path or --extensions,
	// a path that is not a directory, an unknown --format, --sort or --color.
	ExitUserError = 1
	// ExitSystemError covers everything git and the host can get wrong:
	// git missing or failing, undecodable output, interruption, I/O errors.
	ExitSystemError = 2
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ExitError) Error() string { return e.Message }

func (e *ExitError) Unwrap() error { return e.Cause }

// NewUserError returns an ExitUserError.
func NewUserError(message string) *ExitError {
	return &ExitError{Code: ExitUserError, Message: message}
}

// NewSystemError returns an ExitSystemError with no underlying cause.
func NewSystemError(message string) *ExitError {
	return &ExitError{Code: ExitSystemError, Message: message}
}

// NewSystemErrorWithCause returns an ExitSystemError wrapping cause.
func NewSystemErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{Code: ExitSystemError, Message: message, Cause: cause}
}

// NewInterruptedError reports that the activity described by doing stopped
// because its context ended. The context error stays reachable through
// errors.Is.
func NewInterruptedError(doing string, ctxErr error) *ExitError {
	return NewSystemErrorWithCause("interrupted while "+doing, ctxErr)
}

// GetExitCode maps err to an exit code. ExitError carries its own code, a
// bare context cancellation or deadline is a system error and anything else
// (cobra flag parsing, for one) is a user error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ExitSystemError
	}
	return ExitUserError
}
