package cli

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/sshez/internal/core/domain/outcome"
	"github.com/AntonioJCosta/sshez/internal/handlers/ui"
)

// Exit codes, one per outcome.Kind.
const (
	ExitSuccess    = 0
	ExitNotFound   = 1
	ExitPermission = 2
	ExitInvalid    = 3
)

const invalidInputMsg = "Invalid input. Use -h for help"

// ExitError wraps an error with the exit code the process should return.
// The message has already been reported when an ExitError is returned.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int
}

// NewExitError creates an ExitError with the given underlying error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps a result kind onto its process exit code.
func ExitCode(kind outcome.Kind) int {
	switch kind {
	case outcome.Success:
		return ExitSuccess
	case outcome.NotFound:
		return ExitNotFound
	case outcome.PermissionDenied:
		return ExitPermission
	default:
		return ExitInvalid
	}
}

// Run executes root and returns the exit code. Errors cobra raises itself
// (unknown commands, wrong argument counts, bad flags) are reported to errOut
// as invalid input.
func Run(root *cobra.Command, errOut io.Writer) int {
	err := root.Execute()
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	fmt.Fprintln(errOut, ui.WarningColor(err.Error()))
	fmt.Fprintln(errOut, ui.ErrorColor(invalidInputMsg))
	return ExitInvalid
}
