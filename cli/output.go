// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
)

// Process exit codes of beamcov.
//
// A run either succeeds, fails on its data, or never gets that far because
// the invocation itself is wrong. Data failures are malformed particle or
// matrix files, a volume with fewer than two particles, and an emittance
// report requested from a cylindrical matrix. Invocation failures are bad
// flags or arguments, an unknown basis, format or storage order, and an
// unreadable or invalid configuration.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // the input data was rejected
	ExitCommandError = 2 // the invocation was rejected before any data was read
)

// ExitError carries the exit code a command chose for its failure together
// with a short description of the step that failed.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *ExitError) Unwrap() error { return e.Err }

// WrapExitError tags err, which may be nil, with code and the failing step.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// ExitCode maps the error returned by the root command to a process exit
// code. Every command tags its own failures with an ExitError, so any other
// error was raised by cobra while parsing the command line and counts as an
// invocation failure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}
