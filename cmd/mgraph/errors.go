// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
)

// Exit codes.
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// cliError carries the exit code for err.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }

func (e *cliError) Unwrap() error { return e.err }

// usageErr marks err as a usage or configuration failure.
func usageErr(err error) error {
	if err == nil {
		return nil
	}

	return &cliError{code: ExitUsage, err: err}
}

// exitCode maps a command error to the process status. Cancellation by
// signal is a clean exit.
func exitCode(err error) int {
	if err == nil || errors.Is(err, context.Canceled) {
		return ExitSuccess
	}
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}

	return ExitError
}
