// SPDX-License-Identifier: MIT

package shell

import (
	"errors"
	"fmt"
)

var (
	// ErrExit is returned by Exec for exit, quit and q.
	ErrExit = errors.New("shell: exit requested")

	// ErrUsage marks a command line that does not match the grammar.
	ErrUsage = errors.New("usage")

	// ErrUnknownCommand marks an unknown category or sub-command.
	ErrUnknownCommand = fmt.Errorf("unknown command: %w", ErrUsage)
)

// usageError returns "usage: <synopsis>".
func usageError(synopsis string) error {
	return fmt.Errorf("%w: %s", ErrUsage, synopsis)
}

// unknownError names the offending word.
func unknownError(word string) error {
	return fmt.Errorf("%w %q", ErrUnknownCommand, word)
}
