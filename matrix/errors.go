// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set for adjacency-grid ingestion.
// Every sentinel wraps core.ErrMalformedInput, so callers can match either
// the precise cause or the general kind with errors.Is.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/mgraph/core"
)

var (
	// ErrEmptyMatrix is returned for a grid without at least one node column.
	ErrEmptyMatrix = fmt.Errorf("empty matrix: %w", core.ErrMalformedInput)

	// ErrBadHeader is returned for an empty node id in the header row.
	ErrBadHeader = fmt.Errorf("bad header: %w", core.ErrMalformedInput)

	// ErrDuplicateHeader is returned when the header row names a node twice.
	ErrDuplicateHeader = fmt.Errorf("duplicate header: %w", core.ErrMalformedInput)

	// ErrHeaderMismatch is returned when the header column does not list the
	// header row's ids in the same order.
	ErrHeaderMismatch = fmt.Errorf("header mismatch: %w", core.ErrMalformedInput)

	// ErrRaggedRow is returned when a row has a different width than the header.
	ErrRaggedRow = fmt.Errorf("ragged row: %w", core.ErrMalformedInput)

	// ErrBadCell is returned for a non-empty cell that is not a number.
	ErrBadCell = fmt.Errorf("bad cell: %w", core.ErrMalformedInput)

	// ErrBadCSV is returned when the input is not valid CSV.
	ErrBadCSV = fmt.Errorf("bad csv: %w", core.ErrMalformedInput)
)

// gridError builds the structured error for a grid position.
func gridError(kind error, scope, where, detail string) *core.Error {
	return &core.Error{
		Op:     "ImportAdjacency",
		Kind:   kind,
		Entity: core.EntityMatrix,
		ID:     where,
		Scope:  scope,
		Detail: detail,
	}
}
