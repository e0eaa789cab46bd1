// SPDX-License-Identifier: MIT
// File: grid.go
// Role: CSV <-> [][]string for adjacency grids.

package matrix

import (
	"encoding/csv"
	stderrors "errors"
	"io"
	"os"

	"github.com/pkg/errors"
)

// ReadGrid reads every CSV record from r. Rows of differing width are
// returned as-is so ImportAdjacency can report them; blank lines are skipped.
//
// Errors: ErrBadCSV for syntax errors, wrapped I/O errors otherwise.
func ReadGrid(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	grid, err := cr.ReadAll()
	if err != nil {
		var perr *csv.ParseError
		if stderrors.As(err, &perr) {
			return nil, errors.Wrapf(ErrBadCSV, "line %d: %v", perr.Line, perr.Err)
		}
		return nil, errors.Wrap(err, "read grid")
	}

	return grid, nil
}

// ReadGridFile opens path and reads it with ReadGrid.
func ReadGridFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	grid, err := ReadGrid(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	return grid, nil
}

// WriteGrid writes grid to w as CSV.
func WriteGrid(w io.Writer, grid [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(grid); err != nil {
		return errors.Wrap(err, "write grid")
	}

	return nil
}
