// SPDX-License-Identifier: MIT

package cluster

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/mgraph/core"
	"github.com/katalvlaran/mgraph/matrix"
)

// Import builds a fresh cluster from an adjacency grid. The registry is
// touched only after the whole grid has been accepted.
//
// Errors:
//   - ErrDuplicateID: name is taken.
//   - ErrMalformedInput: bad name, or any matrix.ImportAdjacency failure.
func (r *Registry) Import(name string, value core.Value, grid [][]string, opts ...matrix.Option) (*Cluster, matrix.ImportSummary, error) {
	if err := r.checkName("Import", name); err != nil {
		return nil, matrix.ImportSummary{}, err
	}
	g, sum, err := matrix.ImportAdjacency(name, grid, opts...)
	if err != nil {
		return nil, sum, errors.Wrapf(err, "import cluster %s", name)
	}

	return r.register(name, value, g), sum, nil
}

// ImportFile reads a CSV adjacency matrix from path and imports it as name.
func (r *Registry) ImportFile(name string, value core.Value, path string, opts ...matrix.Option) (*Cluster, matrix.ImportSummary, error) {
	if err := r.checkName("Import", name); err != nil {
		return nil, matrix.ImportSummary{}, err
	}
	grid, err := matrix.ReadGridFile(path)
	if err != nil {
		return nil, matrix.ImportSummary{}, err
	}

	return r.Import(name, value, grid, opts...)
}
