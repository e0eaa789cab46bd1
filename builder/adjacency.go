// SPDX-License-Identifier: MIT
// Package: mgraph/builder
//
// adjacency.go - random adjacency grids in the CSV layout read by
// matrix.ImportAdjacency.
//
// Layout of RandomAdjacency(n):
//
//	    , id0 , id1 , … , id(n-1)
//	id0 ,  0  , w01 , …
//	id1 , w10 ,  0  , …
//
// The diagonal is always zero (no self-loops).

package builder

import (
	"strconv"

	"github.com/katalvlaran/mgraph/core"
	"github.com/katalvlaran/mgraph/matrix"
)

// MethodRandomAdjacency is the canonical name used in error prefixes.
const MethodRandomAdjacency = "RandomAdjacency"

// RandomAdjacency draws a size×size adjacency matrix and returns it as a
// (size+1)×(size+1) grid with header row and column.
//
// Cells are 0/1 by default, or integers in [min, max) with WithWeights.
// WithUndirected averages each cell with its mirror (floor division), so
// an unweighted undirected cell is 1 only when both draws were 1.
//
// Errors:
//   - ErrTooFewVertices: size < 1.
//   - ErrInvalidRange / ErrOptionViolation: from options.
//   - ErrNeedRandSource: neither WithSeed nor WithRand was given.
//
// Complexity: O(size²).
func RandomAdjacency(size int, opts ...BuilderOption) ([][]string, error) {
	if size < 1 {
		return nil, builderErrorf(MethodRandomAdjacency, "size=%d: %w", size, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return nil, builderErrorf(MethodRandomAdjacency, "%w", cfg.err)
	}
	if cfg.rng == nil {
		return nil, builderErrorf(MethodRandomAdjacency, "%w", ErrNeedRandSource)
	}

	m := make([][]int, size)
	for i := range m {
		m[i] = make([]int, size)
		for j := range m[i] {
			m[i][j] = cfg.draw()
		}
		m[i][i] = 0
	}
	if cfg.undirected {
		for i := 0; i < size; i++ {
			for j := i + 1; j < size; j++ {
				avg := floorDiv(m[i][j]+m[j][i], 2)
				m[i][j], m[j][i] = avg, avg
			}
		}
	}

	ids := make([]string, size)
	for i := range ids {
		ids[i] = cfg.idFn(i)
	}
	grid := make([][]string, size+1)
	grid[0] = append([]string{""}, ids...)
	for i := 0; i < size; i++ {
		row := make([]string, size+1)
		row[0] = ids[i]
		for j := 0; j < size; j++ {
			row[j+1] = strconv.Itoa(m[i][j])
		}
		grid[i+1] = row
	}

	return grid, nil
}

// RandomGraph is RandomAdjacency followed by matrix.ImportAdjacency.
func RandomGraph(scope string, size int, opts ...BuilderOption) (*core.Graph, error) {
	grid, err := RandomAdjacency(size, opts...)
	if err != nil {
		return nil, err
	}
	g, _, err := matrix.ImportAdjacency(scope, grid)

	return g, err
}

// draw returns one off-diagonal cell value.
func (c *builderConfig) draw() int {
	if !c.weighted {
		return c.rng.Intn(2)
	}

	return c.minWeight + c.rng.Intn(c.maxWeight-c.minWeight)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}
