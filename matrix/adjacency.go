// SPDX-License-Identifier: MIT
// File: adjacency.go
// Role: CSV adjacency grid -> core.Graph.
//
// Grid layout (cells already split; see ReadGrid):
//
//	    , A , B , C
//	  A ,   , 5 , 2
//	  B , 5 ,   ,
//	  C , 2 ,   ,
//
// Row 0 after the blank corner and column 0 after the corner list the same
// node ids in the same order. Cell (r, c) holds the value of an edge from
// the r-th to the c-th node; "" and numeric zero mean no edge.
//
// Determinism:
//   - Nodes are created in header order, edges in row-major cell order.
//
// Atomicity:
//   - The whole grid is validated before the graph is built.

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/mgraph/core"
)

// ImportSummary reports what ImportAdjacency created.
type ImportSummary struct {
	// Scope is the scope of the produced graph.
	Scope string

	// Nodes is the number of nodes created (the header size).
	Nodes int

	// Edges is the number of edges created, loops included.
	Edges int

	// Loops is the number of diagonal cells that produced a self-loop.
	Loops int

	// Skipped is the number of empty or zero cells.
	Skipped int
}

// String renders the summary as a one-line report.
func (s ImportSummary) String() string {
	return fmt.Sprintf("imported %d node(s) and %d edge(s) into %s", s.Nodes, s.Edges, s.Scope)
}

// cellEdge is a validated non-empty cell.
type cellEdge struct {
	from, to core.ID
	value    core.Value
}

// ImportAdjacency builds a new graph named scope from an adjacency grid.
//
// Each header id becomes a node (value = the id unless WithNodeValue says
// otherwise). Each non-empty, non-zero cell (r, c) becomes one edge with the
// trimmed cell text as value and an id from core.Graph.GenerateEdgeID. A
// symmetric grid therefore yields two parallel edges per connected pair, and
// diagonal cells yield self-loops.
//
// Errors (all match core.ErrMalformedInput):
//   - ErrEmptyMatrix: no rows, or a header row without node ids.
//   - ErrBadHeader / ErrDuplicateHeader: empty or repeated header id.
//   - ErrHeaderMismatch: row count or row ids differ from the header row.
//   - ErrRaggedRow: a row is not as wide as the header.
//   - ErrBadCell: a non-empty cell does not parse as a number.
//
// Complexity: O(N²) for an N-node grid.
func ImportAdjacency(scope string, grid [][]string, opts ...Option) (*core.Graph, ImportSummary, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	summary := ImportSummary{Scope: scope}

	header, err := parseHeader(scope, grid)
	if err != nil {
		return nil, summary, err
	}

	var edges []cellEdge
	for r, row := range grid[1:] {
		if len(row) != len(grid[0]) {
			return nil, summary, gridError(ErrRaggedRow, scope, fmt.Sprintf("row %d", r+1),
				fmt.Sprintf("has %d cells, want %d", len(row), len(grid[0])))
		}
		if id := core.ID(strings.TrimSpace(row[0])); id != header[r] {
			return nil, summary, gridError(ErrHeaderMismatch, scope, fmt.Sprintf("row %d", r+1),
				fmt.Sprintf("row id %q, want %q", id, header[r]))
		}
		for c, raw := range row[1:] {
			cell := strings.TrimSpace(raw)
			if cell == "" {
				summary.Skipped++
				continue
			}
			w, err := core.Value(cell).Float()
			if err != nil || math.IsNaN(w) {
				return nil, summary, gridError(ErrBadCell, scope, fmt.Sprintf("cell (%s,%s)", header[r], header[c]),
					fmt.Sprintf("%q is not a number", cell))
			}
			if w == 0 && o.skipZero {
				summary.Skipped++
				continue
			}
			edges = append(edges, cellEdge{from: header[r], to: header[c], value: core.Value(cell)})
		}
	}

	g := core.NewGraph(core.WithScope(scope))
	for _, id := range header {
		if err := g.AddNode(id, o.nodeValue(id)); err != nil {
			return nil, summary, err
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e.from, e.to, g.GenerateEdgeID(e.from, e.to), e.value); err != nil {
			return nil, summary, err
		}
		if e.from == e.to {
			summary.Loops++
		}
	}
	summary.Nodes = g.NodeCount()
	summary.Edges = g.EdgeCount()

	return g, summary, nil
}

// parseHeader validates the header row and the row count.
func parseHeader(scope string, grid [][]string) ([]core.ID, error) {
	if len(grid) == 0 || len(grid[0]) < 2 {
		return nil, gridError(ErrEmptyMatrix, scope, "", "")
	}

	header := make([]core.ID, 0, len(grid[0])-1)
	seen := make(map[core.ID]struct{}, len(grid[0])-1)
	for c, raw := range grid[0][1:] {
		id := core.ID(strings.TrimSpace(raw))
		if id == "" {
			return nil, gridError(ErrBadHeader, scope, fmt.Sprintf("column %d", c+1), "empty node id")
		}
		if _, dup := seen[id]; dup {
			return nil, gridError(ErrDuplicateHeader, scope, fmt.Sprintf("column %d", c+1), fmt.Sprintf("%q repeated", id))
		}
		seen[id] = struct{}{}
		header = append(header, id)
	}
	if rows := len(grid) - 1; rows != len(header) {
		return nil, gridError(ErrHeaderMismatch, scope, "", fmt.Sprintf("%d rows for %d columns", rows, len(header)))
	}

	return header, nil
}
