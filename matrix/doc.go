// SPDX-License-Identifier: MIT

// Package matrix converts CSV adjacency matrices into core graphs.
//
// The package provides:
//
//   - ReadGrid / ReadGridFile / WriteGrid: CSV <-> [][]string.
//   - ImportAdjacency: validated grid -> new *core.Graph plus an ImportSummary.
//
// A grid is accepted only as a whole: header ids must be non-empty, unique
// and identical across the header row and the header column; every row must
// be as wide as the header; every non-empty cell must be a number. Empty and
// zero cells mean "no edge". Cell text is kept verbatim (trimmed) as the edge
// value, so "2.50" stays "2.50".
//
// Example:
//
//	grid, err := matrix.ReadGridFile("city.csv")
//	g, sum, err := matrix.ImportAdjacency("city", grid)
//	fmt.Println(sum) // imported 3 node(s) and 4 edge(s) into city
package matrix
