// SPDX-License-Identifier: MIT

// Package dfs enumerates all simple paths between two nodes of an
// undirected multi-graph.
//
// A simple path repeats no node. Enumeration is a recursive depth-first
// search that keeps one visited flag per node: set on entry, cleared on
// backtrack. Neighbours are tried in core.Graph.Neighbors order, which makes
// the output order reproducible.
//
// Limits are opt-in. Without them the search is exhaustive; its cost grows
// with the number of simple paths, which is exponential on dense graphs:
//
//	paths, err := dfs.AllSimplePaths(g, "1", "4")                      // all
//	paths, err := dfs.AllSimplePaths(g, "1", "4", dfs.WithMaxPaths(100)) // first 100
//	paths, err := dfs.AllSimplePaths(g, "1", "4", dfs.WithMaxDepth(3))   // <= 3 edges
//
// WithShortestFirst repeats the walk once per path length, so paths come out
// by increasing length and a MaxPaths cap keeps the shortest ones:
//
//	paths, err := dfs.AllSimplePaths(g, "1", "4", dfs.WithMaxPaths(10), dfs.WithShortestFirst())
//
// Errors:
//
//   - ErrGraphNil         if g is nil.
//   - core.ErrNotFound    if src or dst is missing (as *core.Error).
//   - ErrOptionViolation  for negative limits.
package dfs
