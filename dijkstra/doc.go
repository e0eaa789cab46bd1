// SPDX-License-Identifier: MIT

// Package dijkstra computes weighted shortest paths over a core.Graph whose
// edge values hold non-negative numbers.
//
// Overview:
//
//   - Dijkstra(g, Source(id), ...) computes distances from one node to every
//     node in O((V + E) log V); ShortestPath(g, src, dst) answers one pair and
//     stops once dst is settled.
//   - Edge values are parsed with core.Value.Float. A value that is not a
//     number, or is negative, fails the whole query with an error matching
//     core.ErrMalformedInput; nothing is skipped silently.
//   - Parallel edges count as one connection weighing the cheapest of them.
//
// Key features:
//
//   - ReturnPath: if enabled, returns a “predecessor” map, so you can rebuild each path.
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//
// Determinism:
//
//	Neighbours are relaxed in core.Graph.Neighbors order and the heap breaks
//	distance ties by push order, so equal-cost alternatives resolve the same
//	way on every run.
//
// Example:
//
//	path, cost, err := dijkstra.ShortestPath(g, "A", "D")
//	if errors.Is(err, core.ErrNoPath) { ... }
package dijkstra
