// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - ShortestPath(g, src, dst) answers the single-pair query directly and
//     stops as soon as dst is discovered.
//   - WithOnVisit(fn) sees every node with its depth; an error aborts.
//   - WithMaxDepth(d) bounds the radius (d>0) or lifts it (d==0); the shell's
//     "node nbr <id> <radius>" groups the visited nodes by depth.
//
// Multi-graph semantics
//
//	Edges are undirected; parallel edges between the same pair collapse to a
//	single connection and edge values are ignored. A self-loop never changes
//	the result since its node is already visited.
//
// Determinism
//
//	core.Graph.Neighbors returns neighbours in first-connection order and BFS
//	enqueues them in that order, so the visit sequence and the path returned
//	for equal-length alternatives are fully reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	path, err := bfs.ShortestPath(g, "1", "4")
//	switch {
//	case errors.Is(err, core.ErrNotFound): // unknown endpoint
//	case errors.Is(err, core.ErrNoPath):   // disconnected
//	}
//
//	res, err := bfs.BFS(g, "1", bfs.WithMaxDepth(2))
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start node does not exist (matches core.ErrNotFound).
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.Neighbors fails for any node.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
