// SPDX-License-Identifier: MIT

// Package core provides the in-memory undirected multi-graph every other
// package of mgraph operates on.
//
// A Graph G = (V, E) stores:
//
//   - Nodes: ID -> Value, unique per Graph, enumerated in insertion order.
//   - Edges: ID -> {From, To, Value}, unique per Graph, enumerated in creation order.
//   - Parallel edges between the same pair and self-loops (From == To).
//
// Every Graph carries a scope name: GlobalScope ("_all_") for the global
// graph, otherwise the name of the cluster that owns it. The scope is
// attached to every *Error the graph raises.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id, value) error           // O(1)
//	Node(id) (Node, error)             // O(1)
//	UpdateNode(id, value) error        // O(1)
//	RemoveNode(id) error               // O(V+E), cascades to incident edges
//
//	// Edge lifecycle
//	AddEdge(i, j, eid, value) error    // O(1)
//	Edge(eid) / EdgeBetween(i, j)      // O(1); pair lookup is symmetric, first created wins
//	UpdateEdge / UpdateEdgeBetween     // O(1)
//	RemoveEdge(eid) error              // O(E)
//
//	// Queries
//	Neighbors(id) ([]ID, error)        // distinct, first-connection order
//	Nodes() / Edges()                  // insertion / creation order
//	Stats() *GraphStats                // counts, loops, parallel pairs
//
// Error handling:
//
//	Failures are *Error values wrapping one of ErrNotFound, ErrDuplicateID,
//	ErrNoPath or ErrMalformedInput; match them with errors.Is. A failed
//	mutation leaves the graph unchanged.
//
// Concurrency:
//
//	Graph performs no locking. It is built for a single logical caller.
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddNode("1", "10")
//	_ = g.AddNode("2", "20")
//	_ = g.AddEdge("1", "2", "e1", "7")
//	nbrs, _ := g.Neighbors("1") // [2]
package core
