// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only facade over a Graph: scope, emptiness and Stats.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity.

package core

// GraphStats is a snapshot of catalog sizes.
type GraphStats struct {
	// Scope is the graph's scope name.
	Scope string

	// NodeCount is the number of nodes.
	NodeCount int

	// EdgeCount is the number of edges, parallel edges counted separately.
	EdgeCount int

	// LoopCount is the number of self-loops.
	LoopCount int

	// ParallelPairs is the number of unordered node pairs joined by more than one edge.
	ParallelPairs int
}

// Scope returns the graph's scope name. Complexity: O(1).
func (g *Graph) Scope() string {
	return g.scope
}

// IsEmpty reports whether the graph holds no node (hence no edge).
// Complexity: O(1).
func (g *Graph) IsEmpty() bool {
	return len(g.nodes) == 0
}

// Stats produces a deterministic snapshot of sizes.
//
// Implementation:
//   - Stage 1: Count nodes and edges from the catalogs.
//   - Stage 2: Scan edges once for loops.
//   - Stage 3: Scan incidences once for parallel pairs, counting each pair
//     from its first-created side only.
//
// Complexity:
//   - Time O(V + E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	stats := GraphStats{
		Scope:     g.scope,
		NodeCount: len(g.nodes),
		EdgeCount: len(g.edges),
	}
	for _, e := range g.edges {
		if e.IsLoop() {
			stats.LoopCount++
		}
	}
	for id, inc := range g.adjacency {
		for nbr, eids := range inc.links {
			if len(eids) < 2 {
				continue
			}
			// each non-loop pair is linked from both sides; count the From side.
			if first := g.edges[eids[0]]; first.From == id || nbr == id {
				stats.ParallelPairs++
			}
		}
	}

	return &stats
}
