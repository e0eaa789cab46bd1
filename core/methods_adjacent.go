// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighbourhood APIs (Neighbors, NeighborCount, Incident, AdjacencyList).
// Determinism:
//   - Neighbors() lists neighbours in first-connection order.
//   - Incident() lists edges in creation order per neighbour.
// AI-HINT (file):
//   - Parallel edges collapse: a neighbour appears once however many edges reach it.
//   - A self-loop makes a node its own neighbour.

package core

// Neighbors returns the distinct node IDs directly connected to id.
//
// Implementation:
//   - Stage 1: Validate that id is a node of this graph (ErrNotFound).
//   - Stage 2: Copy the incidence order of id.
//
// Behavior highlights:
//   - Unique output: parallel edges to the same neighbour yield one entry.
//   - Order is the order in which each neighbour was first connected; this is
//     the iteration order path engines rely on for tie-breaking.
//   - The returned slice is freshly allocated and safe to retain.
//
// Errors:
//   - ErrNotFound: id is not a node of this graph.
//
// Complexity:
//   - Time O(k), Space O(k), where k is the number of distinct neighbours.
func (g *Graph) Neighbors(id ID) ([]ID, error) {
	inc, ok := g.adjacency[id]
	if !ok {
		return nil, NotFoundError("Neighbors", EntityNode, string(id), g.scope)
	}
	out := make([]ID, len(inc.order))
	copy(out, inc.order)

	return out, nil
}

// NeighborCount returns len(Neighbors(id)): distinct neighbours, not edges.
//
// Errors: ErrNotFound.
// Complexity: O(1).
func (g *Graph) NeighborCount(id ID) (int, error) {
	inc, ok := g.adjacency[id]
	if !ok {
		return 0, NotFoundError("NeighborCount", EntityNode, string(id), g.scope)
	}

	return len(inc.order), nil
}

// Incident returns every edge touching id, grouped by neighbour in
// first-connection order and by creation order within a neighbour.
// A self-loop is listed once.
//
// Errors: ErrNotFound.
// Complexity: O(d) for d incident edges.
func (g *Graph) Incident(id ID) ([]Edge, error) {
	inc, ok := g.adjacency[id]
	if !ok {
		return nil, NotFoundError("Incident", EntityNode, string(id), g.scope)
	}

	var out []Edge
	for _, nbr := range inc.order {
		for _, eid := range inc.links[nbr] {
			out = append(out, *g.edges[eid])
		}
	}

	return out, nil
}

// AdjacencyList returns a snapshot mapping every node to its neighbours.
// Slices are freshly allocated. Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[ID][]ID {
	out := make(map[ID][]ID, len(g.adjacency))
	for id, inc := range g.adjacency {
		nbrs := make([]ID, len(inc.order))
		copy(nbrs, inc.order)
		out[id] = nbrs
	}

	return out
}
