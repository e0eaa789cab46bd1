// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone preserves node insertion order, edge creation order and the
//     first-connection order of every neighbourhood.
// AI-HINT (file):
//   - The clone shares no pointer with its source; mutating one never shows in the other.
//   - Clear() keeps the scope and drops every node and edge.

package core

// Clone returns a deep copy of the Graph under a new scope name.
// An empty scope keeps the source scope.
//
// Complexity: O(V + E).
func (g *Graph) Clone(scope string) *Graph {
	if scope == "" {
		scope = g.scope
	}
	clone := NewGraph(WithScope(scope))

	clone.nodeOrder = make([]ID, len(g.nodeOrder))
	copy(clone.nodeOrder, g.nodeOrder)
	for id, n := range g.nodes {
		clone.nodes[id] = &Node{ID: n.ID, Value: n.Value}
	}

	clone.edgeOrder = make([]ID, len(g.edgeOrder))
	copy(clone.edgeOrder, g.edgeOrder)
	for eid, e := range g.edges {
		cp := *e
		clone.edges[eid] = &cp
	}

	for id, inc := range g.adjacency {
		cinc := &incidence{
			order: make([]ID, len(inc.order)),
			links: make(map[ID][]ID, len(inc.links)),
		}
		copy(cinc.order, inc.order)
		for nbr, eids := range inc.links {
			cp := make([]ID, len(eids))
			copy(cp, eids)
			cinc.links[nbr] = cp
		}
		clone.adjacency[id] = cinc
	}

	return clone
}

// Clear removes every node and edge; the scope is preserved.
// Complexity: O(1) (maps are reallocated).
func (g *Graph) Clear() {
	g.nodes = make(map[ID]*Node)
	g.nodeOrder = nil
	g.edges = make(map[ID]*Edge)
	g.edgeOrder = nil
	g.adjacency = make(map[ID]*incidence)
}
