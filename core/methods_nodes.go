// SPDX-License-Identifier: MIT
// File: methods_nodes.go
// Role: Node store: lifecycle & queries.
//
// Determinism:
//   - Nodes() and NodeIDs() enumerate in insertion order.
//
// Atomicity:
//   - Every mutator validates before touching any map, so a failed call
//     leaves the graph unchanged.

package core

// AddNode inserts a node with the given value.
//
// Errors:
//   - ErrMalformedInput: id is empty.
//   - ErrDuplicateID: a node with id already exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id ID, value Value) error {
	if id == "" {
		return MalformedError("AddNode", EntityNode, "", g.scope, "empty id")
	}
	if _, exists := g.nodes[id]; exists {
		return DuplicateError("AddNode", EntityNode, string(id), g.scope)
	}

	g.nodes[id] = &Node{ID: id, Value: value}
	g.nodeOrder = append(g.nodeOrder, id)
	g.adjacency[id] = &incidence{links: make(map[ID][]ID)}

	return nil
}

// HasNode reports whether id is present. Complexity: O(1).
func (g *Graph) HasNode(id ID) bool {
	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node record.
//
// Errors: ErrNotFound.
// Complexity: O(1).
func (g *Graph) Node(id ID) (Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, NotFoundError("Node", EntityNode, string(id), g.scope)
	}

	return *n, nil
}

// UpdateNode replaces the value of an existing node in place.
//
// Errors: ErrNotFound.
// Complexity: O(1).
func (g *Graph) UpdateNode(id ID, value Value) error {
	n, ok := g.nodes[id]
	if !ok {
		return NotFoundError("UpdateNode", EntityNode, string(id), g.scope)
	}
	n.Value = value

	return nil
}

// RemoveNode deletes the node and every edge incident to it.
//
// Errors: ErrNotFound.
// Complexity: O(V + E) for order maintenance.
func (g *Graph) RemoveNode(id ID) error {
	if _, ok := g.nodes[id]; !ok {
		return NotFoundError("RemoveNode", EntityNode, string(id), g.scope)
	}

	g.removeIncidentTo(id)
	delete(g.adjacency, id)
	delete(g.nodes, id)
	g.nodeOrder = removeID(g.nodeOrder, id)

	return nil
}

// Nodes returns copies of all node records in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, *g.nodes[id])
	}

	return out
}

// NodeIDs returns all node IDs in insertion order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []ID {
	out := make([]ID, len(g.nodeOrder))
	copy(out, g.nodeOrder)

	return out
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// removeID drops the first occurrence of id from ids, preserving order.
func removeID(ids []ID, id ID) []ID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}

	return ids
}
