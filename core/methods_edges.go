// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge store: AddEdge/Edge/EdgeBetween/EdgesBetween/UpdateEdge/
//       UpdateEdgeBetween/RemoveEdge/Edges/EdgeCount, GenerateEdgeID and the
//       cascade used by RemoveNode.
//
// Determinism:
//   - Edges() enumerates in creation order.
//   - Pair lookups resolve parallel edges by creation order (first wins).
//
// Adjacency:
//   - A non-loop edge is linked twice (From->To and To->From); a loop once.

package core

import "strconv"

// edgeIDSeparator joins the parts of generated edge IDs ("1_2_1").
const edgeIDSeparator = "_"

// AddEdge creates an undirected edge eid between i and j.
// Parallel edges and self-loops are accepted.
//
// Errors:
//   - ErrMalformedInput: eid is empty.
//   - ErrNotFound: i or j is not a node of this graph.
//   - ErrDuplicateID: an edge eid already exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(i, j, eid ID, value Value) error {
	if eid == "" {
		return MalformedError("AddEdge", EntityEdge, "", g.scope, "empty id")
	}
	if _, ok := g.nodes[i]; !ok {
		return NotFoundError("AddEdge", EntityNode, string(i), g.scope)
	}
	if _, ok := g.nodes[j]; !ok {
		return NotFoundError("AddEdge", EntityNode, string(j), g.scope)
	}
	if _, exists := g.edges[eid]; exists {
		return DuplicateError("AddEdge", EntityEdge, string(eid), g.scope)
	}

	g.edges[eid] = &Edge{ID: eid, From: i, To: j, Value: value}
	g.edgeOrder = append(g.edgeOrder, eid)
	g.link(i, j, eid)
	if i != j {
		g.link(j, i, eid)
	}

	return nil
}

// HasEdge reports whether an edge with the given ID exists. Complexity: O(1).
func (g *Graph) HasEdge(eid ID) bool {
	_, ok := g.edges[eid]

	return ok
}

// Edge returns a copy of the edge record.
//
// Errors: ErrNotFound.
// Complexity: O(1).
func (g *Graph) Edge(eid ID) (Edge, error) {
	e, ok := g.edges[eid]
	if !ok {
		return Edge{}, NotFoundError("Edge", EntityEdge, string(eid), g.scope)
	}

	return *e, nil
}

// EdgeBetween returns the first-created edge joining i and j in either order.
//
// Errors: ErrNotFound when no edge connects the pair (or either node is absent).
// Complexity: O(1).
func (g *Graph) EdgeBetween(i, j ID) (Edge, error) {
	eid, ok := g.firstBetween(i, j)
	if !ok {
		return Edge{}, NotFoundError("EdgeBetween", EntityEdge, pairLabel(i, j), g.scope)
	}

	return *g.edges[eid], nil
}

// EdgesBetween returns every edge joining i and j, in creation order.
// The result is empty when none exists. Complexity: O(k) for k parallel edges.
func (g *Graph) EdgesBetween(i, j ID) []Edge {
	inc, ok := g.adjacency[i]
	if !ok {
		return nil
	}
	eids := inc.links[j]
	out := make([]Edge, 0, len(eids))
	for _, eid := range eids {
		out = append(out, *g.edges[eid])
	}

	return out
}

// UpdateEdge replaces the value of edge eid.
//
// Errors: ErrNotFound.
// Complexity: O(1).
func (g *Graph) UpdateEdge(eid ID, value Value) error {
	e, ok := g.edges[eid]
	if !ok {
		return NotFoundError("UpdateEdge", EntityEdge, string(eid), g.scope)
	}
	e.Value = value

	return nil
}

// UpdateEdgeBetween replaces the value of the edge EdgeBetween(i, j) would
// return and reports which edge was touched.
//
// Errors: ErrNotFound.
// Complexity: O(1).
func (g *Graph) UpdateEdgeBetween(i, j ID, value Value) (ID, error) {
	eid, ok := g.firstBetween(i, j)
	if !ok {
		return "", NotFoundError("UpdateEdgeBetween", EntityEdge, pairLabel(i, j), g.scope)
	}
	g.edges[eid].Value = value

	return eid, nil
}

// RemoveEdge deletes edge eid and its adjacency links.
//
// Errors: ErrNotFound.
// Complexity: O(E) for order maintenance.
func (g *Graph) RemoveEdge(eid ID) error {
	e, ok := g.edges[eid]
	if !ok {
		return NotFoundError("RemoveEdge", EntityEdge, string(eid), g.scope)
	}

	g.unlink(e.From, e.To, eid)
	if !e.IsLoop() {
		g.unlink(e.To, e.From, eid)
	}
	delete(g.edges, eid)
	g.edgeOrder = removeID(g.edgeOrder, eid)

	return nil
}

// Edges returns copies of all edges in creation order. Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edgeOrder))
	for _, eid := range g.edgeOrder {
		out = append(out, *g.edges[eid])
	}

	return out
}

// EdgeCount returns the number of edges (parallel edges counted separately).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// GenerateEdgeID returns the first free ID of the form "i_j_k", k >= 1.
// Complexity: O(k).
func (g *Graph) GenerateEdgeID(i, j ID) ID {
	prefix := string(i) + edgeIDSeparator + string(j) + edgeIDSeparator
	for k := 1; ; k++ {
		eid := ID(prefix + strconv.Itoa(k))
		if _, taken := g.edges[eid]; !taken {
			return eid
		}
	}
}

// removeIncidentTo deletes every edge touching id. It never fails; the node
// itself is left for the caller to remove.
func (g *Graph) removeIncidentTo(id ID) {
	inc, ok := g.adjacency[id]
	if !ok {
		return
	}

	dropped := make(map[ID]struct{})
	for _, nbr := range inc.order {
		for _, eid := range inc.links[nbr] {
			dropped[eid] = struct{}{}
			delete(g.edges, eid)
			if nbr != id {
				g.unlink(nbr, id, eid)
			}
		}
	}
	if len(dropped) == 0 {
		return
	}

	kept := g.edgeOrder[:0]
	for _, eid := range g.edgeOrder {
		if _, gone := dropped[eid]; !gone {
			kept = append(kept, eid)
		}
	}
	g.edgeOrder = kept
	g.adjacency[id] = &incidence{links: make(map[ID][]ID)}
}

// firstBetween returns the first-created edge ID joining i and j.
func (g *Graph) firstBetween(i, j ID) (ID, bool) {
	inc, ok := g.adjacency[i]
	if !ok {
		return "", false
	}
	eids := inc.links[j]
	if len(eids) == 0 {
		return "", false
	}

	return eids[0], true
}

// link records eid in u's incidence toward v.
func (g *Graph) link(u, v, eid ID) {
	inc := g.adjacency[u]
	if _, known := inc.links[v]; !known {
		inc.order = append(inc.order, v)
	}
	inc.links[v] = append(inc.links[v], eid)
}

// unlink removes eid from u's incidence toward v, dropping v from the
// neighbour order once no edge remains.
func (g *Graph) unlink(u, v, eid ID) {
	inc, ok := g.adjacency[u]
	if !ok {
		return
	}
	eids := removeID(inc.links[v], eid)
	if len(eids) > 0 {
		inc.links[v] = eids
		return
	}
	delete(inc.links, v)
	inc.order = removeID(inc.order, v)
}

// pairLabel formats an endpoint pair for error messages.
func pairLabel(i, j ID) string {
	return string(i) + "-" + string(j)
}
