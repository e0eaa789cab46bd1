// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Node and Edge types of the engine
// and the node/edge stores composed by Graph.
//
// This file declares ID, Value, Node, Edge, Graph, GraphOption and the
// NewGraph constructor. Error kinds live in errors.go.
package core

import (
	"strconv"
	"strings"
)

// GlobalScope is the scope name of the implicit global graph.
const GlobalScope = "_all_"

// ID identifies a node or an edge inside one Graph.
type ID string

// String implements fmt.Stringer.
func (id ID) String() string { return string(id) }

// Value is the scalar attached to nodes, edges and clusters.
// It is stored verbatim; numeric interpretation is left to the caller.
type Value string

// String implements fmt.Stringer.
func (v Value) String() string { return string(v) }

// Float parses the value as a float64, ignoring surrounding whitespace.
func (v Value) Float() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
}

// Node is a vertex record. Node values returned by Graph are copies.
type Node struct {
	// ID is unique within the owning Graph.
	ID ID

	// Value is the node payload.
	Value Value
}

// Edge is an undirected connection between two nodes of the same Graph.
//
// From and To keep the order given at creation for display only; traversal
// treats the pair as unordered. From == To is a self-loop.
type Edge struct {
	// ID is unique within the owning Graph.
	ID ID

	// From is the first endpoint as given to AddEdge.
	From ID

	// To is the second endpoint as given to AddEdge.
	To ID

	// Value is the edge payload (a weight for weighted path queries).
	Value Value
}

// IsLoop reports whether the edge connects a node to itself.
func (e Edge) IsLoop() bool { return e.From == e.To }

// Connects reports whether the edge joins a and b, in either order.
func (e Edge) Connects(a, b ID) bool {
	return (e.From == a && e.To == b) || (e.From == b && e.To == a)
}

// Other returns the endpoint opposite to id. For a loop it returns id.
func (e Edge) Other(id ID) ID {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithScope names the graph. The scope is attached to every error the graph
// raises so callers can tell the global graph from a cluster.
func WithScope(scope string) GraphOption {
	return func(g *Graph) {
		if scope != "" {
			g.scope = scope
		}
	}
}

// incidence is the adjacency entry of one node: its distinct neighbours in
// first-connection order and, per neighbour, the connecting edge IDs in
// creation order.
type incidence struct {
	order []ID
	links map[ID][]ID
}

// Graph is an undirected multi-graph with self-loops.
//
// Graph owns its node store (nodes, nodeOrder), its edge store (edges,
// edgeOrder) and the adjacency index over both. Invariant: every edge in
// edges has both endpoints in nodes, and adjacency holds exactly one
// incidence per node.
//
// Graph performs no locking. It assumes a single logical caller; read-only
// methods may run concurrently only while no mutation is in flight.
type Graph struct {
	scope string

	nodes     map[ID]*Node
	nodeOrder []ID

	edges     map[ID]*Edge
	edgeOrder []ID

	adjacency map[ID]*incidence
}

// NewGraph returns an empty Graph in GlobalScope unless WithScope says otherwise.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		scope:     GlobalScope,
		nodes:     make(map[ID]*Node),
		edges:     make(map[ID]*Edge),
		adjacency: make(map[ID]*incidence),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
