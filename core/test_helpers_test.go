// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mgraph/core"
)

// Common node IDs used across core tests.
const (
	N1 core.ID = "1"
	N2 core.ID = "2"
	N3 core.ID = "3"
	N4 core.ID = "4"
	NX core.ID = "X"
)

// mustNodes adds every id with value "v"+id.
func mustNodes(t *testing.T, g *core.Graph, ids ...core.ID) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, g.AddNode(id, core.Value("v"+id)))
	}
}

// mustEdge adds edge eid between i and j.
func mustEdge(t *testing.T, g *core.Graph, i, j, eid core.ID, value core.Value) {
	t.Helper()
	require.NoError(t, g.AddEdge(i, j, eid, value))
}

// edgeIDs projects edges to their IDs.
func edgeIDs(edges []core.Edge) []core.ID {
	out := make([]core.ID, len(edges))
	for i, e := range edges {
		out[i] = e.ID
	}

	return out
}

// assertConsistent checks that every edge endpoint is a live node and that
// every neighbour relation is backed by an edge.
func assertConsistent(t *testing.T, g *core.Graph) {
	t.Helper()
	for _, e := range g.Edges() {
		require.True(t, g.HasNode(e.From), "edge %s has dangling From %s", e.ID, e.From)
		require.True(t, g.HasNode(e.To), "edge %s has dangling To %s", e.ID, e.To)
	}
	for _, id := range g.NodeIDs() {
		nbrs, err := g.Neighbors(id)
		require.NoError(t, err)
		for _, n := range nbrs {
			require.NotEmpty(t, g.EdgesBetween(id, n), "neighbour %s-%s without edge", id, n)
		}
	}
}
