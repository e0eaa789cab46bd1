// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mgraph/bfs"
	"github.com/katalvlaran/mgraph/core"
)

// chain builds a path graph v0-v1-...-vn.
func chain(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i <= n; i++ {
		_ = g.AddNode(core.ID(fmt.Sprintf("v%d", i)), "")
	}
	for i := 0; i < n; i++ {
		u, v := core.ID(fmt.Sprintf("v%d", i)), core.ID(fmt.Sprintf("v%d", i+1))
		_ = g.AddEdge(u, v, g.GenerateEdgeID(u, v), "")
	}

	return g
}

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := chain(N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "v0")
	}
}

// BenchmarkShortestPath_Chain measures the pair query end to end.
func BenchmarkShortestPath_Chain(b *testing.B) {
	const N = 10000
	g := chain(N)
	dst := core.ID(fmt.Sprintf("v%d", N))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPath(g, "v0", dst)
	}
}
