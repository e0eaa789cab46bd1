// SPDX-License-Identifier: MIT

package core_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/mgraph/core"
)

func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	_ = g.AddNode("a", "")
	_ = g.AddNode("b", "")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge("a", "b", core.ID(strconv.Itoa(i)), "1")
	}
}

func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph()
	_ = g.AddNode("hub", "")
	for i := 0; i < 1000; i++ {
		id := core.ID(strconv.Itoa(i))
		_ = g.AddNode(id, "")
		_ = g.AddEdge("hub", id, "e"+id, "1")
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors("hub")
	}
}
