// SPDX-License-Identifier: MIT

package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mgraph/core"
)

// ExampleGraph demonstrates node/edge CRUD and the removal cascade.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddNode("1", "10")
	_ = g.AddNode("2", "20")
	_ = g.AddEdge("1", "2", "e1", "7")
	_ = g.AddEdge("2", "1", "e2", "3")

	nbrs, _ := g.Neighbors("1")
	e, _ := g.EdgeBetween("2", "1")
	fmt.Println("neighbors of 1:", nbrs)
	fmt.Println("first edge:", e.ID, e.Value)

	_ = g.RemoveNode("1")
	_, err := g.Edge("e1")
	fmt.Println("edges left:", g.EdgeCount(), errors.Is(err, core.ErrNotFound))

	// Output:
	// neighbors of 1: [2]
	// first edge: e1 7
	// edges left: 0 true
}

// ExampleError shows the structured error returned on a missing node.
func ExampleError() {
	g := core.NewGraph(core.WithScope("X"))
	err := g.RemoveNode("7")
	fmt.Println(err)

	// Output:
	// RemoveNode: node 7 not found in X
}
