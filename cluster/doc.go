// SPDX-License-Identifier: MIT

// Package cluster keeps named, independent graphs next to the global graph
// and tracks which one is the working view.
//
// Every cluster owns its own *core.Graph. Creating a cluster from node ids
// does not link it to the global graph: the cluster receives fresh nodes
// carrying the cluster value and no edges. Mutations made in one graph never
// show in another.
//
// The working view starts on the global graph. Isolate(name) switches it to
// a cluster, Deisolate() switches it back, and removing the isolated cluster
// switches it back as well. Active() always returns a live graph.
//
//	r := cluster.New()
//	_, _ = r.Create("X", "team", "1", "2")
//	_ = r.Isolate("X")
//	_ = r.Active().AddEdge("1", "2", "e", "7") // lands in X only
package cluster
