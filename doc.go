// SPDX-License-Identifier: MIT

// Package mgraph is an in-memory multi-graph engine with clusters, path
// queries and CSV adjacency import, driven from an interactive shell.
//
// 🚀 What is mgraph?
//
//	A single-process graph workbench that brings together:
//		• Core primitives: nodes & edges with string values, parallel edges, self-loops
//		• Clusters: independent named graphs, one of which can be isolated as the working view
//		• Neighbour queries: distinct neighbours in first-connection order
//		• Paths: BFS shortest path, Dijkstra over numeric edge values, all simple paths
//		• CSV import: adjacency matrix -> cluster graph, all-or-nothing
//		• Generator: seeded random adjacency matrices for fixtures
//
// Under the hood, everything is organized under these subpackages:
//
//	core/      - Graph, Node, Edge, ID/Value and the four error kinds
//	bfs/       - breadth-first traversal & unweighted shortest path
//	dfs/       - all simple paths with a rolled-back visited marker
//	dijkstra/  - weighted shortest path over numeric edge values
//	cluster/   - Registry of named graphs + working-view selector
//	matrix/    - CSV grid reading/writing & adjacency import
//	builder/   - random adjacency matrices
//	shell/     - command grammar, rendering & REPL
//	cmd/mgraph - the CLI (repl, exec, import, gen, version)
//
// Quick session:
//
//	$ mgraph exec "node new 1 10" "node new 2 20" "edge new 1 2 e1 7" "node p 1 2"
//	Node 1 added.
//	Node 2 added.
//	Edge e1 added.
//	[1, e1, 2]
//
// The engine performs no locking and no logging: one logical caller drives
// it, and the shell owns rendering, logging and error reporting.
package mgraph
