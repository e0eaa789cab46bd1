// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node, with an
// optional visit hook and depth limit.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mgraph/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// errStop is raised internally once the target of ShortestPath is reached.
var errStop = errors.New("bfs: stop")

// queueItem pairs a node ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     core.ID
	depth  int
	parent core.ID // empty for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[core.ID]bool
	res     *BFSResult
	target  core.ID // optional; non-empty stops the walk once enqueued
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
//
// Neighbors are expanded in the order core.Graph.Neighbors returns them, so
// the visit sequence and the parent of every node are reproducible.
func BFS(g *core.Graph, startID core.ID, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start node
	if !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %q in %s", ErrStartVertexNotFound, startID, g.Scope())
	}

	w := newWalker(g, o, startID)
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// ShortestPath returns a minimum-hop path from src to dst, both inclusive.
//
// Parallel edges collapse to a single connection; edge values are ignored.
// Among equal-length paths the one found first wins: neighbours are expanded
// in first-connection order and a node keeps the first predecessor that
// discovered it.
//
// Errors:
//   - core.ErrNotFound (as *core.Error): src or dst is not a node of g.
//   - core.ErrNoPath (as *core.Error): dst is unreachable from src.
//
// src == dst yields [src]. Complexity: O(V + E).
func ShortestPath(g *core.Graph, src, dst core.ID) ([]core.ID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	for _, id := range []core.ID{src, dst} {
		if !g.HasNode(id) {
			return nil, core.NotFoundError("ShortestPath", core.EntityNode, string(id), g.Scope())
		}
	}
	if src == dst {
		return []core.ID{src}, nil
	}

	w := newWalker(g, DefaultOptions(), src)
	w.target = dst
	w.enqueue(src, 0, "")
	if err := w.loop(); err != nil && !errors.Is(err, errStop) {
		return nil, err
	}
	if _, reached := w.res.Depth[dst]; !reached {
		return nil, core.NoPathError("ShortestPath", src, dst, g.Scope())
	}

	return w.res.PathTo(dst)
}

// newWalker prepares a walker sized for g.
func newWalker(g *core.Graph, o Options, start core.ID) *walker {
	n := g.NodeCount()

	return &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.ID]bool, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]core.ID, 0, n),
			Depth:  make(map[core.ID]int, n),
			Parent: make(map[core.ID]core.ID, n),
		},
	}
}

// enqueue marks id visited at depth d, records its parent and queues it.
func (w *walker) enqueue(id core.ID, d int, parent core.ID) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop processes the queue until empty or error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbour. Returns ErrNeighbors on lookup failure
// and errStop once the target has been enqueued.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id)
		if w.target != "" && nbr == w.target {
			return errStop
		}
	}

	return nil
}
