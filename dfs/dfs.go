// SPDX-License-Identifier: MIT
// Package dfs enumerates every simple path between two nodes of a
// core.Graph by depth-first search with backtracking.
//
// Key features:
//   - AllSimplePaths(g, src, dst, opts...): exhaustive by default
//   - Limits: MaxPaths, MaxDepth
//   - Ordering: ShortestFirst enumerates by increasing length, so a MaxPaths
//     cap keeps the shortest paths
//   - Hook: OnPath, called per path; error aborts
//
// Complexity:
//
//   - Time:   O(P · V) for P simple paths; P is exponential in V on dense graphs.
//   - Memory: O(V + E) for the index and the recursion stack, plus the output.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - core.ErrNotFound          if src or dst is missing.
//   - ErrOptionViolation        for negative limits.
//   - any error returned by OnPath.
package dfs

import (
	"errors"

	"github.com/katalvlaran/mgraph/core"
)

// pathWalker encapsulates state during enumeration. Nodes are addressed by
// their dense index so the visited marker is a flat slice.
type pathWalker struct {
	ids     []core.ID // index -> ID, graph insertion order
	adj     [][]int   // index -> neighbour indices, Neighbors order
	visited []bool    // on the current path; rolled back on backtrack
	stack   []int     // current path as indices
	dst     int
	limit   int  // max edges per path; 0 = unbounded
	exact   bool // emit only paths of exactly limit edges
	opts    PathOptions
	paths   [][]core.ID
}

// AllSimplePaths returns every path from src to dst that repeats no node.
//
// Implementation:
//   - Stage 1: Validate graph, options and both endpoints.
//   - Stage 2: Index nodes densely and snapshot the neighbour lists.
//   - Stage 3: Recursive DFS from src; a node is marked on entry and
//     unmarked on exit, so sibling branches may reuse it. With ShortestFirst
//     the walk is repeated once per length (iterative deepening).
//
// Behavior highlights:
//   - Paths appear in DFS discovery order following Neighbors order; with
//     ShortestFirst, by length first and discovery order within a length.
//   - Parallel edges collapse; self-loops never extend a simple path.
//   - src == dst yields [[src]].
//   - An empty result (nil error) means dst is unreachable.
//
// Errors: ErrGraphNil, ErrOptionViolation, core.ErrNotFound, OnPath errors.
func AllSimplePaths(g *core.Graph, src, dst core.ID, opts ...Option) ([][]core.ID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, id := range []core.ID{src, dst} {
		if !g.HasNode(id) {
			return nil, core.NotFoundError("AllSimplePaths", core.EntityNode, string(id), g.Scope())
		}
	}

	w, index, err := newPathWalker(g, o)
	if err != nil {
		return nil, err
	}
	w.dst = index[dst]

	if o.ShortestFirst {
		err = w.deepen(index[src])
	} else {
		err = w.walk(index[src])
	}
	if err != nil && !errors.Is(err, errStop) {
		return nil, err
	}

	return w.paths, nil
}

// deepen runs one exact-length walk per path length, 1 edge upward.
func (w *pathWalker) deepen(src int) error {
	if src == w.dst {
		return w.walk(src)
	}
	longest := len(w.ids) - 1
	if w.opts.MaxDepth > 0 && w.opts.MaxDepth < longest {
		longest = w.opts.MaxDepth
	}
	w.exact = true
	for w.limit = 1; w.limit <= longest; w.limit++ {
		if err := w.walk(src); err != nil {
			return err
		}
	}

	return nil
}

// newPathWalker snapshots g into index form and returns the ID -> index map.
func newPathWalker(g *core.Graph, o PathOptions) (*pathWalker, map[core.ID]int, error) {
	ids := g.NodeIDs()
	index := make(map[core.ID]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	adj := make([][]int, len(ids))
	for i, id := range ids {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return nil, nil, err
		}
		adj[i] = make([]int, 0, len(nbrs))
		for _, n := range nbrs {
			if n != id {
				adj[i] = append(adj[i], index[n])
			}
		}
	}

	return &pathWalker{
		ids:     ids,
		adj:     adj,
		visited: make([]bool, len(ids)),
		stack:   make([]int, 0, len(ids)),
		limit:   o.MaxDepth,
		opts:    o,
	}, index, nil
}

// walk extends the current path with u.
func (w *pathWalker) walk(u int) error {
	w.visited[u] = true
	w.stack = append(w.stack, u)
	defer func() {
		w.stack = w.stack[:len(w.stack)-1]
		w.visited[u] = false
	}()

	if u == w.dst {
		if w.exact && len(w.stack)-1 != w.limit {
			return nil
		}
		return w.emit()
	}
	// len(stack)-1 edges so far; one more would exceed the cap.
	if w.limit > 0 && len(w.stack) > w.limit {
		return nil
	}
	for _, v := range w.adj[u] {
		if w.visited[v] {
			continue
		}
		if err := w.walk(v); err != nil {
			return err
		}
	}

	return nil
}

// emit records the current stack as a path.
func (w *pathWalker) emit() error {
	path := make([]core.ID, len(w.stack))
	for i, idx := range w.stack {
		path[i] = w.ids[idx]
	}
	w.paths = append(w.paths, path)

	if w.opts.OnPath != nil {
		cp := make([]core.ID, len(path))
		copy(cp, path)
		if err := w.opts.OnPath(cp); err != nil {
			return err
		}
	}
	if w.opts.MaxPaths > 0 && len(w.paths) >= w.opts.MaxPaths {
		return errStop
	}

	return nil
}
