// SPDX-License-Identifier: MIT
// Package dijkstra implements Dijkstra's shortest-path algorithm on graphs
// whose edge values are non-negative numbers.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to parse weights and fail
//     fast on non-numeric or negative values.
//   - Parallel edges collapse to the cheapest one while building the weighted
//     neighbour lists.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and
//     ignoring stale entries. Equal distances pop in push order, so ties resolve
//     the same way on every run.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/mgraph/core"
)

// arc is a collapsed connection u→v weighing the cheapest parallel edge.
type arc struct {
	to     core.ID
	weight float64
}

// Dijkstra computes shortest distances from the source node (Options.Source)
// to all other nodes of g.
//
// Returns:
//
//   - dist: map from node ID to minimum distance (+Inf if unreachable).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     Unreachable nodes and the source are absent.
//   - err:  error if inputs are invalid or an edge weight is unusable.
//
// Preconditions and validation (in order):
//  1. Options are valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. Source string must be non-empty (ErrEmptySource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. Every edge value is a non-negative number (ErrNonNumericWeight, ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[core.ID]float64, map[core.ID]core.ID, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q in %s", ErrVertexNotFound, cfg.Source, g.Scope())
	}

	r, err := newRunner(g, cfg)
	if err != nil {
		return nil, nil, err
	}
	r.init()
	r.process("")

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the cheapest path from src to dst and its total weight.
//
// Errors:
//   - core.ErrNotFound (as *core.Error): src or dst is not a node of g.
//   - core.ErrMalformedInput: an edge value is non-numeric or negative.
//   - core.ErrNoPath (as *core.Error): dst is unreachable from src.
//
// src == dst yields ([src], 0). Among equal-cost paths the first settled
// predecessor wins, following core.Graph.Neighbors order.
func ShortestPath(g *core.Graph, src, dst core.ID) ([]core.ID, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	for _, id := range []core.ID{src, dst} {
		if !g.HasNode(id) {
			return nil, 0, core.NotFoundError("ShortestPath", core.EntityNode, string(id), g.Scope())
		}
	}

	r, err := newRunner(g, DefaultOptions(src))
	if err != nil {
		return nil, 0, err
	}
	if src == dst {
		return []core.ID{src}, 0, nil
	}
	r.init()
	r.process(dst)

	total := r.dist[dst]
	if math.IsInf(total, 1) {
		return nil, 0, core.NoPathError("ShortestPath", src, dst, g.Scope())
	}
	path := []core.ID{dst}
	for cur := dst; cur != src; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, total, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	arcs    map[core.ID][]arc // collapsed, weighted neighbour lists
	dist    map[core.ID]float64
	prev    map[core.ID]core.ID
	visited map[core.ID]bool
	pq      nodePQ
	seq     int // push counter for stable tie-breaking
}

// newRunner parses every edge weight and builds the collapsed neighbour lists.
func newRunner(g *core.Graph, cfg Options) (*runner, error) {
	weights := make(map[core.ID]float64, g.EdgeCount())
	for _, e := range g.Edges() {
		w, err := e.Value.Float()
		if err != nil || math.IsNaN(w) {
			return nil, fmt.Errorf("%w: edge %s (%s-%s) value %q in %s",
				ErrNonNumericWeight, e.ID, e.From, e.To, e.Value, g.Scope())
		}
		if w < 0 {
			return nil, fmt.Errorf("%w: edge %s (%s-%s) weight=%v in %s",
				ErrNegativeWeight, e.ID, e.From, e.To, w, g.Scope())
		}
		weights[e.ID] = w
	}

	ids := g.NodeIDs()
	arcs := make(map[core.ID][]arc, len(ids))
	for _, u := range ids {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
		}
		list := make([]arc, 0, len(nbrs))
		for _, v := range nbrs {
			if v == u {
				continue
			}
			best := math.Inf(1)
			for _, e := range g.EdgesBetween(u, v) {
				if w := weights[e.ID]; w < best {
					best = w
				}
			}
			list = append(list, arc{to: v, weight: best})
		}
		arcs[u] = list
	}

	return &runner{
		g:       g,
		options: cfg,
		arcs:    arcs,
		dist:    make(map[core.ID]float64, len(ids)),
		prev:    make(map[core.ID]core.ID, len(ids)),
		visited: make(map[core.ID]bool, len(ids)),
		pq:      make(nodePQ, 0, len(ids)),
	}, nil
}

// init sets up initial distances and pushes Source=0 into the heap.
func (r *runner) init() {
	for _, v := range r.g.NodeIDs() {
		r.dist[v] = math.Inf(1)
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the
// node with the minimum distance from the source and relaxes its arcs.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable nodes processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - target is non-empty and has been settled.
func (r *runner) process(target core.ID) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if u == target {
			return
		}
		r.relax(u)
	}
}

// relax attempts to improve distances to every neighbour of the settled node u.
func (r *runner) relax(u core.ID) {
	for _, a := range r.arcs[u] {
		if a.weight >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + a.weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// strict “<” keeps the first predecessor on ties.
		if newDist >= r.dist[a.to] {
			continue
		}
		r.dist[a.to] = newDist
		r.prev[a.to] = u
		r.push(a.to, newDist)
	}
}

// push adds a heap entry stamped with the next sequence number.
func (r *runner) push(id core.ID, dist float64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
	r.seq++
}

// nodeItem represents a node and its current distance from the source.
type nodeItem struct {
	id   core.ID
	dist float64
	seq  int
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by push order.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority; earlier push breaks ties.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
