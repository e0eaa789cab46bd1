// SPDX-License-Identifier: MIT

package bfs_test

import (
	"errors"
	"reflect"
	"strconv"
	"testing"

	"github.com/katalvlaran/mgraph/bfs"
	"github.com/katalvlaran/mgraph/core"
)

// build creates a graph with the given nodes and "i-j" edge pairs; edge IDs
// are generated.
func build(t *testing.T, nodes []core.ID, pairs [][2]core.ID) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range nodes {
		if err := g.AddNode(id, ""); err != nil {
			t.Fatalf("AddNode(%s): %v", id, err)
		}
	}
	for _, p := range pairs {
		if err := g.AddEdge(p[0], p[1], g.GenerateEdgeID(p[0], p[1]), "1"); err != nil {
			t.Fatalf("AddEdge(%s,%s): %v", p[0], p[1], err)
		}
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	_, err := bfs.BFS(g, "missing")
	if !errors.Is(err, bfs.ErrStartVertexNotFound) || !errors.Is(err, core.ErrNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	_ = g.AddNode("A", "")
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-node graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := build(t, []core.ID{"A"}, nil)
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []core.ID{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
}

// TestBFS_CycleWithMultiEdges checks depths on a square with parallel edges
// and a loop.
func TestBFS_CycleWithMultiEdges(t *testing.T) {
	g := build(t, []core.ID{"A", "B", "C", "D"}, [][2]core.ID{
		{"A", "B"}, {"B", "A"}, {"B", "C"}, {"C", "D"}, {"D", "A"}, {"C", "C"},
	})
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantOrder := []core.ID{"A", "B", "D", "C"}
	if !reflect.DeepEqual(res.Order, wantOrder) {
		t.Errorf("Order = %v; want %v", res.Order, wantOrder)
	}
	wantDepth := map[core.ID]int{"A": 0, "B": 1, "D": 1, "C": 2}
	if !reflect.DeepEqual(res.Depth, wantDepth) {
		t.Errorf("Depth = %v; want %v", res.Depth, wantDepth)
	}
	if p := res.Parent["C"]; p != "B" {
		t.Errorf("Parent[C] = %s; want B (first discoverer)", p)
	}
}

func TestBFS_MaxDepth(t *testing.T) {
	g := build(t, []core.ID{"0", "1", "2", "3"}, [][2]core.ID{{"0", "1"}, {"1", "2"}, {"2", "3"}})

	res, err := bfs.BFS(g, "0", bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []core.ID{"0", "1", "2"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("MaxDepth(2) Order = %v; want %v", res.Order, want)
	}
	if _, err := res.PathTo("3"); !errors.Is(err, core.ErrNoPath) {
		t.Errorf("PathTo(3): want ErrNoPath, got %v", err)
	}

	res, err = bfs.BFS(g, "0", bfs.WithMaxDepth(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Order) != 4 {
		t.Errorf("MaxDepth(0) Order = %v; want all four nodes", res.Order)
	}
}

func TestBFS_OnVisit(t *testing.T) {
	g := build(t, []core.ID{"a", "b", "c"}, [][2]core.ID{{"a", "b"}, {"b", "c"}})

	depths := make(map[core.ID]int)
	_, err := bfs.BFS(g, "a", bfs.WithOnVisit(func(id core.ID, d int) error {
		depths[id] = d
		return nil
	}), bfs.WithOnVisit(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := map[core.ID]int{"a": 0, "b": 1, "c": 2}; !reflect.DeepEqual(depths, want) {
		t.Errorf("hook saw %v; want %v", depths, want)
	}

	boom := errors.New("boom")
	res, err := bfs.BFS(g, "a", bfs.WithOnVisit(func(id core.ID, _ int) error {
		if id == "b" {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Fatalf("want hook error, got %v", err)
	}
	if want := []core.ID{"a", "b"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("aborted Order = %v; want %v", res.Order, want)
	}
}

// TestShortestPath covers the pair query, including tie-breaks and errors.
func TestShortestPath(t *testing.T) {
	g := build(t, []core.ID{"1", "2", "3", "4", "5", "6"}, [][2]core.ID{
		{"1", "3"}, {"1", "2"}, {"2", "4"}, {"3", "4"}, {"4", "5"},
	})

	cases := []struct {
		name     string
		src, dst core.ID
		want     []core.ID
		kind     error
	}{
		{"tie goes to first neighbour", "1", "4", []core.ID{"1", "3", "4"}, nil},
		{"longer", "2", "5", []core.ID{"2", "4", "5"}, nil},
		{"self", "6", "6", []core.ID{"6"}, nil},
		{"unreachable", "1", "6", nil, core.ErrNoPath},
		{"missing src", "9", "1", nil, core.ErrNotFound},
		{"missing dst", "1", "9", nil, core.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := bfs.ShortestPath(g, tc.src, tc.dst)
			if tc.kind != nil {
				if !errors.Is(err, tc.kind) {
					t.Fatalf("err = %v; want %v", err, tc.kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("path = %v; want %v", got, tc.want)
			}
		})
	}
}

// TestShortestPath_IsMinimal compares path lengths with full BFS depths on a
// ladder graph.
func TestShortestPath_IsMinimal(t *testing.T) {
	g := core.NewGraph()
	const n = 12
	for i := 0; i < n; i++ {
		_ = g.AddNode(core.ID("a"+strconv.Itoa(i)), "")
		_ = g.AddNode(core.ID("b"+strconv.Itoa(i)), "")
	}
	for i := 0; i < n; i++ {
		a, b := core.ID("a"+strconv.Itoa(i)), core.ID("b"+strconv.Itoa(i))
		_ = g.AddEdge(a, b, g.GenerateEdgeID(a, b), "")
		if i+1 < n {
			na, nb := core.ID("a"+strconv.Itoa(i+1)), core.ID("b"+strconv.Itoa(i+1))
			_ = g.AddEdge(a, na, g.GenerateEdgeID(a, na), "")
			_ = g.AddEdge(b, nb, g.GenerateEdgeID(b, nb), "")
		}
	}
	res, err := bfs.BFS(g, "a0")
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range g.NodeIDs() {
		path, err := bfs.ShortestPath(g, "a0", id)
		if err != nil {
			t.Fatalf("ShortestPath(a0,%s): %v", id, err)
		}
		if len(path)-1 != res.Depth[id] {
			t.Errorf("len(path to %s) = %d; want %d", id, len(path)-1, res.Depth[id])
		}
		for i := 1; i < len(path); i++ {
			if len(g.EdgesBetween(path[i-1], path[i])) == 0 {
				t.Errorf("path %v uses missing edge %s-%s", path, path[i-1], path[i])
			}
		}
	}
}

func TestShortestPath_DoesNotMutate(t *testing.T) {
	g := build(t, []core.ID{"1", "2"}, [][2]core.ID{{"1", "2"}})
	before := g.Edges()
	if _, err := bfs.ShortestPath(g, "1", "2"); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(before, g.Edges()) {
		t.Errorf("graph mutated by ShortestPath")
	}
}
