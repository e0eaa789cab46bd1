// SPDX-License-Identifier: MIT

package dfs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mgraph/bfs"
	"github.com/katalvlaran/mgraph/core"
	"github.com/katalvlaran/mgraph/dfs"
)

// buildGraph creates nodes then edges for each pair, edge IDs generated.
func buildGraph(nodes []core.ID, pairs ...[2]core.ID) *core.Graph {
	g := core.NewGraph()
	for _, id := range nodes {
		_ = g.AddNode(id, "")
	}
	for _, p := range pairs {
		_ = g.AddEdge(p[0], p[1], g.GenerateEdgeID(p[0], p[1]), "1")
	}

	return g
}

// buildComplete creates K_n with IDs "0".."n-1".
func buildComplete(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddNode(core.ID(fmt.Sprint(i)), "")
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			u, v := core.ID(fmt.Sprint(i)), core.ID(fmt.Sprint(j))
			_ = g.AddEdge(u, v, g.GenerateEdgeID(u, v), "1")
		}
	}

	return g
}

func TestAllSimplePaths_NilGraph(t *testing.T) {
	res, err := dfs.AllSimplePaths(nil, "A", "B")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestAllSimplePaths_NotFound(t *testing.T) {
	g := buildGraph([]core.ID{"A"})
	_, err := dfs.AllSimplePaths(g, "X", "A")
	assert.ErrorIs(t, err, core.ErrNotFound)
	_, err = dfs.AllSimplePaths(g, "A", "X")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestAllSimplePaths_BadOptions(t *testing.T) {
	g := buildGraph([]core.ID{"A"})
	_, err := dfs.AllSimplePaths(g, "A", "A", dfs.WithMaxPaths(-1))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
	_, err = dfs.AllSimplePaths(g, "A", "A", dfs.WithMaxDepth(-2))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

func TestAllSimplePaths_SameNode(t *testing.T) {
	g := buildGraph([]core.ID{"A", "B"}, [2]core.ID{"A", "B"}, [2]core.ID{"A", "A"})
	paths, err := dfs.AllSimplePaths(g, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, [][]core.ID{{"A"}}, paths)
}

func TestAllSimplePaths_Unreachable(t *testing.T) {
	g := buildGraph([]core.ID{"A", "B", "C"}, [2]core.ID{"A", "B"})
	paths, err := dfs.AllSimplePaths(g, "A", "C")
	require.NoError(t, err)
	assert.Empty(t, paths)
}

// TestAllSimplePaths_Diamond checks order and content on A-B-D, A-C-D.
func TestAllSimplePaths_Diamond(t *testing.T) {
	g := buildGraph([]core.ID{"A", "B", "C", "D"},
		[2]core.ID{"A", "B"}, [2]core.ID{"A", "C"},
		[2]core.ID{"B", "D"}, [2]core.ID{"C", "D"},
	)
	paths, err := dfs.AllSimplePaths(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, [][]core.ID{{"A", "B", "D"}, {"A", "C", "D"}}, paths)
}

// TestAllSimplePaths_ParallelEdgesCollapse ensures two edges between a pair
// do not double the path count.
func TestAllSimplePaths_ParallelEdgesCollapse(t *testing.T) {
	g := buildGraph([]core.ID{"1", "2", "3"},
		[2]core.ID{"1", "2"}, [2]core.ID{"2", "1"}, [2]core.ID{"2", "3"}, [2]core.ID{"3", "3"},
	)
	paths, err := dfs.AllSimplePaths(g, "1", "3")
	require.NoError(t, err)
	assert.Equal(t, [][]core.ID{{"1", "2", "3"}}, paths)
}

// TestAllSimplePaths_CompleteGraphCount: K_n has sum_{k=0}^{n-2} (n-2)!/(n-2-k)!
// simple paths between two fixed nodes.
func TestAllSimplePaths_CompleteGraphCount(t *testing.T) {
	want := map[int]int{2: 1, 3: 2, 4: 5, 5: 16, 6: 65}
	for n, count := range want {
		g := buildComplete(n)
		paths, err := dfs.AllSimplePaths(g, "0", core.ID(fmt.Sprint(n-1)))
		require.NoError(t, err)
		assert.Len(t, paths, count, "K_%d", n)

		for _, p := range paths {
			seen := make(map[core.ID]bool, len(p))
			for _, id := range p {
				assert.False(t, seen[id], "repeated node %s in %v", id, p)
				seen[id] = true
			}
		}
	}
}

func TestAllSimplePaths_Limits(t *testing.T) {
	g := buildComplete(5)

	paths, err := dfs.AllSimplePaths(g, "0", "4", dfs.WithMaxPaths(3))
	require.NoError(t, err)
	assert.Len(t, paths, 3)
	assert.Equal(t, []core.ID{"0", "1", "2", "3", "4"}, paths[0])

	paths, err = dfs.AllSimplePaths(g, "0", "4", dfs.WithMaxDepth(2))
	require.NoError(t, err)
	// direct edge plus three 2-edge detours
	assert.Len(t, paths, 4)
	for _, p := range paths {
		assert.LessOrEqual(t, len(p)-1, 2)
	}

	paths, err = dfs.AllSimplePaths(g, "0", "4", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, [][]core.ID{{"0", "4"}}, paths)
}

func TestAllSimplePaths_OnPath(t *testing.T) {
	g := buildComplete(4)
	var seen int
	stop := errors.New("enough")
	_, err := dfs.AllSimplePaths(g, "0", "3", dfs.WithOnPath(func(p []core.ID) error {
		seen++
		p[0] = "mutated"
		if seen == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, seen)

	paths, err := dfs.AllSimplePaths(g, "0", "3", dfs.WithOnPath(func(p []core.ID) error {
		p[0] = "mutated"
		return nil
	}))
	require.NoError(t, err)
	for _, p := range paths {
		assert.Equal(t, core.ID("0"), p[0], "hook receives a copy")
	}
}

func TestAllSimplePaths_ShortestFirst(t *testing.T) {
	// triangle created 1-2, 2-3, 1-3: plain DFS from 1 finds 1-2-3 first
	tri := buildGraph([]core.ID{"1", "2", "3"},
		[2]core.ID{"1", "2"}, [2]core.ID{"2", "3"}, [2]core.ID{"1", "3"},
	)
	paths, err := dfs.AllSimplePaths(tri, "1", "3", dfs.WithMaxPaths(1))
	require.NoError(t, err)
	assert.Equal(t, [][]core.ID{{"1", "2", "3"}}, paths)

	paths, err = dfs.AllSimplePaths(tri, "1", "3", dfs.WithMaxPaths(1), dfs.WithShortestFirst())
	require.NoError(t, err)
	assert.Equal(t, [][]core.ID{{"1", "3"}}, paths)

	g := buildComplete(5)
	paths, err = dfs.AllSimplePaths(g, "0", "4", dfs.WithMaxPaths(2), dfs.WithShortestFirst())
	require.NoError(t, err)
	assert.Equal(t, [][]core.ID{{"0", "4"}, {"0", "1", "4"}}, paths)

	all, err := dfs.AllSimplePaths(g, "0", "4")
	require.NoError(t, err)
	ordered, err := dfs.AllSimplePaths(g, "0", "4", dfs.WithShortestFirst())
	require.NoError(t, err)
	assert.ElementsMatch(t, all, ordered)
	for i := 1; i < len(ordered); i++ {
		assert.LessOrEqual(t, len(ordered[i-1]), len(ordered[i]))
	}

	paths, err = dfs.AllSimplePaths(g, "0", "4", dfs.WithMaxDepth(2), dfs.WithShortestFirst())
	require.NoError(t, err)
	assert.Len(t, paths, 4)

	paths, err = dfs.AllSimplePaths(g, "2", "2", dfs.WithShortestFirst())
	require.NoError(t, err)
	assert.Equal(t, [][]core.ID{{"2"}}, paths)
}

// TestAllSimplePaths_ContainsShortestPath cross-checks both engines: the
// minimum-hop path is one of the simple paths, and none is shorter.
func TestAllSimplePaths_ContainsShortestPath(t *testing.T) {
	ladder := buildGraph([]core.ID{"a0", "a1", "a2", "a3", "b0", "b1", "b2", "b3"},
		[2]core.ID{"a0", "a1"}, [2]core.ID{"a1", "a2"}, [2]core.ID{"a2", "a3"},
		[2]core.ID{"b0", "b1"}, [2]core.ID{"b1", "b2"}, [2]core.ID{"b2", "b3"},
		[2]core.ID{"a0", "b0"}, [2]core.ID{"a1", "b1"}, [2]core.ID{"a2", "b2"}, [2]core.ID{"a3", "b3"},
	)
	cases := []struct {
		name     string
		g        *core.Graph
		src, dst core.ID
	}{
		{"diamond", buildGraph([]core.ID{"A", "B", "C", "D"},
			[2]core.ID{"A", "B"}, [2]core.ID{"A", "C"}, [2]core.ID{"B", "D"}, [2]core.ID{"C", "D"}), "A", "D"},
		{"ladder", ladder, "a0", "b3"},
		{"parallel pair", buildGraph([]core.ID{"x", "y", "z"},
			[2]core.ID{"x", "y"}, [2]core.ID{"x", "y"}, [2]core.ID{"y", "z"}, [2]core.ID{"x", "z"}), "x", "z"},
		{"K5", buildComplete(5), "0", "4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			short, err := bfs.ShortestPath(tc.g, tc.src, tc.dst)
			require.NoError(t, err)
			paths, err := dfs.AllSimplePaths(tc.g, tc.src, tc.dst)
			require.NoError(t, err)
			require.NotEmpty(t, paths)

			assert.Contains(t, paths, short)
			for _, p := range paths {
				assert.Equal(t, tc.src, p[0])
				assert.Equal(t, tc.dst, p[len(p)-1])
				assert.GreaterOrEqual(t, len(p), len(short), "%v shorter than %v", p, short)
				seen := make(map[core.ID]bool, len(p))
				for _, id := range p {
					assert.False(t, seen[id], "repeated node %s in %v", id, p)
					seen[id] = true
				}
			}
		})
	}
}
