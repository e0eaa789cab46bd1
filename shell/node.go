// SPDX-License-Identifier: MIT

package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/mgraph/bfs"
	"github.com/katalvlaran/mgraph/core"
	"github.com/katalvlaran/mgraph/dfs"
	"github.com/katalvlaran/mgraph/dijkstra"
)

// node runs a node sub-command against g.
func (s *Shell) node(g *core.Graph, args []string) (Result, error) {
	if len(args) == 0 {
		return Result{}, usageError("node list|new|get|up|rmv|nbr|n|p|wp|allp ...")
	}

	sub, rest := subcommand(args[0]), args[1:]
	switch sub {
	case "list":
		return nodeList(g), nil

	case "new":
		if len(rest) < 2 {
			return Result{}, usageError("node new <id> <value..>")
		}
		id := core.ID(rest[0])
		if err := g.AddNode(id, joinValue(rest[1:])); err != nil {
			return Result{}, err
		}
		return Result{Text: fmt.Sprintf("Node %s added.", id)}, nil

	case "get":
		if len(rest) != 1 {
			return Result{}, usageError("node get <id>")
		}
		n, err := g.Node(core.ID(rest[0]))
		if err != nil {
			return Result{}, err
		}
		return Result{Text: string(n.Value)}, nil

	case "up":
		if len(rest) < 2 {
			return Result{}, usageError("node up <id> <value..>")
		}
		id := core.ID(rest[0])
		if err := g.UpdateNode(id, joinValue(rest[1:])); err != nil {
			return Result{}, err
		}
		return Result{Text: fmt.Sprintf("Node %s updated.", id)}, nil

	case "rmv":
		if len(rest) != 1 {
			return Result{}, usageError("node rmv <id>")
		}
		id := core.ID(rest[0])
		if err := g.RemoveNode(id); err != nil {
			return Result{}, err
		}
		return Result{Text: fmt.Sprintf("Node %s removed.", id)}, nil

	case "nbr":
		if len(rest) == 2 {
			radius, err := strconv.Atoi(rest[1])
			if err != nil || radius < 1 {
				return Result{}, usageError("node nbr <id> [radius]")
			}
			return rings(g, core.ID(rest[0]), radius)
		}
		if len(rest) != 1 {
			return Result{}, usageError("node nbr <id> [radius]")
		}
		nbrs, err := g.Neighbors(core.ID(rest[0]))
		if err != nil {
			return Result{}, err
		}
		if len(nbrs) == 0 {
			return Result{Text: "no neighbour"}, nil
		}
		return Result{Text: joinIDs(nbrs, ", ")}, nil

	case "n":
		if len(rest) != 1 {
			return Result{}, usageError("node n <id>")
		}
		cnt, err := g.NeighborCount(core.ID(rest[0]))
		if err != nil {
			return Result{}, err
		}
		return Result{Text: strconv.Itoa(cnt)}, nil

	case "p":
		if len(rest) != 2 {
			return Result{}, usageError("node p <src> <dst>")
		}
		path, err := bfs.ShortestPath(g, core.ID(rest[0]), core.ID(rest[1]))
		if err != nil {
			return Result{}, err
		}
		return Result{Text: formatPath(g, path, firstEdge), Paths: [][]core.ID{path}}, nil

	case "wp":
		if len(rest) != 2 {
			return Result{}, usageError("node wp <src> <dst>")
		}
		path, cost, err := dijkstra.ShortestPath(g, core.ID(rest[0]), core.ID(rest[1]))
		if err != nil {
			return Result{}, err
		}
		text := fmt.Sprintf("%s cost=%s", formatPath(g, path, cheapestEdge), strconv.FormatFloat(cost, 'g', -1, 64))
		return Result{Text: text, Paths: [][]core.ID{path}}, nil

	case "allp":
		if len(rest) != 2 {
			return Result{}, usageError("node allp <src> <dst>")
		}
		return s.allPaths(g, core.ID(rest[0]), core.ID(rest[1]))
	}

	return Result{}, unknownError("node " + args[0])
}

// nodeList renders "Node <id>: <value>" lines in insertion order.
func nodeList(g *core.Graph) Result {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return Result{Text: "no nodes"}
	}
	lines := make([]string, 0, len(nodes))
	for _, n := range nodes {
		lines = append(lines, fmt.Sprintf("Node %s: %s", n.ID, n.Value))
	}

	return Result{Text: strings.Join(lines, "\n")}
}

// rings lists the nodes within radius hops of id, one "<hops>: ids" line
// per distance, in BFS visit order.
func rings(g *core.Graph, id core.ID, radius int) (Result, error) {
	if !g.HasNode(id) {
		return Result{}, core.NotFoundError("Neighbors", core.EntityNode, string(id), g.Scope())
	}

	var byDepth [][]core.ID
	collect := func(n core.ID, d int) error {
		if d == 0 {
			return nil
		}
		for len(byDepth) < d {
			byDepth = append(byDepth, nil)
		}
		byDepth[d-1] = append(byDepth[d-1], n)
		return nil
	}
	if _, err := bfs.BFS(g, id, bfs.WithMaxDepth(radius), bfs.WithOnVisit(collect)); err != nil {
		return Result{}, err
	}
	if len(byDepth) == 0 {
		return Result{Text: "no neighbour"}, nil
	}

	lines := make([]string, len(byDepth))
	for d, ids := range byDepth {
		lines[d] = fmt.Sprintf("%d: %s", d+1, joinIDs(ids, ", "))
	}

	return Result{Text: strings.Join(lines, "\n")}, nil
}

// allPaths lists simple paths shortest first, "<hops> : [path]" per line.
// A max_paths cap keeps the shortest ones.
func (s *Shell) allPaths(g *core.Graph, src, dst core.ID) (Result, error) {
	paths, err := dfs.AllSimplePaths(g, src, dst, dfs.WithMaxPaths(s.maxPaths), dfs.WithShortestFirst())
	if err != nil {
		return Result{}, err
	}
	if len(paths) == 0 {
		return Result{Text: fmt.Sprintf("no path from %s -> %s", src, dst)}, nil
	}

	lines := make([]string, 0, len(paths)+1)
	for _, p := range paths {
		lines = append(lines, fmt.Sprintf("%d : %s", len(p)-1, formatPath(g, p, firstEdge)))
	}
	if s.maxPaths > 0 && len(paths) == s.maxPaths {
		lines = append(lines, fmt.Sprintf("(stopped after %d paths)", s.maxPaths))
	}

	return Result{Text: strings.Join(lines, "\n"), Paths: paths}, nil
}
