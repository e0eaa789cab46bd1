// SPDX-License-Identifier: MIT

package shell

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mgraph/core"
)

// autoEdgeID asks edge new to generate the id with Graph.GenerateEdgeID.
const autoEdgeID = "auto"

// edge runs an edge sub-command against g.
func (s *Shell) edge(g *core.Graph, args []string) (Result, error) {
	if len(args) == 0 {
		return Result{}, usageError("edge list|new|get|up|rmv ...")
	}

	sub, rest := subcommand(args[0]), args[1:]
	switch sub {
	case "list":
		return Result{Text: EdgeList(g)}, nil

	case "new":
		if len(rest) < 4 {
			return Result{}, usageError("edge new <i> <j> <eid|auto> <value..>")
		}
		i, j, eid := core.ID(rest[0]), core.ID(rest[1]), core.ID(rest[2])
		if eid == autoEdgeID {
			eid = g.GenerateEdgeID(i, j)
		}
		if err := g.AddEdge(i, j, eid, joinValue(rest[3:])); err != nil {
			return Result{}, err
		}
		return Result{Text: fmt.Sprintf("Edge %s added.", eid)}, nil

	case "get":
		switch len(rest) {
		case 1:
			e, err := g.Edge(core.ID(rest[0]))
			if err != nil {
				return Result{}, err
			}
			return Result{Text: string(e.Value)}, nil
		case 2:
			return edgesBetween(g, core.ID(rest[0]), core.ID(rest[1]))
		}
		return Result{}, usageError("edge get <eid> | edge get <i> <j>")

	case "up":
		if len(rest) < 2 {
			return Result{}, usageError("edge up <eid> <value..> | edge up <i> <j> <value..>")
		}
		// an existing edge id wins over the pair form
		if eid := core.ID(rest[0]); g.HasEdge(eid) || len(rest) == 2 {
			if err := g.UpdateEdge(eid, joinValue(rest[1:])); err != nil {
				return Result{}, err
			}
			return Result{Text: fmt.Sprintf("Edge %s updated.", eid)}, nil
		}
		eid, err := g.UpdateEdgeBetween(core.ID(rest[0]), core.ID(rest[1]), joinValue(rest[2:]))
		if err != nil {
			return Result{}, err
		}
		return Result{Text: fmt.Sprintf("Edge %s updated.", eid)}, nil

	case "rmv":
		if len(rest) != 1 {
			return Result{}, usageError("edge rmv <eid>")
		}
		eid := core.ID(rest[0])
		if err := g.RemoveEdge(eid); err != nil {
			return Result{}, err
		}
		return Result{Text: fmt.Sprintf("Edge %s removed.", eid)}, nil
	}

	return Result{}, unknownError("edge " + args[0])
}

// edgesBetween renders every edge joining i and j, "<eid>: <value>" per line.
func edgesBetween(g *core.Graph, i, j core.ID) (Result, error) {
	edges := g.EdgesBetween(i, j)
	if len(edges) == 0 {
		_, err := g.EdgeBetween(i, j)
		return Result{}, err
	}
	lines := make([]string, 0, len(edges))
	for _, e := range edges {
		lines = append(lines, fmt.Sprintf("%s: %s", e.ID, e.Value))
	}

	return Result{Text: strings.Join(lines, "\n")}, nil
}

// EdgeList renders g's edges grouped by (From, To) in creation order, or
// "no edges":
//
//	1 -> 2: [ e1: 7 , e2: 3 ]
//	  -> 3: [ 1_3_1: 4 ]
func EdgeList(g *core.Graph) string {
	edges := g.Edges()
	if len(edges) == 0 {
		return "no edges"
	}

	type pair struct{ from, to core.ID }
	var order []pair
	groups := make(map[pair][]string)
	for _, e := range edges {
		p := pair{e.From, e.To}
		if _, seen := groups[p]; !seen {
			order = append(order, p)
		}
		groups[p] = append(groups[p], fmt.Sprintf("%s: %s", e.ID, e.Value))
	}

	lines := make([]string, 0, len(order))
	for k, p := range order {
		lead := string(p.from) + " "
		if k > 0 && order[k-1].from == p.from {
			lead = strings.Repeat(" ", len(lead))
		}
		lines = append(lines, fmt.Sprintf("%s-> %s: [ %s ]", lead, p.to, strings.Join(groups[p], " , ")))
	}

	return strings.Join(lines, "\n")
}
