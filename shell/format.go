// SPDX-License-Identifier: MIT

package shell

import (
	"math"
	"strings"

	"github.com/katalvlaran/mgraph/core"
)

// edgePicker chooses the edge shown between two consecutive path nodes.
type edgePicker func(g *core.Graph, a, b core.ID) (core.ID, bool)

// firstEdge picks the first-created edge, as EdgeBetween does.
func firstEdge(g *core.Graph, a, b core.ID) (core.ID, bool) {
	e, err := g.EdgeBetween(a, b)
	if err != nil {
		return "", false
	}

	return e.ID, true
}

// cheapestEdge picks the edge with the smallest numeric value, first-created
// on ties; this is the edge the weighted engine relaxed.
func cheapestEdge(g *core.Graph, a, b core.ID) (core.ID, bool) {
	var (
		best  core.ID
		bestW = math.Inf(1)
		found bool
	)
	for _, e := range g.EdgesBetween(a, b) {
		w, err := e.Value.Float()
		if err != nil {
			continue
		}
		if !found || w < bestW {
			best, bestW, found = e.ID, w, true
		}
	}

	return best, found
}

// formatPath interleaves nodes with the edges joining them: "[1, e1, 2]".
func formatPath(g *core.Graph, path []core.ID, pick edgePicker) string {
	parts := make([]string, 0, 2*len(path))
	for k, id := range path {
		if k > 0 {
			if eid, ok := pick(g, path[k-1], id); ok {
				parts = append(parts, string(eid))
			}
		}
		parts = append(parts, string(id))
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// joinIDs joins ids with sep.
func joinIDs(ids []core.ID, sep string) string {
	parts := make([]string, len(ids))
	for k, id := range ids {
		parts[k] = string(id)
	}

	return strings.Join(parts, sep)
}
