// SPDX-License-Identifier: MIT

package shell

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/mgraph/core"
)

// csvValuePrefix prefixes the value of clusters imported by cluster open.
const csvValuePrefix = "CSV:"

// cluster runs a cluster sub-command against the registry.
func (s *Shell) cluster(args []string) (Result, error) {
	if len(args) == 0 {
		return Result{}, usageError("cluster list|new|get|rmv|iso|open ...")
	}

	sub, rest := subcommand(args[0]), args[1:]
	switch sub {
	case "list":
		return s.clusterList(), nil

	case "new":
		return s.clusterNew(rest)

	case "get":
		if len(rest) != 1 {
			return Result{}, usageError("cluster get <name>")
		}
		c, err := s.reg.Get(rest[0])
		if err != nil {
			return Result{}, err
		}
		return Result{Text: describe(c.Value, c.Graph)}, nil

	case "rmv":
		if len(rest) != 1 {
			return Result{}, usageError("cluster rmv <name>")
		}
		if rest[0] == s.reg.GlobalName() {
			return Result{}, core.MalformedError("Remove", core.EntityCluster, rest[0], "", "the global graph cannot be removed")
		}
		if err := s.reg.Remove(rest[0]); err != nil {
			return Result{}, err
		}
		return Result{Text: fmt.Sprintf("Cluster '%s' removed.", rest[0])}, nil

	case "iso":
		switch {
		case len(rest) == 0, len(rest) == 1 && rest[0] == s.reg.GlobalName():
			s.reg.Deisolate()
			return Result{Text: "Isolation cleared."}, nil
		case len(rest) == 1:
			if err := s.reg.Isolate(rest[0]); err != nil {
				return Result{}, err
			}
			return Result{Text: fmt.Sprintf("Cluster '%s' isolated.", rest[0])}, nil
		}
		return Result{}, usageError("cluster iso [<name>]")

	case "open":
		if len(rest) != 2 {
			return Result{}, usageError("cluster open <file.csv> <name>")
		}
		path, name := rest[0], rest[1]
		_, sum, err := s.reg.ImportFile(name, core.Value(csvValuePrefix+path), path)
		if err != nil {
			return Result{}, errors.WithMessagef(err, "cluster open %s", path)
		}
		return Result{Text: sum.String() + "."}, nil
	}

	return Result{}, unknownError("cluster " + args[0])
}

// clusterNew parses "<ids..> <name> <value..>". Leading tokens are node ids
// while they are numeric or name a node of the working view; the first other
// token is the cluster name and the rest its value. Every id must be a node of
// the working view, checked before the registry is touched.
func (s *Shell) clusterNew(rest []string) (Result, error) {
	const synopsis = "cluster new <ids..> <name> <value..>"

	active := s.reg.Active()
	k := 0
	for k < len(rest) && (isNumeric(rest[k]) || active.HasNode(core.ID(rest[k]))) {
		k++
	}
	if k == 0 || k+1 >= len(rest) {
		return Result{}, usageError(synopsis)
	}

	ids := make([]core.ID, k)
	for i := range ids {
		ids[i] = core.ID(rest[i])
		if !active.HasNode(ids[i]) {
			return Result{}, core.NotFoundError("Create", core.EntityNode, rest[i], s.reg.View())
		}
	}
	name := rest[k]
	if _, err := s.reg.Create(name, joinValue(rest[k+1:]), ids...); err != nil {
		return Result{}, err
	}

	return Result{Text: fmt.Sprintf("Cluster '%s' added.", name)}, nil
}

// clusterList renders the global graph first, then clusters in creation order.
func (s *Shell) clusterList() Result {
	lines := []string{fmt.Sprintf("%s: %s", s.reg.GlobalName(), describe("", s.reg.Global()))}
	for _, c := range s.reg.List() {
		lines = append(lines, fmt.Sprintf("%s: %s", c.Name, describe(c.Value, c.Graph)))
	}
	if name, ok := s.reg.Isolated(); ok {
		lines = append(lines, fmt.Sprintf("(isolated: %s)", name))
	}

	return Result{Text: strings.Join(lines, "\n")}
}

// describe renders "val=<v> nodes=[..] edges=<n>".
func describe(value core.Value, g *core.Graph) string {
	var b strings.Builder
	if value != "" {
		fmt.Fprintf(&b, "val=%s ", value)
	}
	fmt.Fprintf(&b, "nodes=[%s] edges=%d", joinIDs(g.NodeIDs(), " "), g.EdgeCount())

	return b.String()
}

// isNumeric reports whether tok is a non-empty run of ASCII digits.
func isNumeric(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
