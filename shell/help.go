// SPDX-License-Identifier: MIT

package shell

const helpText = `Working view (global graph or the isolated cluster)
  node list | new <id> <val..> | get <id> | up <id> <val..> | rmv <id>
  node nbr <id> [r]      neighbour ids; with r, every node within r hops by distance
  node n   <id>          neighbour count
  node p    <s> <d>      shortest path (fewest hops)
  node wp   <s> <d>      shortest path by numeric edge values
  node allp <s> <d>      all simple paths, shortest first

  edge list
  edge new <i> <j> <eid|auto> <val..>
  edge get <eid> | get <i> <j>
  edge up  <eid> <val..> | up <i> <j> <val..>
  edge rmv <eid>

Clusters
  cluster list
  cluster new <ids..> <name> <val..>
  cluster get <name>     cluster rmv <name>
  cluster iso <name>     isolate
  cluster iso            back to the global graph
  cluster open <csv> <name>

Explicit scope
  <cluster> node ...     <cluster> edge ...

CSV adjacency matrix
  Row 0 and column 0 (after the blank corner) list the node ids in the same
  order. Every non-empty, non-zero numeric cell creates one edge valued with
  the cell text.

Aliases: n e c, rmb, neigh.   help   exit | quit | q`
