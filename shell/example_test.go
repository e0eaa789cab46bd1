// SPDX-License-Identifier: MIT
package shell_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mgraph/core"
	"github.com/katalvlaran/mgraph/shell"
)

// ExampleShell_Exec replays a short session against the global graph.
func ExampleShell_Exec() {
	sh := shell.New()
	for _, line := range []string{
		"node new 1 10",
		"node new 2 20",
		"edge new 1 2 e1 7",
		"node p 1 2",
		"node rmv 1",
		"edge get e1",
	} {
		res, err := sh.Exec(line)
		if errors.Is(err, core.ErrNotFound) {
			fmt.Println("not found:", err)
			continue
		}
		fmt.Println(res.Text)
	}
	// Output:
	// Node 1 added.
	// Node 2 added.
	// Edge e1 added.
	// [1, e1, 2]
	// Node 1 removed.
	// not found: Edge: edge e1 not found in _all_
}
