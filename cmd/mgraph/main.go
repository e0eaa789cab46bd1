// SPDX-License-Identifier: MIT

// Command mgraph is an interactive in-memory multi-graph shell with
// clusters, path queries and CSV adjacency import.
package main

import (
	"context"
	"os"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
