// SPDX-License-Identifier: MIT

// Package builder generates random adjacency matrices in the CSV grid
// layout understood by package matrix, for fixtures and load testing.
//
// Construction is deterministic once seeded:
//
//	grid, err := builder.RandomAdjacency(10,
//	    builder.WithSeed(42),
//	    builder.WithWeights(1, 11),
//	    builder.WithUndirected(),
//	)
//	_ = matrix.WriteGrid(os.Stdout, grid)
//
// Node ids come from an IDFn (OneBasedIDFn by default: "1".."n"); see
// IDScheme for the names accepted on the command line.
//
// Errors are the sentinels in errors.go, prefixed with the method name and
// matched with errors.Is.
package builder
