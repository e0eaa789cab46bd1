// SPDX-License-Identifier: MIT
// Package dfs defines types and options for depth-first enumeration of
// simple paths, including path and depth limits and a per-path hook.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mgraph/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to AllSimplePaths.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// errStop aborts the walk once MaxPaths paths were collected.
	errStop = errors.New("dfs: stop")
)

// Option configures optional behavior of AllSimplePaths.
type Option func(*PathOptions)

// PathOptions holds configurable parameters for path enumeration.
// The zero limits mean "unbounded": the walk is exhaustive and its worst
// case is exponential in the number of nodes on dense graphs.
type PathOptions struct {
	// MaxPaths, if > 0, stops the walk after that many paths.
	MaxPaths int

	// MaxDepth, if > 0, discards paths with more than MaxDepth edges.
	MaxDepth int

	// ShortestFirst enumerates paths by increasing number of edges, so a
	// MaxPaths cap keeps the shortest ones. The graph is walked once per length.
	ShortestFirst bool

	// OnPath, if non-nil, is invoked for each path as it is found. The slice
	// is a private copy. Returning an error aborts the walk with that error.
	OnPath func(path []core.ID) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns PathOptions with no limits and no hook.
func DefaultOptions() PathOptions {
	return PathOptions{}
}

// WithMaxPaths caps the number of collected paths. n == 0 means unbounded;
// n < 0 is an ErrOptionViolation.
func WithMaxPaths(n int) Option {
	return func(o *PathOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}

// WithMaxDepth caps the number of edges per path. d == 0 means unbounded;
// d < 0 is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *PathOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithShortestFirst orders the enumeration by path length.
func WithShortestFirst() Option {
	return func(o *PathOptions) {
		o.ShortestFirst = true
	}
}

// WithOnPath installs fn as a per-path hook.
func WithOnPath(fn func(path []core.ID) error) Option {
	return func(o *PathOptions) {
		o.OnPath = fn
	}
}
