// SPDX-License-Identifier: MIT
// File: types.go
// Role: Sentinel errors, traversal options and the BFSResult tree.

package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mgraph/core"
)

var (
	// ErrStartVertexNotFound reports an unknown start node; matches core.ErrNotFound.
	ErrStartVertexNotFound = fmt.Errorf("bfs: start vertex: %w", core.ErrNotFound)

	// ErrGraphNil reports a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation reports an invalid Option, surfaced when BFS starts.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option tunes a traversal.
type Option func(*Options)

// Options holds the traversal limits and the visit hook.
type Options struct {
	// MaxDepth bounds the distance from the start (inclusive); 0 = unbounded.
	MaxDepth int

	// OnVisit runs once per node in visit order with its distance from the
	// start. A non-nil error aborts the traversal.
	OnVisit func(id core.ID, depth int) error

	err error
}

// DefaultOptions returns an unbounded traversal with a no-op hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(core.ID, int) error { return nil },
	}
}

// WithMaxDepth stops expanding nodes at depth d. d == 0 lifts the limit;
// d < 0 is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit installs the visit hook. A nil fn keeps the default.
func WithOnVisit(fn func(id core.ID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// BFSResult is the traversal tree rooted at Start.
type BFSResult struct {
	// Start is the root of the traversal.
	Start core.ID

	// Order lists nodes in visit sequence.
	Order []core.ID

	// Depth maps every reached node to its hop distance from Start.
	Depth map[core.ID]int

	// Parent maps every reached node except Start to its discoverer.
	Parent map[core.ID]core.ID
}

// PathTo walks Parent links back from dest and returns Start..dest.
//
// Errors: core.ErrNoPath when dest was not reached.
// Complexity: O(depth of dest).
func (r *BFSResult) PathTo(dest core.ID) ([]core.ID, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, core.NoPathError("PathTo", r.Start, dest, "")
	}

	path := make([]core.ID, d+1)
	for cur := dest; d >= 0; d-- {
		path[d] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
