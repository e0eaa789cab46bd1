// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/mgraph/core"

// Option configures ImportAdjacency.
type Option func(o *options)

type options struct {
	nodeValue func(id core.ID) core.Value
	skipZero  bool
}

func defaultOptions() options {
	return options{
		nodeValue: func(id core.ID) core.Value { return core.Value(id) },
		skipZero:  true,
	}
}

// WithNodeValue sets the value given to each imported node. By default a
// node's value is its own id.
func WithNodeValue(fn func(id core.ID) core.Value) Option {
	return func(o *options) {
		if fn != nil {
			o.nodeValue = fn
		}
	}
}

// WithZeroEdges imports numeric-zero cells as edges instead of skipping them.
func WithZeroEdges() Option {
	return func(o *options) {
		o.skipZero = false
	}
}
