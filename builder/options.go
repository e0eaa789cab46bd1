// SPDX-License-Identifier: MIT
// Package: mgraph/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Invalid values are recorded and surface as errors from the
//     constructor, since sizes and ranges usually come from user input.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic node ID generator: idx -> string.
// A nil fn surfaces as ErrOptionViolation.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn == nil {
			c.err = fmt.Errorf("%w: nil IDFn", ErrOptionViolation)
			return
		}
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// A nil r surfaces as ErrOptionViolation.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r == nil {
			c.err = fmt.Errorf("%w: nil *rand.Rand", ErrOptionViolation)
			return
		}
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeights switches to weighted cells drawn uniformly from [min, max).
// min >= max surfaces as ErrInvalidRange.
func WithWeights(min, max int) BuilderOption {
	return func(c *builderConfig) {
		if min >= max {
			c.err = fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, min, max)
			return
		}
		c.weighted = true
		c.minWeight, c.maxWeight = min, max
	}
}

// WithUndirected symmetrizes the matrix: cell (i,j) and (j,i) both become
// floor((m[i][j] + m[j][i]) / 2).
func WithUndirected() BuilderOption {
	return func(c *builderConfig) {
		c.undirected = true
	}
}
