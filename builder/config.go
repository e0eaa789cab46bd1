// SPDX-License-Identifier: MIT
// Package: mgraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn      = OneBasedIDFn      ("1","2",...)
//   • rng       = nil               (stochastic builders require WithSeed/WithRand)
//   • weighted  = false             (0/1 cells)
//   • min/max   = 0 / 11            (half-open weight range when weighted)
//   • undirected= false

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	// Node ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “not configured”.
	rng *rand.Rand

	weighted   bool
	minWeight  int
	maxWeight  int
	undirected bool

	// first invalid option, reported by the constructor
	err error
}

// Default weight range, half-open.
const (
	defaultMinWeight = 0
	defaultMaxWeight = 11
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      OneBasedIDFn,
		minWeight: defaultMinWeight,
		maxWeight: defaultMaxWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
