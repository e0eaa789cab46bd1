// SPDX-License-Identifier: MIT
// Package: mgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with builderErrorf, which keeps the
//     sentinel reachable through %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that the requested matrix size is below 1.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidRange indicates a weight range with min >= max.
var ErrInvalidRange = errors.New("builder: invalid weight range")

// ErrNeedRandSource indicates that no RNG was configured (WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOptionViolation indicates that a WithX(...) option received a
// meaningless value (e.g. WithIDScheme(nil)).
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf prefixes a sentinel-carrying message with the method name:
// "<Method>: <formatted message>".
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
