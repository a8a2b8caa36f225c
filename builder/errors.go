// SPDX-License-Identifier: MIT
// Package: greedy/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Factories attach context using `%w` (method name and offending values).
//   • Nothing in this package panics; option constructors record violations.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, extra
// edges) is smaller than the allowed minimum for the requested factory.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic factory requires a non-nil
// *rand.Rand (WithSeed or WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOptionViolation indicates that an Option received a meaningless value
// (WithRand(nil), WithWeightFn(nil), a negative constant weight, an empty
// uniform range).
var ErrOptionViolation = errors.New("builder: invalid option supplied")
