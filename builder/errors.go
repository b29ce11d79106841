// SPDX-License-Identifier: MIT
// Package: parlath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Constructors attach context with %w ("<Method>: ...: %w").
//   - Option constructors panic on meaningless values; constructors never panic.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, degree)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not emit its topology,
// typically because the target graph rejected an edge.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates a parameter combination that is only detectable
// when the constructor runs.
var ErrOptionViolation = errors.New("builder: invalid option value")
