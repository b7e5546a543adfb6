// SPDX-License-Identifier: MIT
// Package: lvsolve/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w
// ("RandomSparse: p=1.5 not in [0,1]: builder: probability out of range").

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the constructor minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without
	// WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates the fixture could not be assembled
	// (nil constructor, rejected insertion).
	ErrConstructFailed = errors.New("builder: construction failed")
)
