// SPDX-License-Identifier: MIT
// Package: lvsolve/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and PANIC on meaningless inputs (nil
// functions, nil RNG, bad weight ranges). Constructors themselves never panic.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator used by the indexed topologies.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. It is consulted only
// when the target graph is weighted. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConstantWeight sets a fixed edge weight; see ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight samples weights from U[min,max); see UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithPartitionPrefix sets bipartite side labels. Empty values keep the
// defaults "L" and "R".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}
