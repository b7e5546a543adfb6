// SPDX-License-Identifier: MIT
// Package: lvsolve/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - idFn       = DefaultIDFn        ("0","1","2",...)
//   - rng        = nil                 (stochastic constructors require WithSeed/WithRand)
//   - weightFn   = DefaultWeightFn     (constant DefaultEdgeWeight)
//   - left/right = "L" / "R"

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn

	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig applies opts over the defaults, last one wins. Empty
// partition prefixes fall back to the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		weightFn:    DefaultWeightFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// weight draws the next edge weight, or 0 when g ignores weights.
func (c builderConfig) weight(weighted bool) float64 {
	if !weighted {
		return 0
	}

	return c.weightFn(c.rng)
}
