// SPDX-License-Identifier: MIT
// Package: lvsolve/builder
//
// helpers.go - shared insertion helpers with uniform error context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsolve/core"
)

// addVertices inserts ids in order, wrapping the first failure with method.
func addVertices(g *core.Graph, method string, ids []string) error {
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge inserts u→v with weight w, wrapping a failure with method.
func addEdge(g *core.Graph, method, u, v string, w float64) error {
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// indexedIDs returns idFn(0..n-1).
func indexedIDs(n int, idFn IDFn) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = idFn(i)
	}

	return ids
}

// prefixedIDs returns "<prefix>0".."<prefix>(n-1)".
func prefixedIDs(n int, prefix string) []string {
	return indexedIDs(n, SymbolNumberIDFn(prefix))
}

// checkProbability validates p ∈ [0,1] and that an RNG is present when the
// outcome is actually random.
func checkProbability(method string, p float64, cfg builderConfig) error {
	if !(p >= 0 && p <= 1) {
		return fmt.Errorf("%s: p=%g not in [0,1]: %w", method, p, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > 0 && p < 1 {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}

// trial reports whether a Bernoulli(p) trial succeeds. p ∈ {0,1} is decided
// without consuming randomness.
func trial(cfg builderConfig, p float64) bool {
	switch p {
	case 0:
		return false
	case 1:
		return true
	}

	return cfg.rng.Float64() < p
}
