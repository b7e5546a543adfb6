// SPDX-License-Identifier: MIT
// Package: lvsolve/builder
//
// impl_random_sparse.go - RandomSparse(n, p).
//
// Model: include each admissible pair independently with probability p.
//   - Undirected: unordered pairs {i,j}, i<j.
//   - Directed: ordered pairs (i,j); self-loops only if g.Looped().
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices), 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required for 0 < p < 1 (else ErrNeedRandSource).
//   - Trial order: i asc, then j asc; deterministic for a fixed seed.
//
// Complexity: O(n²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsolve/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi style graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if err := checkProbability(methodRandomSparse, p, cfg); err != nil {
			return err
		}

		ids := indexedIDs(n, cfg.idFn)
		if err := addVertices(g, methodRandomSparse, ids); err != nil {
			return err
		}

		weighted := g.Weighted()
		loops := g.Looped()
		directed := g.Directed()
		for i := 0; i < n; i++ {
			j0 := i + 1
			if directed {
				j0 = 0
			}
			for j := j0; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if !trial(cfg, p) {
					continue
				}
				if err := addEdge(g, methodRandomSparse, ids[i], ids[j], cfg.weight(weighted)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
