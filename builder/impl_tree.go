// SPDX-License-Identifier: MIT
// Package: lvsolve/builder
//
// impl_tree.go - RandomTree(n).
//
// Model: random recursive tree. Vertex i (i ≥ 1) is attached under a parent
// drawn uniformly from 0..i-1, so vertex 0 is the root and every edge runs
// parent→child. The result is connected with exactly n-1 edges.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - An RNG is required for n ≥ 3 (else ErrNeedRandSource).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsolve/core"
)

const (
	methodRandomTree = "RandomTree"
	minTreeNodes     = 1
)

// RandomTree returns a Constructor that builds a random recursive tree.
func RandomTree(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minTreeNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomTree, n, minTreeNodes, ErrTooFewVertices)
		}
		if n > 2 && cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomTree, ErrNeedRandSource)
		}

		ids := indexedIDs(n, cfg.idFn)
		if err := addVertices(g, methodRandomTree, ids); err != nil {
			return err
		}
		weighted := g.Weighted()
		for i := 1; i < n; i++ {
			parent := 0
			if i > 1 {
				parent = cfg.rng.Intn(i)
			}
			if err := addEdge(g, methodRandomTree, ids[parent], ids[i], cfg.weight(weighted)); err != nil {
				return err
			}
		}

		return nil
	}
}
