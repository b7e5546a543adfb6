// SPDX-License-Identifier: MIT
// Package: lvsolve/builder
//
// impl_star.go - Star(n).
//
// Contract:
//   - n ≥ 2: hub CenterVertexID plus leaves cfg.idFn(1..n-1).
//   - Emits Center→leaf spokes by increasing leaf index.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsolve/core"
)

// CenterVertexID is the hub of a Star.
const CenterVertexID = "Center"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with n vertices.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodStar, []string{CenterVertexID}); err != nil {
			return err
		}

		weighted := g.Weighted()
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := addVertices(g, methodStar, []string{leaf}); err != nil {
				return err
			}
			if err := addEdge(g, methodStar, CenterVertexID, leaf, cfg.weight(weighted)); err != nil {
				return err
			}
		}

		return nil
	}
}
