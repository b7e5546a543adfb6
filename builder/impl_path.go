// SPDX-License-Identifier: MIT
// Package: lvsolve/builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   - Path: n ≥ 2, edges (i-1)→i for i=1..n-1.
//   - Cycle: n ≥ 3, the path edges plus (n-1)→0.
//   - Vertices via cfg.idFn in ascending index order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsolve/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return chain(g, cfg, methodPath, n, false)
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return chain(g, cfg, methodCycle, n, true)
	}
}

func chain(g *core.Graph, cfg builderConfig, method string, n int, closed bool) error {
	ids := indexedIDs(n, cfg.idFn)
	if err := addVertices(g, method, ids); err != nil {
		return err
	}
	weighted := g.Weighted()
	for i := 1; i < n; i++ {
		if err := addEdge(g, method, ids[i-1], ids[i], cfg.weight(weighted)); err != nil {
			return err
		}
	}
	if closed {
		return addEdge(g, method, ids[n-1], ids[0], cfg.weight(weighted))
	}

	return nil
}
