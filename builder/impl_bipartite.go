// SPDX-License-Identifier: MIT
// Package: lvsolve/builder
//
// impl_bipartite.go - CompleteBipartite(n1,n2) and RandomBipartite(n1,n2,p).
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left IDs "{leftPrefix}{i}", right IDs "{rightPrefix}{j}"; all left
//     vertices are inserted before the right ones.
//   - Edges always run left→right, emitted i asc over L, then j asc over R.
//   - RandomBipartite keeps each cross pair with probability p and needs an
//     RNG for 0 < p < 1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsolve/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	methodRandomBipartite   = "RandomBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		return bipartite(g, cfg, methodCompleteBipartite, n1, n2, 1)
	}
}

// RandomBipartite returns a Constructor that samples each cross pair of
// K_{n1,n2} independently with probability p.
func RandomBipartite(n1, n2 int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		return bipartite(g, cfg, methodRandomBipartite, n1, n2, p)
	}
}

// LeftIDs returns the left partition IDs CompleteBipartite/RandomBipartite
// produce for n vertices under opts.
func LeftIDs(n int, opts ...BuilderOption) []string {
	return prefixedIDs(n, newBuilderConfig(opts...).leftPrefix)
}

func bipartite(g *core.Graph, cfg builderConfig, method string, n1, n2 int, p float64) error {
	if n1 < minPartitionSize || n2 < minPartitionSize {
		return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
			method, n1, n2, minPartitionSize, ErrTooFewVertices)
	}
	if err := checkProbability(method, p, cfg); err != nil {
		return err
	}

	left := prefixedIDs(n1, cfg.leftPrefix)
	right := prefixedIDs(n2, cfg.rightPrefix)
	if err := addVertices(g, method, left); err != nil {
		return err
	}
	if err := addVertices(g, method, right); err != nil {
		return err
	}

	weighted := g.Weighted()
	for _, u := range left {
		for _, v := range right {
			if !trial(cfg, p) {
				continue
			}
			if err := addEdge(g, method, u, v, cfg.weight(weighted)); err != nil {
				return err
			}
		}
	}

	return nil
}
