// SPDX-License-Identifier: MIT
//
// Package lvsolve is a set of graph solvers that run on a dense, index-based
// snapshot of any graph exposing the core.Source boundary:
//
//	flow/       maximum flow and minimum cut (Dinic)
//	matching/   maximum bipartite matching (Hopcroft–Karp)
//	hld/        tree distance and LCA queries (heavy-light decomposition)
//
// Supporting packages:
//
//	core/        thread-safe in-memory graph, the default Source
//	builder/     deterministic fixtures (paths, stars, K_{m,n}, random nets and trees)
//	converters/  gonum graphs in, gonum graphs out
//	graphfile/   YAML graph descriptions
//	cmd/lvsolve  command line front end
//
// Solvers copy what they need at construction time; later changes to the
// source graph are not observed. None of them is safe for concurrent use.
package lvsolve
