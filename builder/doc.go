// SPDX-License-Identifier: MIT
//
// Package builder produces deterministic core.Graph fixtures for the flow,
// matching and hld solvers: their tests, examples and benchmarks.
//
// A fixture is assembled with BuildGraph from core graph options, builder
// options and an ordered list of Constructors:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(true), core.WithWeighted()},
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 10)},
//		builder.RandomSparse(50, 0.1),
//	)
//
// Constructors:
//   - Path(n), Cycle(n), Star(n): fixed topologies.
//   - CompleteBipartite(n1, n2), RandomBipartite(n1, n2, p): left→right edges
//     between "<left><i>" and "<right><j>" vertices.
//   - RandomSparse(n, p): Erdős–Rényi style sampling over ordered (directed)
//     or unordered (undirected) pairs.
//   - RandomTree(n): random recursive tree, vertex i hangs under a uniformly
//     chosen earlier vertex.
//
// Determinism: for equal options, seed and constructor order the produced
// graph (vertex order, edge order, weights) is identical.
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed) wrapped with the constructor name.
// Option constructors panic on meaningless input; constructors never panic.
package builder
