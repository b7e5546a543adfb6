// SPDX-License-Identifier: MIT
//
// Package converters bridges gonum graphs and the solvers.
//
// Import: FromDirected and FromUndirected wrap a gonum graph.Directed or
// graph.Undirected as a core.WeightedSource[int64, Pair] that every solver
// accepts. Node and edge order is sorted by node ID so dense ids are stable.
// Weights come from graph.Weighted when the graph implements it, otherwise
// every edge weighs DefaultWeight.
//
// Export: ToDirected and ToUndirected copy a *core.Graph into gonum
// weighted simple graphs and return the vertex→node mapping. Parallel edges
// are merged by summing their weights; self-loops are rejected.
//
//	src := converters.FromDirected(gonumGraph)
//	d, err := flow.NewDinic[int64, converters.Pair](src)
package converters
