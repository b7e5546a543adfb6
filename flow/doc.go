// SPDX-License-Identifier: MIT
//
// Package flow computes maximum flows on weighted directed networks with
// Dinic's algorithm (level graph + blocking flows).
//
// The network is any core.WeightedSource: vertices and edges are opaque
// identities, EdgeWeight is the capacity. NewDinic snapshots the network into
// dense arrays once; ComputeMaxFlow then runs entirely on integers and slices.
//
//   - Method: BFS layering from the source over arcs with residual capacity
//     greater than Epsilon, then repeated DFS pushes along admissible arcs
//     (dist[v] == dist[u]+1) until the layering is blocked.
//   - Time:   O(V²·E) in general; O(E·√V) on unit-capacity networks.
//   - Memory: O(V + E) for the arc arrays, layers and current-arc cursors.
//
// # Representation
//
// Every input edge k becomes two companion arcs: 2k (from→to, capacity w) and
// 2k+1 (to→from, capacity 0). The companion of arc e is e^1, and the solver
// keeps flow[e] == -flow[e^1] at all times.
//
// # Usage
//
//	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
//	_, _ = g.AddEdge("s", "a", 3)
//	_, _ = g.AddEdge("a", "t", 2)
//
//	d, err := flow.NewDinic[string, *core.Edge](g)
//	if err != nil { ... }
//	if err = d.ComputeMaxFlow("s", "t"); err != nil { ... }
//	value, _ := d.MaxFlowValue() // 2
//	view, _ := d.Flow()          // read-only edge → flow mapping
//
// # Sequential queries
//
// ComputeMaxFlow does NOT reset arc flows between calls: a second call with a
// different (source, sink) pair augments on top of the residual network left
// by the first one, and reports only the flow it added. Call Reset() first
// when the queries are meant to be independent.
//
// # Errors
//
//	ErrGraphNil         - nil network passed to NewDinic.
//	ErrInvalidEpsilon   - WithEpsilon(eps) with eps <= 0 (or NaN).
//	*EdgeError          - capacity below -Epsilon; unwraps to ErrNegativeCapacity.
//	ErrSourceNotFound   - source is not a vertex of the snapshot.
//	ErrSinkNotFound     - sink is not a vertex of the snapshot.
//	ErrSourceIsSink     - source == sink.
//
// # Concurrency
//
// A Dinic value is not safe for concurrent use. Read-only accessors may run
// concurrently with each other but not with ComputeMaxFlow or Reset.
package flow
