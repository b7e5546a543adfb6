// SPDX-License-Identifier: MIT
//
// Package matching computes maximum-cardinality matchings in bipartite graphs
// with the Hopcroft–Karp algorithm.
//
// The graph is any core.Source; edge direction is ignored. The caller names
// the left partition explicitly, every other vertex is on the right, and
// every edge must join the two sides.
//
//   - Method: phases of multi-source BFS from all free left vertices over
//     alternating paths, then vertex-disjoint shortest augmenting paths found
//     by DFS restricted to layer+1 steps.
//   - Time:   O(E·√V).
//   - Memory: O(V + E).
//
// The matching is computed once inside NewHopcroftKarp; the solver is
// read-only afterwards.
//
// # Usage
//
//	g := core.NewGraph()
//	_, _ = g.AddEdge("alice", "x", 0)
//	_, _ = g.AddEdge("bob", "x", 0)
//	_, _ = g.AddEdge("bob", "y", 0)
//
//	hk, err := matching.NewHopcroftKarp[string, *core.Edge](g, []string{"alice", "bob"})
//	if err != nil { ... }
//	hk.Size()            // 2
//	hk.Partner("alice")  // "x", true
//	hk.Matching().All()  // matched edges, one per pair
//
// # Errors
//
//	ErrGraphNil        - nil graph.
//	ErrUnknownVertex   - a left vertex is not a vertex of the graph.
//	ErrDuplicateVertex - a left vertex is listed twice.
//	ErrNotBipartite    - an edge has both endpoints on the same side.
//
// # Concurrency
//
// A HopcroftKarp value is immutable after construction; its accessors are
// safe for concurrent use.
package matching
