// SPDX-License-Identifier: MIT
//
// Package hld answers distance and lowest-common-ancestor queries on a tree
// through a heavy-light decomposition.
//
// The input is any core.Source whose edges, read as undirected, form a
// single tree. The first vertex reported by Vertices() is the root.
//
// Preprocessing (in New, O(V)):
//  1. Iterative DFS from the root: parent, depth, preorder, tree check.
//  2. Subtree sizes bottom-up; a child holding at least half of its parent's
//     subtree is heavy (at most one per vertex).
//  3. Chain heads top-down: a heavy vertex inherits its parent's head, any
//     other vertex heads a new chain.
//
// Queries climb from the deeper chain head to its parent until both vertices
// share a chain, so every query crosses O(log V) chains.
//
//	d, err := hld.New[string, *core.Edge](g)
//	if err != nil { ... }
//	dist, _ := d.Distance("5", "12")
//	lca, _ := d.LCA("5", "12")
//
// # Errors
//
//	ErrGraphNil       - nil graph.
//	ErrEmptyTree      - the graph has no vertices.
//	ErrNotTree        - a cycle (including self-loops and parallel edges) or
//	                    a vertex unreachable from the root.
//	ErrVertexNotFound - a query vertex is not in the tree.
//
// A Decomposition is immutable after New; all queries are safe for
// concurrent use.
package hld
