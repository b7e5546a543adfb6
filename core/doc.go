// SPDX-License-Identifier: MIT
//
// Package core provides a small, thread-safe, in-memory Graph and the
// boundary interfaces through which every solver in lvsolve consumes a graph.
//
// The solvers (flow, matching, hld) never touch *Graph directly. They read a
// frozen snapshot through two tiny interfaces:
//
//	type Source[V, E comparable] interface {
//	    Vertices() []V                // duplicate-free, iterated once
//	    Edges() []E                   // duplicate-free, iterated once
//	    EdgeEndpoints(e E) (V, V)     // (from, to)
//	}
//
//	type WeightedSource[V, E comparable] interface {
//	    Source[V, E]
//	    EdgeWeight(e E) float64       // capacity for flow networks
//	}
//
// *Graph implements both with V = string (vertex ID) and E = *Edge, so a
// Graph can be handed to any solver as-is. Other graph libraries plug in via
// the converters package.
//
// Graph configuration (GraphOption):
//
//	– WithDirected(bool)   default orientation of new edges
//	– WithWeighted()       permit non-zero weights; otherwise AddEdge(w≠0) → ErrBadWeight
//	– WithMultiEdges()     permit parallel edges; otherwise → ErrMultiEdgeNotAllowed
//	– WithLoops()          permit self-loops; otherwise → ErrLoopNotAllowed
//
// Determinism:
//
//	Vertices() and Edges() return insertion order. Solvers assign dense ids
//	in that order, so identical build sequences produce identical internal
//	layouts, identical augmenting paths and identical outputs.
//
// Concurrency:
//
//	muVert guards the vertex catalog, muEdgeAdj guards edges and adjacency.
//	Lock order is always muVert → muEdgeAdj.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight on an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
