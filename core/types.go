// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Source is the read-only view a solver takes of a graph at construction time.
// Vertices and Edges must be duplicate-free; EdgeEndpoints must accept every
// edge returned by Edges.
type Source[V, E comparable] interface {
	Vertices() []V
	Edges() []E
	EdgeEndpoints(e E) (from, to V)
}

// WeightedSource extends Source with per-edge weights (flow capacities).
type WeightedSource[V, E comparable] interface {
	Source[V, E]
	EdgeWeight(e E) float64
}

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data.
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
//
// *Edge pointers are stable for the lifetime of the graph and are used as the
// opaque edge identity by the solvers.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost or capacity of the edge.
	Weight float64

	// Directed reports whether the edge is one-way.
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// muVert protects vertices and vertexOrder; muEdgeAdj protects edges,
// edgeOrder and adjacency. nextEdgeID feeds unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	// Configuration flags
	directed   bool
	weighted   bool
	allowMulti bool
	allowLoops bool

	// Storage
	nextEdgeID  uint64
	vertices    map[string]*Vertex
	vertexOrder []string
	edges       map[string]*Edge
	edgeOrder   []*Edge

	// adjacency[from][to] = number of edges stored from→to (mirrors included)
	adjacency map[string]map[string]int
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
