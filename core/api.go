// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters and the Source/WeightedSource implementation.
// Policy:
//   - No algorithms or hidden state here.
//   - Every getter takes the read lock of the catalog it inspects.

package core

// Compile-time proof that *Graph can be handed to every solver.
var _ WeightedSource[string, *Edge] = (*Graph)(nil)

// Nilable is implemented by pointer-backed graphs so that a typed nil stored
// inside a Source interface can be detected without reflection.
type Nilable interface {
	IsNil() bool
}

// IsNil reports whether the receiver is a nil *Graph.
func (g *Graph) IsNil() bool { return g == nil }

// IsNilSource reports whether src is a nil interface or wraps a nil Nilable.
func IsNilSource(src any) bool {
	if src == nil {
		return true
	}
	if n, ok := src.(Nilable); ok {
		return n.IsNil()
	}

	return false
}

// Directed reports the graph-wide default directedness applied to new edges.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Weighted reports whether non-zero weights are permitted.
// Complexity: O(1).
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// EdgeEndpoints returns (e.From, e.To).
//
// The orientation is the one given to AddEdge, also for undirected edges;
// the matching and tree solvers treat it as an unordered pair.
// Complexity: O(1).
func (g *Graph) EdgeEndpoints(e *Edge) (from, to string) {
	return e.From, e.To
}

// EdgeWeight returns e.Weight (capacity in flow networks).
// Complexity: O(1).
func (g *Graph) EdgeWeight(e *Edge) float64 {
	return e.Weight
}
