// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/GetEdge/Edges/EdgeCount/Neighbors.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to with the graph's default directedness,
// creating missing endpoints on the fly, and returns its ID.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check multi-edge constraint.
//  4. Generate eid atomically, store the edge, link adjacency (mirror if undirected).
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.Weighted() && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.Looped() {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}
	directed := g.Directed()
	multi := g.Multigraph()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !multi && g.adjacency[from][to] > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: directed}
	g.edges[eid] = e
	g.edgeOrder = append(g.edgeOrder, e)

	g.adjacency[from][to]++
	if !directed && from != to {
		g.adjacency[to][from]++
	}

	return eid, nil
}

// HasEdge reports whether at least one edge from→to exists
// (either orientation for undirected edges).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.adjacency[from][to] > 0
}

// GetEdge returns the edge with the given ID.
//
// Errors:
//   - ErrEdgeNotFound.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns a copy of the edge catalog in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, len(g.edgeOrder))
	copy(out, g.edgeOrder)

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Neighbors returns the edges incident to id in insertion order: outgoing
// edges for directed edges, both orientations for undirected ones.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(E).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge
	for _, e := range g.edgeOrder {
		if e.From == id || (!e.Directed && e.To == id) {
			out = append(out, e)
		}
	}

	return out, nil
}

// nextEdgeID returns a fresh edge identifier. Caller holds muEdgeAdj.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
