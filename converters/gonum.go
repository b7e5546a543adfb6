// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvsolve/core"
)

// DefaultWeight is the weight of an edge of an unweighted gonum graph.
const DefaultWeight = 1.0

// ErrSelfLoop is returned when exporting a loop to a gonum simple graph.
var ErrSelfLoop = errors.New("converters: self-loop not representable")

// Pair identifies an edge of a gonum simple graph by its endpoint IDs.
type Pair struct {
	From, To int64
}

// Source exposes a gonum graph through core.WeightedSource[int64, Pair].
type Source struct {
	g     graph.Graph
	nodes []int64
	edges []Pair
}

var _ core.WeightedSource[int64, Pair] = (*Source)(nil)

// IsNil reports whether s is nil.
func (s *Source) IsNil() bool { return s == nil }

// FromDirected snapshots the node and edge sets of g. Every edge u→v yields
// one Pair{u, v}.
//
// Complexity: O(V log V + E log E).
func FromDirected(g graph.Directed) *Source {
	s := &Source{g: g, nodes: sortedIDs(g.Nodes())}
	for _, u := range s.nodes {
		for _, v := range sortedIDs(g.From(u)) {
			s.edges = append(s.edges, Pair{From: u, To: v})
		}
	}

	return s
}

// FromUndirected snapshots the node and edge sets of g. Every edge {u, v}
// yields one Pair with From < To.
//
// Complexity: O(V log V + E log E).
func FromUndirected(g graph.Undirected) *Source {
	s := &Source{g: g, nodes: sortedIDs(g.Nodes())}
	for _, u := range s.nodes {
		for _, v := range sortedIDs(g.From(u)) {
			if u < v {
				s.edges = append(s.edges, Pair{From: u, To: v})
			}
		}
	}

	return s
}

func sortedIDs(it graph.Nodes) []int64 {
	var ids []int64
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	slices.Sort(ids)

	return ids
}

// Vertices returns the node IDs in ascending order.
func (s *Source) Vertices() []int64 { return slices.Clone(s.nodes) }

// Edges returns the edges ordered by (From, To).
func (s *Source) Edges() []Pair { return slices.Clone(s.edges) }

// EdgeEndpoints returns e's endpoints.
func (s *Source) EdgeEndpoints(e Pair) (from, to int64) { return e.From, e.To }

// EdgeWeight returns the gonum weight of e, or DefaultWeight for graphs
// without weights.
func (s *Source) EdgeWeight(e Pair) float64 {
	wg, ok := s.g.(graph.Weighted)
	if !ok {
		return DefaultWeight
	}
	if w, ok := wg.Weight(e.From, e.To); ok {
		return w
	}

	return DefaultWeight
}

// ToDirected copies g into a weighted directed gonum graph. Vertices get
// node IDs 0..n-1 in g.Vertices() order.
//
// Errors: ErrSelfLoop.
func ToDirected(g *core.Graph) (*simple.WeightedDirectedGraph, map[string]int64, error) {
	out := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	ids, err := export(g, out, func(u, v graph.Node, w float64) {
		if prev := out.WeightedEdge(u.ID(), v.ID()); prev != nil {
			w += prev.Weight()
		}
		out.SetWeightedEdge(out.NewWeightedEdge(u, v, w))
	})

	return out, ids, err
}

// ToUndirected copies g into a weighted undirected gonum graph, ignoring
// edge direction. Vertices get node IDs 0..n-1 in g.Vertices() order.
//
// Errors: ErrSelfLoop.
func ToUndirected(g *core.Graph) (*simple.WeightedUndirectedGraph, map[string]int64, error) {
	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	ids, err := export(g, out, func(u, v graph.Node, w float64) {
		if prev := out.WeightedEdge(u.ID(), v.ID()); prev != nil {
			w += prev.Weight()
		}
		out.SetWeightedEdge(out.NewWeightedEdge(u, v, w))
	})

	return out, ids, err
}

func export(g *core.Graph, out graph.NodeAdder, set func(u, v graph.Node, w float64)) (map[string]int64, error) {
	ids := make(map[string]int64, g.VertexCount())
	for i, v := range g.Vertices() {
		ids[v] = int64(i)
		out.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			return nil, fmt.Errorf("%w: %s", ErrSelfLoop, e.From)
		}
		set(simple.Node(ids[e.From]), simple.Node(ids[e.To]), g.EdgeWeight(e))
	}

	return ids, nil
}
