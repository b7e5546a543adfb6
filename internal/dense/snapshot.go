// SPDX-License-Identifier: MIT

package dense

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsolve/core"
)

// ErrUnknownEndpoint is returned when an edge names a vertex that is not in
// the snapshot's vertex set.
var ErrUnknownEndpoint = errors.New("dense: edge endpoint not in vertex set")

// Snapshot is the dense image of a core.Source taken at one instant.
// Edge k of Edges owns the companion arcs 2k (from→to) and 2k+1 (to→from).
type Snapshot[V, E comparable] struct {
	Vertices *Index[V]
	Edges    *Index[E]
	Arcs     *Arcs
}

// Build snapshots g: vertices and edges are indexed in the order g reports
// them, and every edge is added as one companion pair.
//
// Errors:
//   - ErrDuplicate if g reports a vertex or edge twice.
//   - ErrUnknownEndpoint if an edge endpoint is not a vertex of g.
//
// Complexity: O(V + E) time and space.
func Build[V, E comparable](g core.Source[V, E]) (*Snapshot[V, E], error) {
	vs, err := NewIndex(g.Vertices())
	if err != nil {
		return nil, fmt.Errorf("vertices: %w", err)
	}
	es, err := NewIndex(g.Edges())
	if err != nil {
		return nil, fmt.Errorf("edges: %w", err)
	}

	arcs := NewArcs(vs.Len(), es.Len())
	for k := 0; k < es.Len(); k++ {
		u, v, err := Endpoints(g, vs, es.Item(k))
		if err != nil {
			return nil, err
		}
		arcs.AddPair(u, v)
	}

	return &Snapshot[V, E]{Vertices: vs, Edges: es, Arcs: arcs}, nil
}

// Endpoints resolves the dense ids of e's endpoints.
func Endpoints[V, E comparable](g core.Source[V, E], vs *Index[V], e E) (int32, int32, error) {
	from, to := g.EdgeEndpoints(e)
	u, ok := vs.ID(from)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %v", ErrUnknownEndpoint, from)
	}
	v, ok := vs.ID(to)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %v", ErrUnknownEndpoint, to)
	}

	return int32(u), int32(v), nil
}

// EdgeOf returns the edge that owns arc a.
func (s *Snapshot[V, E]) EdgeOf(a int32) E { return s.Edges.Item(int(a >> 1)) }
