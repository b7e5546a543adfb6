// SPDX-License-Identifier: MIT

package matching

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsolve/core"
	"github.com/katalvlaran/lvsolve/internal/dense"
)

// unmatched is the partner of a free vertex.
const unmatched int32 = -1

// inf is the layer of a left vertex outside the current layering, or proven
// dead within it.
const inf int32 = math.MaxInt32

// HopcroftKarp holds a maximum matching of a bipartite graph.
type HopcroftKarp[V, E comparable] struct {
	snap *dense.Snapshot[V, E]
	left []int32
	side []bool // true for left vertices

	match    []int32 // partner per vertex, or unmatched
	matchArc []int32 // for a matched left vertex, the arc to its partner
	layer    []int32 // BFS layer per left vertex
	cursor   []int32 // next arc to try per left vertex, valid within a phase
	nilLayer int32   // layer at which a free right vertex is first reached

	stack []int32 // left vertices of the DFS path
	via   []int32 // arc taken out of stack[i]

	size int
	log  logrus.FieldLogger
}

// NewHopcroftKarp snapshots g, validates the partition and computes a
// maximum matching.
//
// Steps:
//  1. Index vertices and edges; every edge yields arcs in both directions.
//  2. Mark the left side; reject unknown or repeated left vertices.
//  3. Reject edges that do not cross the partition.
//  4. Run phases until no augmenting path remains.
//
// Errors: ErrGraphNil, ErrUnknownVertex, ErrDuplicateVertex, *SideError, or
// a dense snapshot error.
//
// Complexity: O(E·√V).
func NewHopcroftKarp[V, E comparable](g core.Source[V, E], left []V, opts ...Option) (*HopcroftKarp[V, E], error) {
	if core.IsNilSource(g) {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	snap, err := dense.Build(g)
	if err != nil {
		return nil, fmt.Errorf("matching: %w", err)
	}

	n := snap.Vertices.Len()
	h := &HopcroftKarp[V, E]{
		snap:     snap,
		left:     make([]int32, 0, len(left)),
		side:     make([]bool, n),
		match:    make([]int32, n),
		matchArc: make([]int32, n),
		layer:    make([]int32, n),
		cursor:   make([]int32, n),
		log:      o.Logger,
	}
	for _, v := range left {
		id, ok := snap.Vertices.ID(v)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnknownVertex, v)
		}
		if h.side[id] {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateVertex, v)
		}
		h.side[id] = true
		h.left = append(h.left, int32(id))
	}

	arcs := snap.Arcs
	for e := int32(0); e < int32(arcs.Len()); e += 2 {
		u, v := arcs.Tail(e), arcs.To[e]
		if h.side[u] == h.side[v] {
			from, to := g.EdgeEndpoints(snap.EdgeOf(e))
			return nil, &SideError{From: from, To: to, Left: h.side[u]}
		}
	}

	h.solve()

	return h, nil
}

func (h *HopcroftKarp[V, E]) solve() {
	for i := range h.match {
		h.match[i] = unmatched
		h.matchArc[i] = dense.None
	}
	h.size = 0

	for phase := 1; h.layerGraph(); phase++ {
		copy(h.cursor, h.snap.Arcs.First)
		augmented := 0
		for _, u := range h.left {
			if h.match[u] == unmatched && h.augment(u) {
				augmented++
			}
		}
		h.size += augmented
		h.log.WithFields(logrus.Fields{
			"phase":     phase,
			"length":    2*h.nilLayer - 1,
			"augmented": augmented,
			"matched":   h.size,
		}).Debug("hopcroft-karp: phase")
	}
}

// layerGraph layers the left vertices by alternating-path distance from the
// free left vertices and reports whether a free right vertex is reachable.
func (h *HopcroftKarp[V, E]) layerGraph() bool {
	arcs := h.snap.Arcs
	q := h.stack[:0]
	for _, u := range h.left {
		if h.match[u] == unmatched {
			h.layer[u] = 0
			q = append(q, u)
		} else {
			h.layer[u] = inf
		}
	}
	h.nilLayer = inf

	for head := 0; head < len(q); head++ {
		u := q[head]
		if h.layer[u] >= h.nilLayer {
			continue
		}
		for e := arcs.First[u]; e != dense.None; e = arcs.Next[e] {
			w := h.match[arcs.To[e]]
			switch {
			case w == unmatched:
				if h.nilLayer == inf {
					h.nilLayer = h.layer[u] + 1
				}
			case h.layer[w] == inf:
				h.layer[w] = h.layer[u] + 1
				q = append(q, w)
			}
		}
	}
	h.stack = q[:0]

	return h.nilLayer != inf
}

// augment searches a shortest augmenting path from the free left vertex root
// with an explicit stack and flips it on success. Left vertices proven to
// have no path are marked dead (layer = inf) until the next phase.
func (h *HopcroftKarp[V, E]) augment(root int32) bool {
	arcs := h.snap.Arcs
	stack := append(h.stack[:0], root)
	via := h.via[:0]
	defer func() { h.stack, h.via = stack[:0], via[:0] }()

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		next := h.layer[u] + 1
		advanced := false

		for e := h.cursor[u]; e != dense.None; e = arcs.Next[e] {
			w := h.match[arcs.To[e]]
			if w == unmatched {
				if next != h.nilLayer {
					continue
				}
				h.cursor[u] = e
				via = append(via, e)
				for i, x := range stack {
					y := arcs.To[via[i]]
					h.match[x], h.match[y] = y, x
					h.matchArc[x] = via[i]
				}

				return true
			}
			if h.layer[w] == next {
				h.cursor[u] = e
				via = append(via, e)
				stack = append(stack, w)
				advanced = true

				break
			}
		}
		if advanced {
			continue
		}

		// dead end: u cannot reach a free right vertex in this phase
		h.cursor[u] = dense.None
		h.layer[u] = inf
		stack = stack[:len(stack)-1]
		if len(via) > 0 {
			last := via[len(via)-1]
			via = via[:len(via)-1]
			h.cursor[stack[len(stack)-1]] = arcs.Next[last]
		}
	}

	return false
}

// Size returns the matching cardinality.
func (h *HopcroftKarp[V, E]) Size() int { return h.size }

// Matching returns the matched edges, one per pair, in left-partition order.
// Each call builds a fresh set.
func (h *HopcroftKarp[V, E]) Matching() *EdgeSet[E] {
	s := newEdgeSet[E](h.size)
	for _, u := range h.left {
		if a := h.matchArc[u]; a != dense.None {
			s.add(h.snap.EdgeOf(a))
		}
	}

	return s
}

// Partner returns the vertex matched with v, or false if v is free or not a
// vertex of the graph.
func (h *HopcroftKarp[V, E]) Partner(v V) (V, bool) {
	var zero V
	id, ok := h.snap.Vertices.ID(v)
	if !ok || h.match[id] == unmatched {
		return zero, false
	}

	return h.snap.Vertices.Item(int(h.match[id])), true
}

// Left returns the left partition in the order given to NewHopcroftKarp.
func (h *HopcroftKarp[V, E]) Left() []V {
	out := make([]V, len(h.left))
	for i, u := range h.left {
		out[i] = h.snap.Vertices.Item(int(u))
	}

	return out
}
