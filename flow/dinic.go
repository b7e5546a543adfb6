// SPDX-License-Identifier: MIT

package flow

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsolve/core"
	"github.com/katalvlaran/lvsolve/internal/dense"
)

// unreachable is the layer of a vertex the BFS did not reach.
const unreachable int32 = -1

// noVertex marks an unset source/sink.
const noVertex int32 = -1

// Dinic is a max-flow solver bound to one snapshot of a network.
type Dinic[V, E comparable] struct {
	snap *dense.Snapshot[V, E]

	capacity []float64 // per arc; companions of input edges carry 0
	flow     []float64 // per arc; flow[e] == -flow[e^1]

	dist   []int32 // BFS layer per vertex
	cursor []int32 // current arc per vertex, valid within one layering
	queue  []int32
	path   []int32 // arcs of the DFS path being extended

	epsilon  float64
	log      logrus.FieldLogger
	value    float64
	computed bool
	source   int32
	sink     int32
}

// NewDinic snapshots g into a flow network.
//
// Steps:
//  1. Reject a nil network and invalid options.
//  2. Validate every capacity against -Epsilon.
//  3. Index vertices and edges and lay out one companion arc pair per edge.
//
// Errors: ErrGraphNil, ErrInvalidEpsilon, *EdgeError, or a dense snapshot
// error (duplicate items, unknown endpoints).
//
// Complexity: O(V + E).
func NewDinic[V, E comparable](g core.WeightedSource[V, E], opts ...Option) (*Dinic[V, E], error) {
	if core.IsNilSource(g) {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	snap, err := dense.Build(g)
	if err != nil {
		return nil, fmt.Errorf("flow: %w", err)
	}

	m := snap.Arcs.Len()
	d := &Dinic[V, E]{
		snap:     snap,
		capacity: make([]float64, m),
		flow:     make([]float64, m),
		dist:     make([]int32, snap.Vertices.Len()),
		cursor:   make([]int32, snap.Vertices.Len()),
		queue:    make([]int32, 0, snap.Vertices.Len()),
		epsilon:  o.Epsilon,
		log:      o.Logger,
		source:   noVertex,
		sink:     noVertex,
	}
	for k := 0; k < snap.Edges.Len(); k++ {
		e := snap.Edges.Item(k)
		c := g.EdgeWeight(e)
		if !(c >= -o.Epsilon) {
			from, to := g.EdgeEndpoints(e)
			return nil, &EdgeError{From: from, To: to, Cap: c}
		}
		d.capacity[2*k] = c
	}

	return d, nil
}

// Epsilon returns the tolerance the solver was built with.
func (d *Dinic[V, E]) Epsilon() float64 { return d.epsilon }

// ComputeMaxFlow pushes a maximum flow from source to sink on top of the
// current residual network.
//
// Arc flows are not reset: see the package documentation on sequential
// queries. The value reported by MaxFlowValue is the flow added by this call.
//
// Errors: ErrSourceNotFound, ErrSinkNotFound, ErrSourceIsSink.
func (d *Dinic[V, E]) ComputeMaxFlow(source, sink V) error {
	s, ok := d.snap.Vertices.ID(source)
	if !ok {
		return fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}
	t, ok := d.snap.Vertices.ID(sink)
	if !ok {
		return fmt.Errorf("%w: %v", ErrSinkNotFound, sink)
	}
	if s == t {
		return fmt.Errorf("%w: %v", ErrSourceIsSink, source)
	}

	d.source, d.sink = int32(s), int32(t)
	d.value = 0
	d.computed = true

	for phase := 1; ; phase++ {
		d.layer(d.source, d.sink)
		if d.dist[d.sink] == unreachable {
			break
		}
		copy(d.cursor, d.snap.Arcs.First)

		var pushed float64
		for {
			delta := d.augment(d.source, d.sink)
			pushed += delta
			if delta <= d.epsilon {
				break
			}
		}
		d.value += pushed
		d.log.WithFields(logrus.Fields{
			"phase":  phase,
			"layers": d.dist[d.sink],
			"pushed": pushed,
			"total":  d.value,
		}).Debug("dinic: blocking flow")
	}
	d.log.WithFields(logrus.Fields{
		"source": source,
		"sink":   sink,
		"value":  d.value,
	}).Debug("dinic: max flow computed")

	return nil
}

// residual returns the remaining capacity of arc e.
func (d *Dinic[V, E]) residual(e int32) float64 { return d.capacity[e] - d.flow[e] }

// layer runs the BFS from s over arcs with residual capacity above epsilon,
// recording dist. The sink's layer is recorded but never expanded.
func (d *Dinic[V, E]) layer(s, t int32) {
	for i := range d.dist {
		d.dist[i] = unreachable
	}
	arcs := d.snap.Arcs
	d.dist[s] = 0
	q := append(d.queue[:0], s)
	for head := 0; head < len(q); head++ {
		u := q[head]
		for e := arcs.First[u]; e != dense.None; e = arcs.Next[e] {
			v := arcs.To[e]
			if d.dist[v] == unreachable && d.residual(e) > d.epsilon {
				d.dist[v] = d.dist[u] + 1
				if v != t {
					q = append(q, v)
				}
			}
		}
	}
	d.queue = q
}

// admissible reports whether arc e out of u lies in the level graph.
func (d *Dinic[V, E]) admissible(u, e int32) bool {
	return d.dist[d.snap.Arcs.To[e]] == d.dist[u]+1 && d.residual(e) > d.epsilon
}

// augment finds one s→t path in the level graph with an explicit stack,
// pushes its bottleneck and returns it (0 if the layering is blocked).
//
// cursor[u] always points at the first arc of u not yet proven dead in this
// layering: it stays on an arc while a path through it is being explored and
// moves past it only when the subtree behind it is exhausted.
func (d *Dinic[V, E]) augment(s, t int32) float64 {
	arcs := d.snap.Arcs
	path := d.path[:0]
	u := s
	for {
		if u == t {
			delta := math.Inf(1)
			for _, e := range path {
				delta = math.Min(delta, d.residual(e))
			}
			for _, e := range path {
				d.flow[e] += delta
				d.flow[dense.Companion(e)] -= delta
			}
			d.path = path

			return delta
		}

		e := d.cursor[u]
		for e != dense.None && !d.admissible(u, e) {
			e = arcs.Next[e]
		}
		d.cursor[u] = e
		if e != dense.None {
			path = append(path, e)
			u = arcs.To[e]
			continue
		}

		// dead end: retreat one arc and skip it from now on
		if u == s {
			d.path = path

			return 0
		}
		last := path[len(path)-1]
		path = path[:len(path)-1]
		u = arcs.Tail(last)
		d.cursor[u] = arcs.Next[last]
	}
}

// MaxFlowValue returns the flow added by the last ComputeMaxFlow call, or
// false if there was none.
func (d *Dinic[V, E]) MaxFlowValue() (float64, bool) {
	if !d.computed {
		return 0, false
	}

	return d.value, true
}

// CurrentSource returns the source of the last ComputeMaxFlow call.
func (d *Dinic[V, E]) CurrentSource() (V, bool) { return d.vertex(d.source) }

// CurrentSink returns the sink of the last ComputeMaxFlow call.
func (d *Dinic[V, E]) CurrentSink() (V, bool) { return d.vertex(d.sink) }

func (d *Dinic[V, E]) vertex(id int32) (V, bool) {
	if id == noVertex {
		var zero V
		return zero, false
	}

	return d.snap.Vertices.Item(int(id)), true
}

// Flow returns a read-only view of the forward-arc flow of every edge, or
// false before the first ComputeMaxFlow call. Each call builds a fresh view.
func (d *Dinic[V, E]) Flow() (*FlowView[E], bool) {
	if !d.computed {
		return nil, false
	}
	n := d.snap.Edges.Len()
	v := &FlowView[E]{
		order: make([]E, n),
		flow:  make(map[E]float64, n),
	}
	for k := 0; k < n; k++ {
		e := d.snap.Edges.Item(k)
		v.order[k] = e
		v.flow[e] = d.flow[2*k]
	}

	return v, true
}

// MinCut returns the source side of a minimum cut for the last query: the
// vertices still reachable from the source in the residual network. It
// returns false before the first ComputeMaxFlow call.
func (d *Dinic[V, E]) MinCut() ([]V, bool) {
	if !d.computed {
		return nil, false
	}
	var side []V
	for i, l := range d.dist {
		if l != unreachable {
			side = append(side, d.snap.Vertices.Item(i))
		}
	}

	return side, true
}

// Reset zeroes every arc flow and forgets the last query.
func (d *Dinic[V, E]) Reset() {
	for i := range d.flow {
		d.flow[i] = 0
	}
	d.value = 0
	d.computed = false
	d.source, d.sink = noVertex, noVertex
}
