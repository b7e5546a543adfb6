// SPDX-License-Identifier: MIT

package matching

import (
	"errors"
	"fmt"
	"iter"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for matching construction.
var (
	// ErrGraphNil is returned when a nil graph is passed to NewHopcroftKarp.
	ErrGraphNil = errors.New("matching: graph is nil")

	// ErrUnknownVertex is returned when a left vertex is not in the graph.
	ErrUnknownVertex = errors.New("matching: left vertex not found")

	// ErrDuplicateVertex is returned when a left vertex is listed twice.
	ErrDuplicateVertex = errors.New("matching: duplicate left vertex")

	// ErrNotBipartite is wrapped by SideError.
	ErrNotBipartite = errors.New("matching: graph is not bipartite")
)

// SideError reports an edge whose endpoints lie on the same side of the
// partition. Left tells which side.
type SideError struct {
	From, To any
	Left     bool
}

func (e *SideError) Error() string {
	side := "right"
	if e.Left {
		side = "left"
	}

	return fmt.Sprintf("matching: edge %v–%v joins two %s vertices", e.From, e.To, side)
}

// Unwrap lets errors.Is(err, ErrNotBipartite) match.
func (e *SideError) Unwrap() error { return ErrNotBipartite }

// Option configures the solver.
type Option func(*Options)

// Options holds solver parameters.
//   - Logger: receives Debug-level phase reports.
type Options struct {
	Logger logrus.FieldLogger
}

// DefaultOptions returns the logrus standard logger.
func DefaultOptions() Options {
	return Options{Logger: logrus.StandardLogger()}
}

// WithLogger routes phase reports to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// EdgeSet is a read-only set of edges in a stable order.
type EdgeSet[E comparable] struct {
	order []E
	set   map[E]struct{}
}

func newEdgeSet[E comparable](n int) *EdgeSet[E] {
	return &EdgeSet[E]{
		order: make([]E, 0, n),
		set:   make(map[E]struct{}, n),
	}
}

func (s *EdgeSet[E]) add(e E) {
	if _, ok := s.set[e]; ok {
		return
	}
	s.set[e] = struct{}{}
	s.order = append(s.order, e)
}

// Contains reports whether e is in the set.
func (s *EdgeSet[E]) Contains(e E) bool {
	_, ok := s.set[e]

	return ok
}

// Len returns the number of edges.
func (s *EdgeSet[E]) Len() int { return len(s.order) }

// Edges returns the edges in order (a fresh copy).
func (s *EdgeSet[E]) Edges() []E {
	out := make([]E, len(s.order))
	copy(out, s.order)

	return out
}

// All iterates the edges in order.
func (s *EdgeSet[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range s.order {
			if !yield(e) {
				return
			}
		}
	}
}
