// SPDX-License-Identifier: MIT

package flow

import (
	"errors"
	"fmt"
	"iter"

	"github.com/sirupsen/logrus"
)

// DefaultEpsilon is the tolerance used when no WithEpsilon option is given.
const DefaultEpsilon = 1e-9

// Sentinel errors for flow construction and queries.
var (
	// ErrGraphNil is returned when a nil network is passed to NewDinic.
	ErrGraphNil = errors.New("flow: graph is nil")

	// ErrInvalidEpsilon is returned when the tolerance is not strictly positive.
	ErrInvalidEpsilon = errors.New("flow: epsilon must be positive")

	// ErrNegativeCapacity is wrapped by EdgeError.
	ErrNegativeCapacity = errors.New("flow: negative capacity")

	// ErrSourceNotFound is returned when the source vertex is not in the network.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the sink vertex is not in the network.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSourceIsSink is returned when source and sink are the same vertex.
	ErrSourceIsSink = errors.New("flow: source equals sink")
)

// EdgeError is returned when an edge has a capacity below -Epsilon.
type EdgeError struct {
	From, To any
	Cap      float64
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %v→%v: %g", e.From, e.To, e.Cap)
}

// Unwrap lets errors.Is(err, ErrNegativeCapacity) match.
func (e *EdgeError) Unwrap() error { return ErrNegativeCapacity }

// Option configures a solver via functional arguments. Invalid values are
// recorded and surfaced by NewDinic.
type Option func(*Options)

// Options holds solver parameters.
//   - Epsilon: tolerance for every comparison against zero or capacity.
//   - Logger:  receives Debug-level phase reports.
type Options struct {
	Epsilon float64
	Logger  logrus.FieldLogger

	err error
}

// DefaultOptions returns Epsilon = DefaultEpsilon and the logrus standard logger.
func DefaultOptions() Options {
	return Options{
		Epsilon: DefaultEpsilon,
		Logger:  logrus.StandardLogger(),
	}
}

// WithEpsilon sets the numeric tolerance.
//
//	eps > 0: accepted
//	otherwise (including NaN): ErrInvalidEpsilon from NewDinic
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if !(eps > 0) {
			o.err = fmt.Errorf("%w (%g)", ErrInvalidEpsilon, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithLogger routes phase reports to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// FlowView is a read-only mapping from each original edge to the flow on its
// forward arc. It exposes no mutators; changing a solver's flow is only
// possible through the solver itself.
type FlowView[E comparable] struct {
	order []E
	flow  map[E]float64
}

// Get returns the flow on e, or false if e is not an edge of the network.
func (v *FlowView[E]) Get(e E) (float64, bool) {
	f, ok := v.flow[e]

	return f, ok
}

// Len returns the number of edges in the view.
func (v *FlowView[E]) Len() int { return len(v.order) }

// Edges returns the edges in network order (a fresh copy).
func (v *FlowView[E]) Edges() []E {
	out := make([]E, len(v.order))
	copy(out, v.order)

	return out
}

// All iterates (edge, flow) pairs in network order.
func (v *FlowView[E]) All() iter.Seq2[E, float64] {
	return func(yield func(E, float64) bool) {
		for _, e := range v.order {
			if !yield(e, v.flow[e]) {
				return
			}
		}
	}
}
