// SPDX-License-Identifier: MIT
//
// Package dense converts an opaque, identity-keyed graph snapshot into the
// dense integer layout shared by the solvers: an Index that maps caller values
// to 0..n-1 and back, and Arcs, a first/next/to linked adjacency whose arcs
// always come in companion pairs (e, e^1).
package dense

import (
	"errors"
	"fmt"
)

// ErrDuplicate is returned when the same item appears twice in a snapshot.
var ErrDuplicate = errors.New("dense: duplicate item")

// Index is a bijection between the items of a snapshot and 0..Len()-1.
// It is built once and never mutated.
type Index[T comparable] struct {
	ids   map[T]int
	items []T
}

// NewIndex assigns ids in slice order.
//
// Errors:
//   - ErrDuplicate if an item occurs more than once.
//
// Complexity: O(n) time and space.
func NewIndex[T comparable](items []T) (*Index[T], error) {
	idx := &Index[T]{
		ids:   make(map[T]int, len(items)),
		items: make([]T, len(items)),
	}
	for i, it := range items {
		if _, dup := idx.ids[it]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicate, it)
		}
		idx.ids[it] = i
		idx.items[i] = it
	}

	return idx, nil
}

// ID returns the dense id of t, or false if t is not part of the snapshot.
func (x *Index[T]) ID(t T) (int, bool) {
	id, ok := x.ids[t]

	return id, ok
}

// Item returns the item with dense id i. It panics on an out-of-range id,
// which is always a programming error inside a solver.
func (x *Index[T]) Item(i int) T { return x.items[i] }

// Len returns the number of indexed items.
func (x *Index[T]) Len() int { return len(x.items) }
