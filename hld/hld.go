// SPDX-License-Identifier: MIT

package hld

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsolve/core"
	"github.com/katalvlaran/lvsolve/internal/dense"
)

// Decomposition is a heavy-light decomposition of a rooted tree.
type Decomposition[V, E comparable] struct {
	snap *dense.Snapshot[V, E]
	root int32

	parent []int32 // dense.None for the root
	depth  []int32
	size   []int32 // subtree size
	heavy  []bool
	head   []int32 // top of the chain holding each vertex
	chains int
}

// New validates that g is a tree and decomposes it, rooted at the first
// vertex of g.Vertices().
//
// Errors: ErrGraphNil, ErrEmptyTree, ErrNotTree (wrapped with the offending
// vertex), or a dense snapshot error.
//
// Complexity: O(V + E).
func New[V, E comparable](g core.Source[V, E], opts ...Option) (*Decomposition[V, E], error) {
	if core.IsNilSource(g) {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	snap, err := dense.Build(g)
	if err != nil {
		return nil, fmt.Errorf("hld: %w", err)
	}
	n := snap.Vertices.Len()
	if n == 0 {
		return nil, ErrEmptyTree
	}

	d := &Decomposition[V, E]{
		snap:   snap,
		root:   0,
		parent: make([]int32, n),
		depth:  make([]int32, n),
		size:   make([]int32, n),
		heavy:  make([]bool, n),
		head:   make([]int32, n),
	}
	order, err := d.traverse()
	if err != nil {
		return nil, err
	}
	d.decompose(order)

	o.Logger.WithFields(logrus.Fields{
		"vertices": n,
		"chains":   d.chains,
		"root":     snap.Vertices.Item(int(d.root)),
	}).Debug("hld: decomposed")

	return d, nil
}

// traverse runs an iterative DFS from the root, filling parent and depth,
// and returns the vertices in preorder. Any arc other than the one leading
// back to the parent that reaches a visited vertex closes a cycle.
func (d *Decomposition[V, E]) traverse() ([]int32, error) {
	arcs := d.snap.Arcs
	n := arcs.Vertices()
	visited := make([]bool, n)
	arrival := make([]int32, n) // arc that discovered each vertex
	order := make([]int32, 0, n)

	d.parent[d.root] = dense.None
	arrival[d.root] = dense.None
	visited[d.root] = true
	stack := []int32{d.root}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, u)

		for e := arcs.First[u]; e != dense.None; e = arcs.Next[e] {
			if arrival[u] != dense.None && e == dense.Companion(arrival[u]) {
				continue
			}
			v := arcs.To[e]
			if visited[v] {
				return nil, fmt.Errorf("%w: cycle through %v", ErrNotTree, d.snap.Vertices.Item(int(v)))
			}
			visited[v] = true
			arrival[v] = e
			d.parent[v] = u
			d.depth[v] = d.depth[u] + 1
			stack = append(stack, v)
		}
	}

	if len(order) != n {
		for v, ok := range visited {
			if !ok {
				return nil, fmt.Errorf("%w: %v unreachable from root %v",
					ErrNotTree, d.snap.Vertices.Item(v), d.snap.Vertices.Item(int(d.root)))
			}
		}
	}

	return order, nil
}

// decompose computes subtree sizes bottom-up, heavy children, then chain
// heads top-down. order must list every parent before its children.
func (d *Decomposition[V, E]) decompose(order []int32) {
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		d.size[v]++
		if p := d.parent[v]; p != dense.None {
			d.size[p] += d.size[v]
		}
	}
	for _, v := range order {
		p := d.parent[v]
		if p == dense.None {
			d.head[v] = v
			d.chains++
			continue
		}
		d.heavy[v] = 2*d.size[v] >= d.size[p]
		if d.heavy[v] {
			d.head[v] = d.head[p]
		} else {
			d.head[v] = v
			d.chains++
		}
	}
}

func (d *Decomposition[V, E]) id(v V) (int32, error) {
	i, ok := d.snap.Vertices.ID(v)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	return int32(i), nil
}

// lca climbs from the deeper chain head until x and y share a chain.
func (d *Decomposition[V, E]) lca(x, y int32) int32 {
	for d.head[x] != d.head[y] {
		if d.depth[d.head[x]] < d.depth[d.head[y]] {
			y = d.parent[d.head[y]]
		} else {
			x = d.parent[d.head[x]]
		}
	}
	if d.depth[x] < d.depth[y] {
		return x
	}

	return y
}

// Distance returns the number of edges on the tree path between u and v.
//
// Errors: ErrVertexNotFound.
//
// Complexity: O(log V).
func (d *Decomposition[V, E]) Distance(u, v V) (int, error) {
	x, err := d.id(u)
	if err != nil {
		return 0, err
	}
	y, err := d.id(v)
	if err != nil {
		return 0, err
	}
	a := d.lca(x, y)

	return int(d.depth[x] + d.depth[y] - 2*d.depth[a]), nil
}

// LCA returns the lowest common ancestor of u and v.
//
// Errors: ErrVertexNotFound.
func (d *Decomposition[V, E]) LCA(u, v V) (V, error) {
	var zero V
	x, err := d.id(u)
	if err != nil {
		return zero, err
	}
	y, err := d.id(v)
	if err != nil {
		return zero, err
	}

	return d.snap.Vertices.Item(int(d.lca(x, y))), nil
}

// Depth returns the number of edges between v and the root.
func (d *Decomposition[V, E]) Depth(v V) (int, error) {
	x, err := d.id(v)
	if err != nil {
		return 0, err
	}

	return int(d.depth[x]), nil
}

// ChainHead returns the topmost vertex of the heavy chain containing v.
func (d *Decomposition[V, E]) ChainHead(v V) (V, error) {
	var zero V
	x, err := d.id(v)
	if err != nil {
		return zero, err
	}

	return d.snap.Vertices.Item(int(d.head[x])), nil
}

// Parent returns the parent of v, or false for the root.
func (d *Decomposition[V, E]) Parent(v V) (V, bool, error) {
	var zero V
	x, err := d.id(v)
	if err != nil {
		return zero, false, err
	}
	p := d.parent[x]
	if p == dense.None {
		return zero, false, nil
	}

	return d.snap.Vertices.Item(int(p)), true, nil
}

// Root returns the root vertex.
func (d *Decomposition[V, E]) Root() V { return d.snap.Vertices.Item(int(d.root)) }

// Chains returns the number of heavy chains.
func (d *Decomposition[V, E]) Chains() int { return d.chains }
