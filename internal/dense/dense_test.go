// SPDX-License-Identifier: MIT

package dense_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsolve/core"
	"github.com/katalvlaran/lvsolve/internal/dense"
)

func TestIndex_Bijection(t *testing.T) {
	idx, err := dense.NewIndex([]string{"x", "y", "z"})
	require.NoError(t, err)
	assert.Equal(t, 3, idx.Len())
	for i := 0; i < idx.Len(); i++ {
		id, ok := idx.ID(idx.Item(i))
		require.True(t, ok)
		assert.Equal(t, i, id)
	}
	_, ok := idx.ID("w")
	assert.False(t, ok)

	_, err = dense.NewIndex([]int{1, 2, 1})
	assert.ErrorIs(t, err, dense.ErrDuplicate)
}

func TestArcs_CompanionPairs(t *testing.T) {
	a := dense.NewArcs(3, 2)
	e0 := a.AddPair(0, 1)
	e1 := a.AddPair(1, 2)
	assert.Equal(t, int32(0), e0)
	assert.Equal(t, int32(2), e1)
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, 3, a.Vertices())

	for e := int32(0); e < int32(a.Len()); e++ {
		c := dense.Companion(e)
		assert.Equal(t, e, dense.Companion(c))
		assert.Equal(t, a.Tail(e), a.To[c], "companion runs the opposite way")
	}

	// vertex 1 lists the newest arc first: 1→2 (id 2), then 1→0 (id 1).
	var out []int32
	for e := a.First[1]; e != dense.None; e = a.Next[e] {
		out = append(out, a.To[e])
	}
	assert.Equal(t, []int32{2, 0}, out)
	assert.Equal(t, int32(0), a.First[0])
	assert.Equal(t, dense.None, a.Next[a.First[0]])
	assert.Equal(t, int32(3), a.First[2])
}

func TestBuild_Snapshot(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("a", "b", 1)
	_, _ = g.AddEdge("b", "c", 2)

	s, err := dense.Build[string, *core.Edge](g)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Vertices.Len())
	assert.Equal(t, 2, s.Edges.Len())
	assert.Equal(t, 4, s.Arcs.Len())

	edges := g.Edges()
	assert.Same(t, edges[0], s.EdgeOf(0))
	assert.Same(t, edges[0], s.EdgeOf(1))
	assert.Same(t, edges[1], s.EdgeOf(2))

	b, _ := s.Vertices.ID("b")
	c, _ := s.Vertices.ID("c")
	assert.Equal(t, int32(c), s.Arcs.To[2])
	assert.Equal(t, int32(b), s.Arcs.Tail(2))
}

type badSource struct{}

func (badSource) Vertices() []string                 { return []string{"a"} }
func (badSource) Edges() []int                       { return []int{7} }
func (badSource) EdgeEndpoints(int) (string, string) { return "a", "ghost" }

func TestBuild_UnknownEndpoint(t *testing.T) {
	_, err := dense.Build[string, int](badSource{})
	assert.ErrorIs(t, err, dense.ErrUnknownEndpoint)
}
