// SPDX-License-Identifier: MIT

package converters_test

import (
	"io"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvsolve/builder"
	"github.com/katalvlaran/lvsolve/converters"
	"github.com/katalvlaran/lvsolve/core"
	"github.com/katalvlaran/lvsolve/flow"
	"github.com/katalvlaran/lvsolve/hld"
	"github.com/katalvlaran/lvsolve/matching"
)

func quiet() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

func TestFromDirected_Order(t *testing.T) {
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(3), simple.Node(1), 2.5))
	g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(1), simple.Node(2), 4))
	g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(1), simple.Node(0), 1))

	src := converters.FromDirected(g)
	assert.Equal(t, []int64{0, 1, 2, 3}, src.Vertices())
	assert.Equal(t, []converters.Pair{{1, 0}, {1, 2}, {3, 1}}, src.Edges())
	assert.Equal(t, 2.5, src.EdgeWeight(converters.Pair{From: 3, To: 1}))

	from, to := src.EdgeEndpoints(converters.Pair{From: 1, To: 2})
	assert.Equal(t, int64(1), from)
	assert.Equal(t, int64(2), to)
}

func TestFromUndirected_DefaultWeight(t *testing.T) {
	g := simple.NewUndirectedGraph()
	g.SetEdge(g.NewEdge(simple.Node(2), simple.Node(0)))
	g.SetEdge(g.NewEdge(simple.Node(0), simple.Node(1)))

	src := converters.FromUndirected(g)
	assert.Equal(t, []converters.Pair{{0, 1}, {0, 2}}, src.Edges())
	assert.Equal(t, converters.DefaultWeight, src.EdgeWeight(converters.Pair{From: 0, To: 2}))
}

func TestFlow_EquivalentAcrossRepresentations(t *testing.T) {
	cg, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true), core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(11), builder.WithUniformWeight(1, 20)},
		builder.RandomSparse(40, 0.15),
	)
	require.NoError(t, err)

	gg, ids, err := converters.ToDirected(cg)
	require.NoError(t, err)
	assert.Equal(t, cg.VertexCount(), gg.Nodes().Len())

	dc, err := flow.NewDinic[string, *core.Edge](cg, flow.WithLogger(quiet()))
	require.NoError(t, err)
	require.NoError(t, dc.ComputeMaxFlow("0", "39"))
	want, _ := dc.MaxFlowValue()

	dg, err := flow.NewDinic[int64, converters.Pair](converters.FromDirected(gg), flow.WithLogger(quiet()))
	require.NoError(t, err)
	require.NoError(t, dg.ComputeMaxFlow(ids["0"], ids["39"]))
	got, _ := dg.MaxFlowValue()

	assert.InDelta(t, want, got, 1e-6)
}

func TestToDirected_MergesParallelEdges(t *testing.T) {
	cg := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())
	_, _ = cg.AddEdge("a", "b", 2)
	_, _ = cg.AddEdge("a", "b", 3)

	gg, ids, err := converters.ToDirected(cg)
	require.NoError(t, err)
	w, ok := gg.Weight(ids["a"], ids["b"])
	require.True(t, ok)
	assert.Equal(t, 5.0, w)
}

func TestExport_SelfLoop(t *testing.T) {
	cg := core.NewGraph(core.WithLoops())
	_, _ = cg.AddEdge("a", "a", 0)

	_, _, err := converters.ToUndirected(cg)
	assert.ErrorIs(t, err, converters.ErrSelfLoop)
	_, _, err = converters.ToDirected(cg)
	assert.ErrorIs(t, err, converters.ErrSelfLoop)
}

func TestMatchingAndTree_OnGonum(t *testing.T) {
	// 0,1,2 on the left; 10,11 on the right
	bg := simple.NewUndirectedGraph()
	bg.SetEdge(bg.NewEdge(simple.Node(0), simple.Node(10)))
	bg.SetEdge(bg.NewEdge(simple.Node(1), simple.Node(10)))
	bg.SetEdge(bg.NewEdge(simple.Node(1), simple.Node(11)))
	bg.SetEdge(bg.NewEdge(simple.Node(2), simple.Node(11)))

	hk, err := matching.NewHopcroftKarp[int64, converters.Pair](converters.FromUndirected(bg), []int64{0, 1, 2},
		matching.WithLogger(quiet()))
	require.NoError(t, err)
	assert.Equal(t, 2, hk.Size())

	tg, _, err := converters.ToUndirected(mustTree(t))
	require.NoError(t, err)
	d, err := hld.New[int64, converters.Pair](converters.FromUndirected(tg), hld.WithLogger(quiet()))
	require.NoError(t, err)
	dist, err := d.Distance(0, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, dist)
}

func mustTree(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Path(5))
	require.NoError(t, err)

	return g
}

func TestNilSource(t *testing.T) {
	_, err := flow.NewDinic[int64, converters.Pair]((*converters.Source)(nil))
	assert.ErrorIs(t, err, flow.ErrGraphNil)
}
