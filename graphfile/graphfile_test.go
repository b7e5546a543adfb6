// SPDX-License-Identifier: MIT

package graphfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsolve/core"
	"github.com/katalvlaran/lvsolve/graphfile"
)

const network = `
directed: true
vertices: [s, t]
edges:
  - {from: s, to: a, weight: 3}
  - {from: a, to: t}
  - {from: s, to: t, weight: 0.5}
source: s
sink: t
epsilon: 1e-6
`

func TestDecode_Network(t *testing.T) {
	f, err := graphfile.Decode(strings.NewReader(network))
	require.NoError(t, err)
	assert.True(t, f.Directed)
	assert.Equal(t, "s", f.Source)
	assert.Equal(t, "t", f.Sink)
	assert.Equal(t, 1e-6, f.Epsilon)

	g, err := f.Graph()
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.Equal(t, []string{"s", "t", "a"}, g.Vertices())

	ws := make([]float64, 0, 3)
	for _, e := range g.Edges() {
		ws = append(ws, g.EdgeWeight(e))
	}
	assert.Equal(t, []float64{3, graphfile.DefaultWeight, 0.5}, ws)
}

func TestDecode_Errors(t *testing.T) {
	_, err := graphfile.Decode(strings.NewReader(""))
	assert.ErrorIs(t, err, graphfile.ErrEmptyDocument)

	_, err = graphfile.Decode(strings.NewReader("edgez: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "graphfile: decode")

	f, err := graphfile.Decode(strings.NewReader("edges:\n  - {from: a}\n"))
	require.NoError(t, err)
	_, err = f.Graph()
	assert.ErrorIs(t, err, graphfile.ErrEmptyEndpoint)

	f, err = graphfile.Decode(strings.NewReader("vertices: ['']\n"))
	require.NoError(t, err)
	_, err = f.Graph()
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bip.yaml")
	require.NoError(t, os.WriteFile(path, []byte("left: [a, b]\nedges:\n  - {from: a, to: x}\n"), 0o600))

	f, err := graphfile.Load(path)
	require.NoError(t, err)
	assert.False(t, f.Directed)
	assert.Equal(t, []string{"a", "b"}, f.Left)

	_, err = graphfile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
