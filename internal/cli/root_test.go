// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "g.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

const network = `directed: true
edges:
  - {from: s, to: a, weight: 3}
  - {from: a, to: t, weight: 2}
  - {from: s, to: b, weight: 2}
  - {from: b, to: t, weight: 3}
source: s
sink: t
`

func TestMaxFlow(t *testing.T) {
	path := writeFile(t, network)

	out, _, err := run(t, "maxflow", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "max flow: 4\ns→a 2/3\na→t 2/2\ns→b 2/2\nb→t 2/3\nmin cut: [s a]\n", out)

	out, _, err = run(t, "maxflow", "-f", path, "--source", "s", "--sink", "b")
	require.NoError(t, err)
	assert.Contains(t, out, "max flow: 2\n")
}

func TestMaxFlow_VerboseLogsPhases(t *testing.T) {
	path := writeFile(t, network)

	_, logs, err := run(t, "maxflow", "-v", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, logs, "dinic: blocking flow")
	assert.Contains(t, logs, "graph loaded")
}

func TestMatching(t *testing.T) {
	path := writeFile(t, `left: [ann, bob, cid]
edges:
  - {from: ann, to: build}
  - {from: bob, to: build}
  - {from: bob, to: test}
  - {from: cid, to: test}
`)

	out, _, err := run(t, "matching", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "size: 2\n")

	out, _, err = run(t, "matching", "-f", path, "--left", "build,test")
	require.NoError(t, err)
	assert.Contains(t, out, "size: 2\n")
}

func TestDistance(t *testing.T) {
	path := writeFile(t, `edges:
  - {from: r, to: a}
  - {from: r, to: b}
  - {from: a, to: c}
`)

	out, _, err := run(t, "distance", "-f", path, "c", "b")
	require.NoError(t, err)
	assert.Equal(t, "distance: 3\nlca: r\n", out)
}

func TestErrors(t *testing.T) {
	_, _, err := run(t, "maxflow")
	assert.ErrorIs(t, err, ErrNoFile)

	path := writeFile(t, "edges:\n  - {from: a, to: b}\n")
	_, _, err = run(t, "maxflow", "-f", path)
	assert.ErrorIs(t, err, errNoTerminals)

	_, _, err = run(t, "matching", "-f", path)
	assert.ErrorIs(t, err, errNoLeft)

	_, _, err = run(t, "distance", "-f", path, "a")
	assert.Error(t, err)
}
