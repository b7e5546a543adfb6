// SPDX-License-Identifier: MIT
//
// Package graphfile decodes a YAML graph description, plus the parameters of
// the solver that will consume it, into a core.Graph.
//
//	directed: true
//	vertices: [s, a, t]          # optional; fixes vertex order
//	edges:
//	  - {from: s, to: a, weight: 3}
//	  - {from: a, to: t}         # weight defaults to 1
//	source: s                    # flow
//	sink: t                      # flow
//	epsilon: 1e-9                # flow, optional
//	left: [s]                    # matching
//
// Unknown keys are rejected.
package graphfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsolve/core"
)

// DefaultWeight is the weight of an edge without a weight key.
const DefaultWeight = 1.0

var (
	// ErrEmptyDocument is returned when the input holds no YAML document.
	ErrEmptyDocument = errors.New("graphfile: empty document")

	// ErrEmptyEndpoint is returned when an edge omits from or to.
	ErrEmptyEndpoint = errors.New("graphfile: edge endpoint is empty")
)

// File is one decoded graph description.
type File struct {
	Directed bool     `yaml:"directed"`
	Vertices []string `yaml:"vertices"`
	Edges    []Edge   `yaml:"edges"`

	Left    []string `yaml:"left"`
	Source  string   `yaml:"source"`
	Sink    string   `yaml:"sink"`
	Epsilon float64  `yaml:"epsilon"`
}

// Edge is one edge entry. A nil Weight means DefaultWeight.
type Edge struct {
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Weight *float64 `yaml:"weight"`
}

// Decode reads one YAML document from r.
//
// Errors: ErrEmptyDocument, or a yaml error wrapped with "graphfile: decode".
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("graphfile: decode: %w", err)
	}

	return &f, nil
}

// Load opens path and decodes it.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	defer fh.Close()

	f, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Graph builds a weighted multigraph: listed vertices first, then edges in
// file order (endpoints are created on demand).
//
// Errors: ErrEmptyEndpoint, or a core insertion error, wrapped with the
// entry index.
func (f *File) Graph() (*core.Graph, error) {
	g := core.NewGraph(
		core.WithDirected(f.Directed),
		core.WithWeighted(),
		core.WithMultiEdges(),
		core.WithLoops(),
	)
	for i, v := range f.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("graphfile: vertices[%d]: %w", i, err)
		}
	}
	for i, e := range f.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: edges[%d]", ErrEmptyEndpoint, i)
		}
		w := DefaultWeight
		if e.Weight != nil {
			w = *e.Weight
		}
		if _, err := g.AddEdge(e.From, e.To, w); err != nil {
			return nil, fmt.Errorf("graphfile: edges[%d]: %w", i, err)
		}
	}

	return g, nil
}
