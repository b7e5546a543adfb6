// SPDX-License-Identifier: MIT
// Package: lvsolve/builder
//
// api.go - the BuildGraph orchestrator and the Constructor type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsolve/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate their parameters before touching g and
// return sentinel errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves the builder
// configuration from bopts and applies cons in order.
//
// Errors: the first constructor error, wrapped as "BuildGraph: %w"; a nil
// constructor yields ErrConstructFailed.
//
// Complexity: O(len(bopts)) plus the cost of every constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
