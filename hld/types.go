// SPDX-License-Identifier: MIT

package hld

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for decomposition and queries.
var (
	// ErrGraphNil is returned when a nil graph is passed to New.
	ErrGraphNil = errors.New("hld: graph is nil")

	// ErrEmptyTree is returned for a graph without vertices.
	ErrEmptyTree = errors.New("hld: tree is empty")

	// ErrNotTree is returned when the graph has a cycle or is disconnected.
	ErrNotTree = errors.New("hld: graph is not a tree")

	// ErrVertexNotFound is returned when a query names an unknown vertex.
	ErrVertexNotFound = errors.New("hld: vertex not found")
)

// Option configures New.
type Option func(*Options)

// Options holds decomposition parameters.
//   - Logger: receives a Debug-level summary of the decomposition.
type Options struct {
	Logger logrus.FieldLogger
}

// DefaultOptions returns the logrus standard logger.
func DefaultOptions() Options {
	return Options{Logger: logrus.StandardLogger()}
}

// WithLogger routes the decomposition summary to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
