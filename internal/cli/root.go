// SPDX-License-Identifier: MIT

// Package cli implements the lvsolve command: each subcommand loads a graph
// file and runs one solver over it.
package cli

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsolve/core"
	"github.com/katalvlaran/lvsolve/graphfile"
)

// ErrNoFile is returned when a subcommand runs without --file.
var ErrNoFile = errors.New("lvsolve: no graph file given (use --file)")

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	file    string
	verbose bool
	logger  *log.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand(version string) *cobra.Command {
	o := &rootOptions{logger: log.New()}

	root := &cobra.Command{
		Use:          "lvsolve",
		Short:        "Run max-flow, bipartite matching and tree-distance solvers on a YAML graph file.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			o.logger.SetOutput(cmd.ErrOrStderr())
			if o.verbose {
				o.logger.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().StringVarP(&o.file, "file", "f", "", "path to the graph file")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newMaxFlowCommand(o),
		newMatchingCommand(o),
		newDistanceCommand(o),
	)

	return root
}

// Execute runs the command tree with the process arguments.
func Execute(ctx context.Context, version string) error {
	return NewRootCommand(version).ExecuteContext(ctx)
}

// load reads the graph file named by --file and builds its graph.
func (o *rootOptions) load() (*graphfile.File, *core.Graph, error) {
	if o.file == "" {
		return nil, nil, ErrNoFile
	}
	o.logger.Debugf("reading graph from %s", o.file)

	f, err := graphfile.Load(o.file)
	if err != nil {
		return nil, nil, err
	}
	g, err := f.Graph()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", o.file, err)
	}
	o.logger.WithFields(log.Fields{
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
		"directed": g.Directed(),
	}).Debug("graph loaded")

	return f, g, nil
}
