// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvsolve/core"
	"github.com/katalvlaran/lvsolve/flow"
)

var errNoTerminals = errors.New("lvsolve: source and sink are required")

type maxFlowOptions struct {
	source  string
	sink    string
	epsilon float64
}

// bind registers the flags. Empty or zero values fall back to the file.
func (m *maxFlowOptions) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&m.source, "source", "s", "", "source vertex (default: file `source`)")
	fs.StringVarP(&m.sink, "sink", "t", "", "sink vertex (default: file `sink`)")
	fs.Float64Var(&m.epsilon, "epsilon", 0, "residual tolerance (default: file `epsilon`, else 1e-9)")
}

func newMaxFlowCommand(o *rootOptions) *cobra.Command {
	m := &maxFlowOptions{}
	cmd := &cobra.Command{
		Use:   "maxflow",
		Short: "Compute a maximum flow and minimum cut with Dinic's algorithm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, g, err := o.load()
			if err != nil {
				return err
			}
			source, sink := firstNonEmpty(m.source, f.Source), firstNonEmpty(m.sink, f.Sink)
			if source == "" || sink == "" {
				return errNoTerminals
			}

			opts := []flow.Option{flow.WithLogger(o.logger)}
			if eps := firstNonZero(m.epsilon, f.Epsilon); eps != 0 {
				opts = append(opts, flow.WithEpsilon(eps))
			}
			d, err := flow.NewDinic[string, *core.Edge](g, opts...)
			if err != nil {
				return err
			}
			if err = d.ComputeMaxFlow(source, sink); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			value, _ := d.MaxFlowValue()
			fmt.Fprintf(out, "max flow: %g\n", value)
			view, _ := d.Flow()
			for e, x := range view.All() {
				fmt.Fprintf(out, "%s→%s %g/%g\n", e.From, e.To, x, e.Weight)
			}
			side, _ := d.MinCut()
			fmt.Fprintf(out, "min cut: %v\n", side)

			return nil
		},
	}
	m.bind(cmd.Flags())

	return cmd
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}

	return b
}

func firstNonZero(a, b float64) float64 {
	if a != 0 {
		return a
	}

	return b
}
