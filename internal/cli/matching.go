// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsolve/core"
	"github.com/katalvlaran/lvsolve/matching"
)

var errNoLeft = errors.New("lvsolve: the file lists no left vertices")

func newMatchingCommand(o *rootOptions) *cobra.Command {
	var left []string
	cmd := &cobra.Command{
		Use:   "matching",
		Short: "Compute a maximum bipartite matching with Hopcroft-Karp",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, g, err := o.load()
			if err != nil {
				return err
			}
			if len(left) == 0 {
				left = f.Left
			}
			if len(left) == 0 {
				return errNoLeft
			}

			hk, err := matching.NewHopcroftKarp[string, *core.Edge](g, left, matching.WithLogger(o.logger))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "size: %d\n", hk.Size())
			for _, u := range hk.Left() {
				v, ok := hk.Partner(u)
				if !ok {
					v = "-"
				}
				fmt.Fprintf(out, "%s → %s\n", u, v)
			}

			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&left, "left", "l", nil, "left partition (default: file `left`)")

	return cmd
}
