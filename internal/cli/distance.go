// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsolve/core"
	"github.com/katalvlaran/lvsolve/hld"
)

func newDistanceCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "distance u v",
		Short: "Print the tree distance and lowest common ancestor of two vertices",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := o.load()
			if err != nil {
				return err
			}
			d, err := hld.New[string, *core.Edge](g, hld.WithLogger(o.logger))
			if err != nil {
				return err
			}

			dist, err := d.Distance(args[0], args[1])
			if err != nil {
				return err
			}
			lca, err := d.LCA(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "distance: %d\nlca: %s\n", dist, lca)

			return nil
		},
	}
}
