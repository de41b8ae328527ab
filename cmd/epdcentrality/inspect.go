// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/epdcentrality/container"
)

func (a *app) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <source>",
		Short: "List the tables of a container with their shapes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			c, err := container.Open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer func() {
				if cerr := c.Close(); cerr != nil && err == nil {
					err = cerr
				}
			}()

			names, err := c.Names(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "table\trows\tcols")
			for _, name := range names {
				t, err := c.Table(cmd.Context(), name)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\n", name, t.Rows(), t.Cols())
			}
			a.logger.Debug("inspected container")

			return tw.Flush()
		},
	}
}
