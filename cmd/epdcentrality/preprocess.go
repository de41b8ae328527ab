// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/epdcentrality/preprocess"
)

func (a *app) preprocessCmd() *cobra.Command {
	var simulated bool

	cmd := &cobra.Command{
		Use:   "preprocess <ntuple.parquet> <out>",
		Short: "Convert an event-per-row ring ntuple into an ingestible container",
		Long: `Reads a Parquet ntuple with columns r01..r16, RefMult1 and optionally b,
and writes ring_sums, tpc_multiplicity and impact_parameter to out. The output
format follows the extension of out.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []preprocess.Option{preprocess.WithLogger(a.logger)}
			if simulated {
				opts = append(opts, preprocess.WithSimulated())
			}
			if err := preprocess.Convert(cmd.Context(), args[0], args[1], opts...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[1])

			return nil
		},
	}
	cmd.Flags().BoolVar(&simulated, "simulated", false, "require the impact parameter column b")

	return cmd
}
