// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/epdcentrality/centrality"
)

func (a *app) ingestCmd() *cobra.Command {
	var simulated, allowNonFinite bool

	cmd := &cobra.Command{
		Use:   "ingest [source]",
		Short: "Ingest a container and print a per-ring summary",
		Long: `Ingests ring_sums and the target tables from source (or the configured
source), validates them and prints the per-ring mean and spread along with the
target and evaluation ranges.

Example:
  epdcentrality ingest --simulated sim.parquet`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := a.cfg.Source
			if len(args) == 1 {
				source = args[0]
			}
			if source == "" {
				return errors.New("no source: pass a path or set source in the config")
			}
			if !cmd.Flags().Changed("simulated") {
				simulated = a.cfg.Simulated
			}
			if !cmd.Flags().Changed("allow-non-finite") {
				allowNonFinite = a.cfg.AllowNonFinite
			}

			opts := []centrality.Option{centrality.WithLogger(a.logger)}
			if allowNonFinite {
				opts = append(opts, centrality.WithAllowNonFinite())
			}
			ds, err := centrality.New(simulated, opts...).Ingest(cmd.Context(), source)
			if err != nil {
				return err
			}
			sum, err := centrality.Summarize(ds)
			if err != nil {
				return err
			}

			return printSummary(cmd.OutOrStdout(), ds, sum)
		},
	}
	cmd.Flags().BoolVar(&simulated, "simulated", false, "source is simulation output (target = impact parameter)")
	cmd.Flags().BoolVar(&allowNonFinite, "allow-non-finite", false, "keep NaN/Inf values")

	return cmd
}

func printSummary(w io.Writer, ds *centrality.Dataset, s centrality.Summary) error {
	fmt.Fprintf(w, "run:        %s\n", ds.RunID())
	fmt.Fprintf(w, "source:     %s (%s)\n", ds.Source(), ds.Provenance())
	fmt.Fprintf(w, "events:     %d\n", s.Events)
	fmt.Fprintf(w, "target:     %s min=%g max=%g mean=%g\n",
		ds.Provenance().TargetTable(), s.Target.Min, s.Target.Max, s.Target.Mean)
	evalName := ds.Provenance().EvaluationTable()
	if evalName == "" {
		evalName = "(target)"
	}
	fmt.Fprintf(w, "evaluation: %s min=%g max=%g mean=%g\n\n",
		evalName, s.Evaluation.Min, s.Evaluation.Max, s.Evaluation.Mean)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "ring\tmean\tstddev\t")
	for r := range s.RingMeans {
		fmt.Fprintf(tw, "%d\t%.4g\t%.4g\t\n", r+1, s.RingMeans[r], s.RingStdDevs[r])
	}

	return tw.Flush()
}
