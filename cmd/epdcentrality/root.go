// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/epdcentrality/config"
	"github.com/katalvlaran/epdcentrality/logging"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "epdcentrality",
		Short: "EPD centrality data ingestion",
		Long: `epdcentrality reads Event Plane Detector ring sums together with the
impact parameter (simulation) or TPC multiplicity (real data), validates
their shapes and reports per-event feature statistics.

Containers are Parquet (.parquet, .pq) or SQLite (.db, .sqlite, .sqlite3)
files holding the tables ring_sums, impact_parameter and tpc_multiplicity.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "config file (YAML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		a.ingestCmd(),
		a.inspectCmd(),
		a.preprocessCmd(),
	)

	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.cfg, a.logger = cfg, logger

	return nil
}
