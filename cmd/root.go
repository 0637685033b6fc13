// Package cmd implements the macroar command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zalepa/macroar/config"
)

type options struct {
	configPath string
	dataDir    string
	reportsDir string
	csv        bool
	pdf        bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var (
		o      options
		logger *zap.Logger
	)

	root := &cobra.Command{
		Use:   "macroar",
		Short: "Chart Argentina's inflation, unemployment and poverty",
		Long: `macroar reads World Bank indicator exports for Argentina (inflation,
unemployment and poverty), joins them into one annual series from 1990 on and
writes two charts: a stacked time series shaded by presidential
administration, and a correlation heatmap of the three indicators.

Input files are read from data/ and charts written to reports/ unless a
config file or flag says otherwise.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger(o.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(o, logger, cmd.OutOrStdout())
		},
	}

	f := root.Flags()
	f.StringVar(&o.configPath, "config", config.DefaultConfigPath(), "config file (missing file means defaults)")
	f.StringVar(&o.dataDir, "data", "", "directory holding the indicator CSV files (overrides config)")
	f.StringVar(&o.reportsDir, "reports", "", "directory the charts are written to (overrides config)")
	f.BoolVar(&o.csv, "csv", false, "also export the consolidated table as "+exportFile)
	f.BoolVar(&o.pdf, "pdf", false, "also write both charts as a two-page report.pdf")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")

	return root
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
