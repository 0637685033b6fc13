package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/zalepa/macroar/chart"
	"github.com/zalepa/macroar/config"
	"github.com/zalepa/macroar/indicator"
)

// runReport loads the indicators, joins them and renders the charts. Any
// failure aborts the whole run; nothing is written from a partial load.
func runReport(o options, log *zap.Logger, out io.Writer) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.dataDir != "" {
		cfg.DataDir = o.dataDir
	}
	if o.reportsDir != "" {
		cfg.ReportsDir = o.reportsDir
	}
	log.Debug("Configuration loaded",
		zap.String("config", o.configPath),
		zap.String("country", cfg.Country),
		zap.String("data_dir", cfg.DataDir),
		zap.String("reports_dir", cfg.ReportsDir),
		zap.Int("year_floor", cfg.YearFloor))

	tbl, err := indicator.Load(cfg.DataDir, cfg.Specs(), cfg.Country, cfg.YearFloor)
	if err != nil {
		return err
	}
	fields := []zap.Field{zap.Strings("columns", tbl.Columns), zap.Int("rows", tbl.Len())}
	if years := tbl.Years(); len(years) > 0 {
		fields = append(fields, zap.Int("first_year", years[0]), zap.Int("last_year", years[len(years)-1]))
	}
	log.Info("Indicators joined", fields...)
	if tbl.Len() == 0 {
		log.Warn("No common years across indicators; charts will be empty")
	}

	opts := cfg.ChartOptions()
	opts.PDF = o.pdf
	written, err := chart.Render(tbl, cfg.ReportsDir, opts)
	for _, path := range written {
		log.Info("Wrote chart", zap.String("path", path))
	}
	if err != nil {
		return err
	}

	if o.csv {
		path := filepath.Join(cfg.ReportsDir, exportFile)
		if err := writeCSV(path, tbl); err != nil {
			return fmt.Errorf("writing %s: %w", exportFile, err)
		}
		log.Info("Wrote table", zap.String("path", path))
	}

	fmt.Fprintf(out, "Analysis complete. Charts saved in '%s/' folder.\n", strings.TrimSuffix(cfg.ReportsDir, "/"))
	return nil
}
