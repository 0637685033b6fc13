package config

import (
	"fmt"

	"github.com/zalepa/macroar/chart"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Country == "" {
		return fmt.Errorf("%w: country is required", ErrInvalidConfig)
	}
	if c.DataDir == "" {
		return fmt.Errorf("%w: data_dir is required", ErrInvalidConfig)
	}
	if c.ReportsDir == "" {
		return fmt.Errorf("%w: reports_dir is required", ErrInvalidConfig)
	}

	if c.Axis.Step < 1 {
		return fmt.Errorf("%w: axis.step must be >= 1, got %d", ErrInvalidConfig, c.Axis.Step)
	}
	if c.Axis.Min >= c.Axis.Max {
		return fmt.Errorf("%w: axis.min (%d) must be below axis.max (%d)", ErrInvalidConfig, c.Axis.Min, c.Axis.Max)
	}

	// The heatmap needs a pair to correlate.
	if len(c.Indicators) < 2 {
		return fmt.Errorf("%w: at least 2 indicators are required, got %d", ErrInvalidConfig, len(c.Indicators))
	}
	seen := make(map[string]bool, len(c.Indicators))
	for i, ind := range c.Indicators {
		if ind.Name == "" {
			return fmt.Errorf("%w: indicators[%d].name is required", ErrInvalidConfig, i)
		}
		if ind.File == "" {
			return fmt.Errorf("%w: indicators[%d].file is required", ErrInvalidConfig, i)
		}
		if seen[ind.Name] {
			return fmt.Errorf("%w: duplicate indicator %q", ErrInvalidConfig, ind.Name)
		}
		seen[ind.Name] = true
	}

	for i, a := range c.Administrations {
		if a.End < a.Start {
			return fmt.Errorf("%w: administrations[%d] (%s) ends before it starts", ErrInvalidConfig, i, a.Name)
		}
		if _, err := chart.ParseColor(a.Color); err != nil {
			return fmt.Errorf("%w: administrations[%d] (%s): %v", ErrInvalidConfig, i, a.Name, err)
		}
	}
	return nil
}
