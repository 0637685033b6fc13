package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zalepa/macroar/chart"
	"github.com/zalepa/macroar/indicator"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "macroar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "ARG", cfg.Country)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "reports", cfg.ReportsDir)
	assert.Equal(t, 1990, cfg.YearFloor)
	assert.Equal(t, chart.Axis{Min: 1990, Max: 2025, Step: 2}, cfg.Axis)
	assert.Equal(t, indicator.DefaultSpecs(), cfg.Specs())
	assert.Equal(t, chart.DefaultAdministrations(), cfg.Administrations)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
country: URY
year_floor: 2000
axis: {min: 2000, max: 2020, step: 5}
administrations:
  - {start: 2005, end: 2010, name: Vázquez, color: "#aabbcc"}
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "URY", cfg.Country)
	assert.Equal(t, 2000, cfg.YearFloor)
	assert.Equal(t, "data", cfg.DataDir, "unset scalars keep their default")
	assert.Equal(t, chart.Axis{Min: 2000, Max: 2020, Step: 5}, cfg.Axis)
	require.Len(t, cfg.Administrations, 1)
	assert.Equal(t, "Vázquez", cfg.Administrations[0].Name)
	assert.Len(t, cfg.Indicators, 3)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(writeConfig(t, "country: [unclosed"))
	assert.True(t, errors.Is(err, ErrLoadConfig), "got %v", err)

	_, err = Load(writeConfig(t, "country: \"\""))
	assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"zero step", func(c *Config) { c.Axis.Step = 0 }, "axis.step"},
		{"inverted axis", func(c *Config) { c.Axis.Min = 2030 }, "axis.min"},
		{"single indicator", func(c *Config) { c.Indicators = c.Indicators[:1] }, "at least 2"},
		{"duplicate indicator", func(c *Config) { c.Indicators[1].Name = c.Indicators[0].Name }, "duplicate"},
		{"missing file", func(c *Config) { c.Indicators[2].File = "" }, "indicators[2].file"},
		{"inverted term", func(c *Config) { c.Administrations[0].End = 1980 }, "ends before"},
		{"unknown color", func(c *Config) { c.Administrations[3].Color = "octarine" }, "unknown color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestChartOptions(t *testing.T) {
	cfg := Default()
	cfg.Indicators[2].Title = ""
	opts := cfg.ChartOptions()

	require.Len(t, opts.Panels, 3)
	assert.Equal(t, chart.DefaultPanels()[:2], opts.Panels[:2])
	assert.Equal(t, "poverty", opts.Panels[2].Title)
	assert.Equal(t, "Poverty (%)", opts.Panels[2].Label)
	assert.False(t, opts.PDF)
}
