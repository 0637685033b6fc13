// Package config holds the report settings: where the indicator files live,
// which country and years to keep, and how the charts are annotated. Every
// field has a default, so a missing config file reproduces the standard
// Argentina report.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zalepa/macroar/chart"
	"github.com/zalepa/macroar/indicator"
)

// Config holds the report configuration.
type Config struct {
	Country         string                 `yaml:"country"`
	DataDir         string                 `yaml:"data_dir"`
	ReportsDir      string                 `yaml:"reports_dir"`
	YearFloor       int                    `yaml:"year_floor"`
	HeatmapTitle    string                 `yaml:"heatmap_title"`
	Axis            chart.Axis             `yaml:"axis"`
	Indicators      []Indicator            `yaml:"indicators"`
	Administrations []chart.Administration `yaml:"administrations"`
}

// Indicator is one input file and how its panel is titled.
type Indicator struct {
	Name  string `yaml:"name"`
	File  string `yaml:"file"`
	Label string `yaml:"label"`
	Title string `yaml:"title"`
}

// Default returns the configuration of the Argentina report.
func Default() *Config {
	opts := chart.DefaultOptions()
	panels := chart.DefaultPanels()
	specs := indicator.DefaultSpecs()

	inds := make([]Indicator, len(specs))
	for i, s := range specs {
		inds[i] = Indicator{Name: s.Name, File: s.File, Label: panels[i].Label, Title: panels[i].Title}
	}

	return &Config{
		Country:         indicator.DefaultCountry,
		DataDir:         "data",
		ReportsDir:      "reports",
		YearFloor:       indicator.DefaultFloor,
		HeatmapTitle:    opts.HeatmapTitle,
		Axis:            opts.Axis,
		Indicators:      inds,
		Administrations: opts.Administrations,
	}
}

// DefaultConfigPath returns the config file looked for in the working
// directory.
func DefaultConfigPath() string {
	return "macroar.yaml"
}

// Load reads the config file over the defaults. A missing file yields the
// defaults. Lists given in the file replace the default lists entirely.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("%w: reading config file: %v", ErrLoadConfig, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing config file: %v", ErrLoadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Specs returns the indicator files to load, in join order.
func (c *Config) Specs() []indicator.Spec {
	specs := make([]indicator.Spec, len(c.Indicators))
	for i, ind := range c.Indicators {
		specs[i] = indicator.Spec{Name: ind.Name, File: ind.File}
	}
	return specs
}

// ChartOptions returns the renderer settings. Panels without a label or
// title fall back to the indicator name.
func (c *Config) ChartOptions() chart.Options {
	panels := make([]chart.Panel, len(c.Indicators))
	for i, ind := range c.Indicators {
		p := chart.Panel{Column: ind.Name, Title: ind.Title, Label: ind.Label}
		if p.Title == "" {
			p.Title = ind.Name
		}
		if p.Label == "" {
			p.Label = ind.Name
		}
		panels[i] = p
	}
	return chart.Options{
		Axis:            c.Axis,
		Administrations: c.Administrations,
		Panels:          panels,
		HeatmapTitle:    c.HeatmapTitle,
	}
}
