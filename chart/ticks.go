package chart

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// Axis is the fixed horizontal year range of the time series chart.
type Axis struct {
	Min  int `yaml:"min"`
	Max  int `yaml:"max"`
	Step int `yaml:"step"`
}

// DefaultAxis spans 1990-2025 with a tick every two years.
func DefaultAxis() Axis {
	return Axis{Min: 1990, Max: 2025, Step: 2}
}

// yearTicks places a tick every step years from min up to max, regardless
// of the data range. Labels are omitted on panels that share the bottom
// panel's axis.
type yearTicks struct {
	axis   Axis
	labels bool
}

func (yt yearTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	if yt.axis.Step <= 0 {
		return ticks
	}
	for y := yt.axis.Min; y <= yt.axis.Max; y += yt.axis.Step {
		t := plot.Tick{Value: float64(y)}
		if yt.labels {
			t.Label = strconv.Itoa(y)
		}
		ticks = append(ticks, t)
	}
	return ticks
}

// numTicks is plot.DefaultTicks with compact labels for large values.
type numTicks struct{}

func (numTicks) Ticks(min, max float64) []plot.Tick {
	t := plot.DefaultTicks{}
	ticks := t.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = formatCompact(ticks[i].Value)
		}
	}
	return ticks
}

func formatCompact(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e6:
		return strconv.FormatFloat(v/1e6, 'f', 1, 64) + "M"
	case abs >= 1e4:
		return strconv.FormatFloat(v/1e3, 'f', 0, 64) + "k"
	default:
		return strconv.FormatFloat(v, 'g', 6, 64)
	}
}
