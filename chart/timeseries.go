package chart

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/zalepa/macroar/indicator"
)

// Panel describes how one table column is drawn in the time series chart.
type Panel struct {
	Column string
	Title  string
	Label  string
}

// DefaultPanels matches indicator.DefaultSpecs.
func DefaultPanels() []Panel {
	return []Panel{
		{Column: "inflation", Title: "Argentina: annual inflation", Label: "Inflation (%)"},
		{Column: "unemployment", Title: "Argentina: unemployment rate", Label: "Unemployment (%)"},
		{Column: "poverty", Title: "Argentina: poverty (national line)", Label: "Poverty (%)"},
	}
}

// TimeSeries draws one stacked panel per entry of opts.Panels, sharing the
// fixed year axis. Every panel carries the administration bands; the bottom
// one also carries their names and the axis labels.
func TimeSeries(dc draw.Canvas, t indicator.Table, opts Options) error {
	panels := opts.Panels
	if len(panels) == 0 {
		for _, col := range t.Columns {
			panels = append(panels, Panel{Column: col, Title: col, Label: col})
		}
	}
	if len(panels) == 0 {
		return fmt.Errorf("time series: no columns to draw")
	}

	years := t.Years()
	plots := make([][]*plot.Plot, len(panels))
	for i, panel := range panels {
		vals, ok := t.Column(panel.Column)
		if !ok {
			return fmt.Errorf("time series: no column %q", panel.Column)
		}
		bottom := i == len(panels)-1

		p := plot.New()
		p.Title.Text = panel.Title
		p.Title.TextStyle.Font.Size = vg.Points(14)
		p.Y.Label.Text = panel.Label
		p.Y.Tick.Marker = numTicks{}
		p.Add(bands{admins: opts.Administrations}, plotter.NewGrid())

		if pts := linePoints(years, vals); len(pts) > 0 {
			line, err := plotter.NewLine(pts)
			if err != nil {
				return fmt.Errorf("time series %s: %w", panel.Column, err)
			}
			line.Color = chartBlue
			line.Width = vg.Points(2)
			p.Add(line)
		}

		if bottom {
			p.X.Label.Text = "Year"
			p.Add(bandLabels{admins: opts.Administrations, size: vg.Points(8)})
		}
		p.X.Tick.Marker = yearTicks{axis: opts.Axis, labels: bottom}
		p.X.Min = float64(opts.Axis.Min)
		p.X.Max = float64(opts.Axis.Max)

		plots[i] = []*plot.Plot{p}
	}

	tiles := draw.Tiles{
		Rows:      len(panels),
		Cols:      1,
		PadTop:    vg.Points(8),
		PadBottom: vg.Points(8),
		PadLeft:   vg.Points(8),
		PadRight:  vg.Points(16),
		PadY:      vg.Points(12),
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}
	return nil
}

// linePoints pairs years with present values; missing years are skipped.
func linePoints(years []int, vals []indicator.Value) plotter.XYs {
	var pts plotter.XYs
	for i, v := range vals {
		if !v.Valid {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(years[i]), Y: v.V})
	}
	return pts
}
