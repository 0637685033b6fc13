package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/zalepa/macroar/indicator"
)

const (
	colorBarWidth = 1.3 * vg.Inch
	paletteSize   = 255
)

// corrGrid adapts a correlation matrix to plotter.GridXYZ with the first
// variable in the top row, as in a printed matrix.
type corrGrid struct {
	m *mat.SymDense
}

func (g corrGrid) Dims() (c, r int) {
	n := g.m.SymmetricDim()
	return n, n
}

func (g corrGrid) Z(c, r int) float64 {
	n := g.m.SymmetricDim()
	v := g.m.At(n-1-r, c)
	if math.IsNaN(v) {
		return v
	}
	// Rounding can push a perfect correlation just past 1.
	return math.Max(-1, math.Min(1, v))
}

func (g corrGrid) X(c int) float64 { return float64(c) }
func (g corrGrid) Y(r int) float64 { return float64(r) }

// coolwarm returns the diverging blue-red map fixed to [-1, 1], so zero
// correlation sits at its neutral midpoint.
func coolwarm() palette.ColorMap {
	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)
	return cm
}

// Heatmap draws the annotated correlation matrix of the table's columns with
// a labelled color bar to its right.
func Heatmap(dc draw.Canvas, t indicator.Table, opts Options) error {
	n := len(t.Columns)
	if n < 2 {
		return fmt.Errorf("heatmap: need at least two columns, have %d", n)
	}
	corr := Correlation(t)
	grid := corrGrid{m: corr}
	cm := coolwarm()

	hm := plotter.NewHeatMap(grid, cm.Palette(paletteSize))
	hm.Min = -1
	hm.Max = 1
	hm.NaN = color.White

	labels, err := annotations(grid)
	if err != nil {
		return fmt.Errorf("heatmap labels: %w", err)
	}

	p := plot.New()
	p.Title.Text = opts.HeatmapTitle
	p.Title.TextStyle.Font.Size = vg.Points(12)
	p.Add(hm, labels)

	xTicks := make([]plot.Tick, n)
	yTicks := make([]plot.Tick, n)
	for i, name := range t.Columns {
		xTicks[i] = plot.Tick{Value: float64(i), Label: name}
		yTicks[i] = plot.Tick{Value: float64(n - 1 - i), Label: name}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xTicks)
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)
	p.X.Padding = 0
	p.Y.Padding = 0

	bar := plot.New()
	bar.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true})
	bar.HideX()
	bar.Y.Label.Text = "Pearson correlation"
	bar.Y.Padding = 0

	left := draw.Crop(dc, 0, -colorBarWidth, 0, 0)
	right := draw.Crop(dc, dc.Max.X-dc.Min.X-colorBarWidth+vg.Points(12), -vg.Points(30), vg.Points(36), -vg.Points(30))
	p.Draw(left)
	bar.Draw(right)
	return nil
}

// annotations writes each cell's coefficient at its center, two decimals,
// in white over saturated cells.
func annotations(g corrGrid) (*plotter.Labels, error) {
	c, r := g.Dims()
	xyl := plotter.XYLabels{
		XYs:    make(plotter.XYs, 0, c*r),
		Labels: make([]string, 0, c*r),
	}
	var styles []draw.TextStyle
	for i := 0; i < c; i++ {
		for j := 0; j < r; j++ {
			v := g.Z(i, j)
			xyl.XYs = append(xyl.XYs, plotter.XY{X: g.X(i), Y: g.Y(j)})
			xyl.Labels = append(xyl.Labels, formatCoefficient(v))

			sty := draw.TextStyle{
				Color:   textColor,
				Font:    plot.DefaultFont,
				Handler: plot.DefaultTextHandler,
				XAlign:  draw.XCenter,
				YAlign:  draw.YCenter,
			}
			sty.Font.Size = vg.Points(12)
			if !math.IsNaN(v) && math.Abs(v) >= 0.6 {
				sty.Color = color.White
			}
			styles = append(styles, sty)
		}
	}
	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, err
	}
	labels.TextStyle = styles
	return labels, nil
}

// formatCoefficient renders a correlation to two decimals.
func formatCoefficient(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.2f", v)
}
