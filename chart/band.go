package chart

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// bandOpacity is the fill opacity of administration bands.
const bandOpacity = 0.15

// bands shades each administration's interval over the full height of the
// data area. It has no data range, so it never widens the axes.
type bands struct {
	admins []Administration
}

func (b bands) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, _ := plt.Transforms(&c)
	for _, a := range b.admins {
		clr, err := ParseColor(a.Color)
		if err != nil {
			continue
		}
		x0 := clampX(c, trX(float64(a.Start)))
		x1 := clampX(c, trX(float64(a.End)))
		if x1 <= x0 {
			continue
		}
		c.FillPolygon(withAlpha(clr, bandOpacity), []vg.Point{
			{X: x0, Y: c.Min.Y},
			{X: x1, Y: c.Min.Y},
			{X: x1, Y: c.Max.Y},
			{X: x0, Y: c.Max.Y},
		})
	}
}

// bandLabels writes each administration's name, rotated to read upwards,
// at the interval midpoint along the bottom of the data area.
type bandLabels struct {
	admins []Administration
	size   vg.Length
}

func (b bandLabels) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, _ := plt.Transforms(&c)
	sty := draw.TextStyle{
		Color:    textColor,
		Font:     plot.DefaultFont,
		Handler:  plot.DefaultTextHandler,
		Rotation: math.Pi / 2,
		XAlign:   draw.XLeft,
		YAlign:   draw.YCenter,
	}
	sty.Font.Size = b.size
	for _, a := range b.admins {
		x := trX(a.Mid())
		if x < c.Min.X || x > c.Max.X {
			continue
		}
		c.FillText(sty, vg.Point{X: x, Y: c.Min.Y + vg.Points(2)}, a.Name)
	}
}

func clampX(c draw.Canvas, x vg.Length) vg.Length {
	if x < c.Min.X {
		return c.Min.X
	}
	if x > c.Max.X {
		return c.Max.X
	}
	return x
}
