package chart

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Administration is a presidential term drawn as a shaded band.
type Administration struct {
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// Mid returns the midpoint of the term, where its label is drawn.
func (a Administration) Mid() float64 {
	return float64(a.Start+a.End) / 2
}

// DefaultAdministrations lists Argentina's administrations since 1990.
func DefaultAdministrations() []Administration {
	return []Administration{
		{Start: 1990, End: 1999, Name: "Menem", Color: "lightblue"},
		{Start: 1999, End: 2001, Name: "De la Rúa", Color: "lightgreen"},
		{Start: 2002, End: 2003, Name: "Duhalde", Color: "khaki"},
		{Start: 2003, End: 2007, Name: "N. Kirchner", Color: "orange"},
		{Start: 2007, End: 2015, Name: "C. Kirchner", Color: "salmon"},
		{Start: 2015, End: 2019, Name: "Macri", Color: "lightgrey"},
		{Start: 2019, End: 2023, Name: "A. Fernández", Color: "plum"},
		{Start: 2023, End: 2025, Name: "Milei", Color: "lightyellow"},
	}
}

// namedColors follows the CSS/matplotlib names.
var namedColors = map[string]color.RGBA{
	"black":       {0, 0, 0, 255},
	"white":       {255, 255, 255, 255},
	"gray":        {128, 128, 128, 255},
	"grey":        {128, 128, 128, 255},
	"lightgray":   {211, 211, 211, 255},
	"lightgrey":   {211, 211, 211, 255},
	"red":         {255, 0, 0, 255},
	"green":       {0, 128, 0, 255},
	"blue":        {0, 0, 255, 255},
	"orange":      {255, 165, 0, 255},
	"gold":        {255, 215, 0, 255},
	"khaki":       {240, 230, 140, 255},
	"salmon":      {250, 128, 114, 255},
	"lightcoral":  {240, 128, 128, 255},
	"plum":        {221, 160, 221, 255},
	"thistle":     {216, 191, 216, 255},
	"lavender":    {230, 230, 250, 255},
	"pink":        {255, 192, 203, 255},
	"lightpink":   {255, 182, 193, 255},
	"wheat":       {245, 222, 179, 255},
	"tan":         {210, 180, 140, 255},
	"peachpuff":   {255, 218, 185, 255},
	"lightblue":   {173, 216, 230, 255},
	"lightcyan":   {224, 255, 255, 255},
	"lightgreen":  {144, 238, 144, 255},
	"palegreen":   {152, 251, 152, 255},
	"lightyellow": {255, 255, 224, 255},
}

// ParseColor resolves a color name or a #rrggbb hex string.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err == nil {
			return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}

// withAlpha returns c at the given opacity, in [0, 1].
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}
