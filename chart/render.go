// Package chart renders the consolidated indicator table as a stacked time
// series with administration bands and as a correlation heatmap.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/zalepa/macroar/indicator"
)

// Output file names, relative to the output directory.
const (
	TimeSeriesFile = "time_series.png"
	HeatmapFile    = "correlation_heatmap.png"
	ReportFile     = "report.pdf"
)

const (
	timeSeriesWidth  = 14 * vg.Inch
	timeSeriesHeight = 12 * vg.Inch
	heatmapWidth     = 8 * vg.Inch
	heatmapHeight    = 6 * vg.Inch
	dpi              = 100
)

var (
	chartBlue = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	textColor = color.Black
)

// Options controls the fixed visual parameters of both charts.
type Options struct {
	Axis            Axis
	Administrations []Administration
	Panels          []Panel
	HeatmapTitle    string

	// PDF also writes both charts as a two-page report.pdf.
	PDF bool
}

// DefaultOptions returns the Argentina report settings.
func DefaultOptions() Options {
	return Options{
		Axis:            DefaultAxis(),
		Administrations: DefaultAdministrations(),
		Panels:          DefaultPanels(),
		HeatmapTitle:    "Correlation: inflation, unemployment and poverty (Argentina)",
	}
}

type drawFunc func(dc draw.Canvas) error

type figure struct {
	name string
	w, h vg.Length
	draw drawFunc
}

// Render writes both charts into outDir, creating it if needed and
// overwriting existing files. It returns the paths written.
func Render(t indicator.Table, outDir string, opts Options) ([]string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	figures := []figure{
		{TimeSeriesFile, timeSeriesWidth, timeSeriesHeight, func(dc draw.Canvas) error {
			return TimeSeries(dc, t, opts)
		}},
		{HeatmapFile, heatmapWidth, heatmapHeight, func(dc draw.Canvas) error {
			return Heatmap(dc, t, opts)
		}},
	}

	var written []string
	for _, fig := range figures {
		path := filepath.Join(outDir, fig.name)
		if err := writePNG(path, fig.w, fig.h, fig.draw); err != nil {
			return written, fmt.Errorf("writing %s: %w", fig.name, err)
		}
		written = append(written, path)
	}

	if opts.PDF {
		path := filepath.Join(outDir, ReportFile)
		if err := writeReport(path, figures); err != nil {
			return written, fmt.Errorf("writing %s: %w", ReportFile, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func writePNG(path string, w, h vg.Length, fn drawFunc) error {
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	if err := fn(draw.New(c)); err != nil {
		return err
	}
	return writeCanvas(path, vgimg.PngCanvas{Canvas: c})
}

func writePDF(path string, w, h vg.Length, fn drawFunc) error {
	c := vgpdf.New(w, h)
	if err := fn(draw.New(c)); err != nil {
		return err
	}
	return writeCanvas(path, c)
}

// writeCanvas writes c to path, truncating any existing file.
func writeCanvas(path string, c io.WriterTo) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeReport draws each figure to its own PDF page in a scratch directory
// and merges the pages, in order, into path.
func writeReport(path string, figures []figure) error {
	tmp, err := os.MkdirTemp("", "macroar-pdf-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)

	pages := make([]string, 0, len(figures))
	for i, fig := range figures {
		page := filepath.Join(tmp, fmt.Sprintf("%02d.pdf", i))
		if err := writePDF(page, fig.w, fig.h, fig.draw); err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
		pages = append(pages, page)
	}

	if err := api.MergeCreateFile(pages, path, false, model.NewDefaultConfiguration()); err != nil {
		return fmt.Errorf("merge pdf: %w", err)
	}
	return nil
}
