package histplotter

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

var ErrUnsupportedFormat = errors.New("histogram: unsupported image format")

// DPI of raster output. At 72 dpi one point is one pixel.
const DPI = 72

// Style holds the fixed colors of a histogram image.
type Style struct {
	Bar        color.Color
	Background color.Color
}

// DefaultStyle draws black bars on white.
var DefaultStyle = Style{
	Bar:        color.Black,
	Background: color.White,
}

// MakeHistogramPlot builds a bar histogram without title or legend.
func MakeHistogramPlot(h *Histogram, style Style) *plot.Plot {
	p := plot.New()
	p.BackgroundColor = style.Background

	bins := make([]plotter.HistogramBin, len(h.Counts))
	for i, c := range h.Counts {
		bins[i] = plotter.HistogramBin{
			Min:    h.Dividers[i],
			Max:    h.Dividers[i+1],
			Weight: c,
		}
	}

	p.Add(&plotter.Histogram{
		Bins:      bins,
		Width:     h.Dividers[1] - h.Dividers[0],
		FillColor: style.Bar,
		LineStyle: draw.LineStyle{
			Color: style.Bar,
			Width: vg.Points(0.5),
		},
	})

	p.Y.Min = 0
	return p
}

// NewCanvas returns a canvas that encodes to format once drawn on.
// Raster sizes are given in pixels and rendered at DPI.
func NewCanvas(format string, width, height int) (vg.CanvasWriterTo, error) {
	w := vg.Length(width) * vg.Inch / DPI
	h := vg.Length(height) * vg.Inch / DPI

	raster := func() *vgimg.Canvas {
		return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(DPI))
	}

	switch strings.ToLower(format) {
	case "png":
		return vgimg.PngCanvas{Canvas: raster()}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: raster()}, nil
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: raster()}, nil
	case "pdf":
		return vgpdf.New(w, h), nil
	case "svg":
		return vgsvg.New(w, h), nil
	case "eps":
		return vgeps.New(w, h), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// WriteHistogram draws h onto a canvas of the given format and writes the
// encoded image to w.
func WriteHistogram(w io.Writer, h *Histogram, style Style, format string, width, height int) error {
	c, err := NewCanvas(format, width, height)
	if err != nil {
		return err
	}

	p := MakeHistogramPlot(h, style)
	p.Draw(draw.New(c))

	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("histogram: encode %s: %w", format, err)
	}
	return nil
}
