package presenter

import (
	"bytes"

	"histgen-go/pkg/histplotter"
)

// Default image size in pixels.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// HistogramRenderer encodes samples as a monochrome bar histogram.
type HistogramRenderer struct {
	Width, Height int
	Style         histplotter.Style
}

// NewHistogramRenderer returns a renderer drawing black bars on white.
func NewHistogramRenderer(width, height int) *HistogramRenderer {
	return &HistogramRenderer{
		Width:  width,
		Height: height,
		Style:  histplotter.DefaultStyle,
	}
}

// Render bins samples into bins buckets and encodes the plot as format.
func (r *HistogramRenderer) Render(samples []float64, bins int, format string) ([]byte, error) {
	hist, err := histplotter.NewHistogram(samples, bins)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := histplotter.WriteHistogram(&buf, hist, r.Style, format, r.Width, r.Height); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
