package histplotter

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrBins      = errors.New("histogram: number of bins must be positive")
	ErrNonFinite = errors.New("histogram: sample is not finite")
	ErrRange     = errors.New("histogram: sample range cannot be divided into bins")
)

// Histogram represents an equal-width histogram over the observed range of a sample.
type Histogram struct {
	Dividers []float64 // Bin edges, len(Counts)+1
	Counts   []float64 // Number of samples in each bin
}

// NewHistogram bins values into n equal-width buckets spanning [min, max] of the
// values. The maximum is counted in the last bucket. A degenerate range v..v is
// widened by max(0.5, |v|*1e-9) on each side and an empty sample spans [0, 1]
// with zero counts. A range whose width overflows, or whose bin edges do not
// strictly increase, is an ErrRange.
func NewHistogram(values []float64, n int) (*Histogram, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBins, n)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: value %v at %d", ErrNonFinite, v, i)
		}
	}

	lo, hi := 0.0, 1.0
	if len(values) > 0 {
		lo, hi = floats.Min(values), floats.Max(values)
		if lo == hi {
			pad := math.Max(0.5, math.Abs(lo)*1e-9)
			lo, hi = lo-pad, hi+pad
		}
	}
	if math.IsInf(hi-lo, 0) {
		return nil, fmt.Errorf("%w: [%v, %v] is too wide", ErrRange, lo, hi)
	}

	dividers := floats.Span(make([]float64, n+1), lo, hi)
	for i := 1; i < len(dividers); i++ {
		if !(dividers[i-1] < dividers[i]) {
			return nil, fmt.Errorf("%w: [%v, %v] is too narrow for %d bins", ErrRange, lo, hi, n)
		}
	}
	hist := &Histogram{
		Dividers: dividers,
		Counts:   make([]float64, n),
	}
	if len(values) == 0 {
		return hist, nil
	}

	// stat.Histogram wants sorted input and an exclusive upper edge
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	edges := slices.Clone(dividers)
	edges[n] = math.Nextafter(hi, math.Inf(1))
	stat.Histogram(hist.Counts, edges, sorted, nil)

	return hist, nil
}
