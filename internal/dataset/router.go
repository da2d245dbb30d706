package dataset

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Directory names per label.
const (
	SingleDir  = "true"
	MixtureDir = "false"
)

// Dir is the output subdirectory for the shape's label.
func (s Shape) Dir() string {
	if s.Label() {
		return SingleDir
	}
	return MixtureDir
}

// DirectoryFor returns the label directory under root.
func DirectoryFor(shape Shape, root string) string {
	return filepath.Join(root, shape.Dir())
}

// EnsureDirectory creates the label directory under root if it is missing.
func EnsureDirectory(shape Shape, root string) (string, error) {
	dir := DirectoryFor(shape, root)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	return dir, nil
}

// FilenameFor names an artifact after its index and generating parameters:
//
//	0000_loc50.0_scale20.0_size1000_bins100.png
//	0000_loc25.0-75.0_scale20.0-20.0_size500-500_bins100.png
//
// The index is left-padded with zeros to width digits; width 0 disables padding.
func FilenameFor(index, width int, d Distribution, r RenderSpec) string {
	locs := make([]string, len(d.Components))
	scales := make([]string, len(d.Components))
	sizes := make([]string, len(d.Components))
	for i, c := range d.Components {
		locs[i] = FormatFloat(c.Loc)
		scales[i] = FormatFloat(c.Scale)
		sizes[i] = strconv.Itoa(c.Size)
	}

	return fmt.Sprintf("%0*d_loc%s_scale%s_size%s_bins%d.%s",
		width, index,
		strings.Join(locs, "-"),
		strings.Join(scales, "-"),
		strings.Join(sizes, "-"),
		r.Bins, r.Format)
}

// FormatFloat renders v as the shortest decimal that round-trips. Integral
// values keep a trailing ".0" and exponents below -4 or from 16 up switch to
// exponent form, e.g. "50.0", "0.1", "1.5e-05", "1e+20".
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	if v != 0 {
		e := strconv.FormatFloat(v, 'e', -1, 64)
		exp, _ := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
		if exp < -4 || exp >= 16 {
			return e
		}
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
