package dataset

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestFilenameFor(t *testing.T) {
	tests := []struct {
		name  string
		index int
		width int
		dist  Distribution
		spec  RenderSpec
		want  string
	}{
		{
			name:  "single defaults",
			index: 0, width: 4,
			dist: NewSingle(50, 20, 1000),
			spec: RenderSpec{Bins: 100, Format: "png"},
			want: "0000_loc50.0_scale20.0_size1000_bins100.png",
		},
		{
			name:  "mixture defaults",
			index: 0, width: 4,
			dist: NewMixture(Component{25, 20, 500}, Component{75, 20, 500}),
			spec: RenderSpec{Bins: 100, Format: "png"},
			want: "0000_loc25.0-75.0_scale20.0-20.0_size500-500_bins100.png",
		},
		{
			name:  "no padding",
			index: 12, width: 0,
			dist: NewSingle(0.5, 1.25, 10),
			spec: RenderSpec{Bins: 7, Format: "jpg"},
			want: "12_loc0.5_scale1.25_size10_bins7.jpg",
		},
		{
			name:  "index wider than padding",
			index: 12345, width: 2,
			dist: NewSingle(-3, 1, 0),
			spec: RenderSpec{Bins: 1, Format: "tiff"},
			want: "12345_loc-3.0_scale1.0_size0_bins1.tiff",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilenameFor(tt.index, tt.width, tt.dist, tt.spec); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFilenameForPadding(t *testing.T) {
	d := NewSingle(50, 20, 1000)
	r := RenderSpec{Bins: 100, Format: "png"}
	for _, width := range []int{2, 4, 17, 99} {
		name := FilenameFor(3, width, d, r)
		prefix, _, _ := strings.Cut(name, "_")
		if len(prefix) != width {
			t.Errorf("width %d: expected %d digits, got %q", width, width, prefix)
		}
		if strings.TrimLeft(prefix, "0") != "3" {
			t.Errorf("width %d: expected zero padded 3, got %q", width, prefix)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	tests := map[float64]string{
		50:      "50.0",
		20:      "20.0",
		0.1:     "0.1",
		-2.5:    "-2.5",
		0:       "0.0",
		1e-4:    "0.0001",
		1.5e-5:  "1.5e-05",
		1e15:    "1000000000000000.0",
		1e16:    "1e+16",
		1.25e20: "1.25e+20",
	}
	for v, want := range tests {
		if got := FormatFloat(v); got != want {
			t.Errorf("FormatFloat(%v): expected %q, got %q", v, want, got)
		}
	}
}

func TestDirectoryFor(t *testing.T) {
	root := filepath.Join("var", "out")
	if got := DirectoryFor(Single, root); got != filepath.Join(root, "true") {
		t.Errorf("single: got %q", got)
	}
	if got := DirectoryFor(Mixture, root); got != filepath.Join(root, "false") {
		t.Errorf("mixture: got %q", got)
	}
}
