package dataset

// Shape is the kind of distribution a batch is drawn from.
type Shape int

const (
	Single Shape = iota
	Mixture
)

// Label reports whether the shape is a single normal distribution.
func (s Shape) Label() bool { return s == Single }

func (s Shape) String() string {
	switch s {
	case Single:
		return "single"
	case Mixture:
		return "mixture"
	}
	return "unknown"
}

// Component is one normal distribution contributing Size samples.
type Component struct {
	Loc   float64 // mean
	Scale float64 // standard deviation
	Size  int
}

// Distribution describes either a single normal or a mixture of two normals.
// Components are drawn and named in order.
type Distribution struct {
	Shape      Shape
	Components []Component
}

// NewSingle describes size draws from N(loc, scale).
func NewSingle(loc, scale float64, size int) Distribution {
	return Distribution{
		Shape:      Single,
		Components: []Component{{Loc: loc, Scale: scale, Size: size}},
	}
}

// NewMixture describes first.Size draws from the first component followed by
// second.Size draws from the second.
func NewMixture(first, second Component) Distribution {
	return Distribution{
		Shape:      Mixture,
		Components: []Component{first, second},
	}
}

// Size is the total number of samples.
func (d Distribution) Size() int {
	n := 0
	for _, c := range d.Components {
		n += c.Size
	}
	return n
}

// RenderSpec selects the bin count and image encoding of an artifact.
type RenderSpec struct {
	Bins   int
	Format string
}
