package dataset

// Sampler draws n values from N(mean, stddev). Implementations share one
// entropy source, so successive calls return fresh draws.
type Sampler interface {
	Normal(mean, stddev float64, n int) []float64
}

// Draw samples every component of d in order and concatenates the results.
func Draw(s Sampler, d Distribution) []float64 {
	samples := make([]float64, 0, d.Size())
	for _, c := range d.Components {
		if c.Size == 0 {
			continue
		}
		samples = append(samples, s.Normal(c.Loc, c.Scale, c.Size)...)
	}
	return samples
}
