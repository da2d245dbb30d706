package normalboxmueller

import (
	"math"
	"math/rand/v2"
)

// Generator produces normally distributed samples with the Box-Muller transform.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator drawing uniform variates from src.
func New(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// Generate returns a single draw from N(mean, stdDev).
func (g *Generator) Generate(mean, stdDev float64) float64 {
	// u1 in (0, 1] keeps the logarithm finite
	u1 := 1 - g.rnd.Float64()
	u2 := g.rnd.Float64()

	z0 := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)

	return z0*stdDev + mean
}

// GenerateVector fills v with draws from N(mean, stdDev).
func (g *Generator) GenerateVector(mean, stdDev float64, v []float64) {
	for i := range v {
		v[i] = g.Generate(mean, stdDev)
	}
}

// Normal returns n draws from N(mean, stdDev).
func (g *Generator) Normal(mean, stdDev float64, n int) []float64 {
	r := make([]float64, n)
	g.GenerateVector(mean, stdDev, r)
	return r
}
