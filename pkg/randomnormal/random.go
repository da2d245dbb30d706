package randomnormal

import (
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// Generator draws normally distributed samples from a shared source.
// The source is consumed sequentially and never reseeded.
type Generator struct {
	src rand.Source
}

// New returns a Generator drawing from src.
func New(src rand.Source) *Generator {
	return &Generator{src: src}
}

// NewSource returns a source seeded from the wall clock.
func NewSource() rand.Source {
	now := uint64(time.Now().UnixNano())
	return rand.NewPCG(now, now>>32|now<<32)
}

// NewTimeSeeded returns a Generator over a fresh wall clock seeded source.
func NewTimeSeeded() *Generator {
	return New(NewSource())
}

// Normal returns n draws from N(mean, stddev).
func (g *Generator) Normal(mean, stddev float64, n int) []float64 {
	dist := distuv.Normal{
		Mu:    mean,
		Sigma: stddev,
		Src:   g.src,
	}
	result := make([]float64, n)
	for i := range result {
		result[i] = dist.Rand()
	}
	return result
}
