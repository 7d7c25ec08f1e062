// core/sample/sample.go
package sample

import (
	"math"
	"math/rand"
)

// Source wraps a seeded PRNG together with the variate generators the
// simulators share. A Source is not safe for concurrent use; Split derives
// independent children for parallel work.
type Source struct {
	r *rand.Rand
}

// New returns a Source seeded with seed.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// Split returns a child source seeded from the next draw of s. Streams
// from the child and from s afterwards are independent.
func (s *Source) Split() *Source { return New(s.r.Int63()) }

// Float64 returns a uniform draw from [0,1).
func (s *Source) Float64() float64 { return s.r.Float64() }

// Intn returns a uniform draw from [0,n). It panics if n <= 0.
func (s *Source) Intn(n int) int { return s.r.Intn(n) }

// Exp draws an exponential variate with the given rate as -ln(U)/rate,
// with U uniform on (0,1]. The rate must be positive; callers validate.
func (s *Source) Exp(rate float64) float64 {
	u := 1 - s.r.Float64()
	return -math.Log(u) / rate
}

// Poisson counts the arrivals of a rate-`rate` Poisson process within one
// unit of time by summing exponential gaps. A non-positive rate yields 0.
func (s *Source) Poisson(rate float64) int {
	if rate <= 0 {
		return 0
	}
	n := 0
	for t := s.Exp(rate); t < 1; t += s.Exp(rate) {
		n++
	}
	return n
}

// Weighted picks an index from the discrete distribution given by weights,
// walking a running cumulative sum. The walk advances only on a strict
// greater-than comparison so a draw landing exactly on a boundary resolves
// to the earlier index.
func (s *Source) Weighted(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	u := s.r.Float64() * total
	cum := 0.0
	for i, w := range weights {
		cum += w
		if u > cum {
			continue
		}
		return i
	}
	return len(weights) - 1
}
