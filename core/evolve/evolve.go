// core/evolve/evolve.go
package evolve

import (
	"fmt"

	"evosim-core/dna"
	"evosim-core/sample"
)

// Config holds the substitution-model parameters: the evolutionary time
// span and the instantaneous exchange rate between any two distinct bases.
type Config struct {
	Time float64
	Rate float64
}

// Engine evolves sequences under an equal-rates substitution model: every
// site fires as a Poisson process of rate (3/4)·rate, and each firing
// replaces the current base with one of the other three, uniformly.
type Engine struct {
	cfg Config
	src *sample.Source
}

// New validates cfg and returns an Engine drawing randomness from src.
// Time zero is legal (no event can fire); negative time or a non-positive
// rate is a caller error.
func New(cfg Config, src *sample.Source) (*Engine, error) {
	if cfg.Time < 0 {
		return nil, fmt.Errorf("evolve: time must be >= 0, got %g", cfg.Time)
	}
	if cfg.Rate <= 0 {
		return nil, fmt.Errorf("evolve: rate must be > 0, got %g", cfg.Rate)
	}
	if src == nil {
		return nil, fmt.Errorf("evolve: nil random source")
	}
	return &Engine{cfg: cfg, src: src}, nil
}

var uniformBases = []float64{1, 1, 1, 1}

// Random returns n bases drawn i.i.d. uniformly from {A,C,G,T}.
func (e *Engine) Random(n int) (dna.Sequence, error) {
	if n < 0 {
		return nil, fmt.Errorf("evolve: length must be >= 0, got %d", n)
	}
	nts := dna.Nucleotides()
	out := make(dna.Sequence, n)
	for i := range out {
		out[i] = nts[e.src.Weighted(uniformBases)]
	}
	return out, nil
}

// Mutate evolves a copy of seq over the configured time span, every site
// independently. The input is never modified and must be ungapped.
func (e *Engine) Mutate(seq dna.Sequence) (dna.Sequence, error) {
	if err := seq.CheckUngapped(); err != nil {
		return nil, fmt.Errorf("evolve: mutate: %w", err)
	}
	out := seq.Clone()
	rate := 0.75 * e.cfg.Rate
	for i := range out {
		for t := e.src.Exp(rate); t < e.cfg.Time; t += e.src.Exp(rate) {
			out[i] = e.MutateBase(out[i])
		}
	}
	return out, nil
}

var altWeights = []float64{1, 1, 1}

// MutateBase returns a base different from b, the three alternatives
// equally likely.
func (e *Engine) MutateBase(b dna.Base) dna.Base {
	var alts [3]dna.Base
	n := 0
	for _, nt := range dna.Nucleotides() {
		if nt != b {
			alts[n] = nt
			n++
		}
	}
	return alts[e.src.Weighted(altWeights)]
}
