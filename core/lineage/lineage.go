// core/lineage/lineage.go
package lineage

import (
	"fmt"

	"evosim-core/dna"
	"evosim-core/evolve"
	"evosim-core/indel"
	"evosim-core/sample"
)

// Params describes one simulated divergence: ancestor length, the time
// span both descendants evolve over, the substitution rate, and (for the
// indel variants) an optional explicit indel event rate. IndelRate zero
// derives the default Length·Time·Rate/10.
type Params struct {
	Length    int
	Time      float64
	Rate      float64
	IndelRate float64
}

// Lineage is an ancestor plus the two descendants independently derived
// from it. After an indel pass B and C are equal-length and gap-aligned to
// each other; the ancestor is never modified after generation.
type Lineage struct {
	Ancestor dna.Sequence
	B, C     dna.Sequence
}

// Simulator owns the random source for one simulation run. Descendants
// evolve from split child sources, so B and C are independent given the
// ancestor and a fixed seed reproduces the whole run.
type Simulator struct {
	p   Params
	src *sample.Source
}

// New validates p and returns a Simulator drawing randomness from src.
func New(p Params, src *sample.Source) (*Simulator, error) {
	if p.Length < 0 {
		return nil, fmt.Errorf("lineage: length must be >= 0, got %d", p.Length)
	}
	if p.Time < 0 {
		return nil, fmt.Errorf("lineage: time must be >= 0, got %g", p.Time)
	}
	if p.Rate <= 0 {
		return nil, fmt.Errorf("lineage: rate must be > 0, got %g", p.Rate)
	}
	if p.IndelRate < 0 {
		return nil, fmt.Errorf("lineage: indel rate must be >= 0, got %g", p.IndelRate)
	}
	if src == nil {
		return nil, fmt.Errorf("lineage: nil random source")
	}
	return &Simulator{p: p, src: src}, nil
}

// Generate draws a fresh ancestor of the configured length and evolves the
// two descendants from it, substitutions only.
func (s *Simulator) Generate() (*Lineage, error) {
	anc, err := s.randomAncestor()
	if err != nil {
		return nil, err
	}
	return s.Diverge(anc)
}

// Diverge evolves two descendants from an existing ungapped ancestor,
// substitutions only.
func (s *Simulator) Diverge(ancestor dna.Sequence) (*Lineage, error) {
	if err := ancestor.CheckUngapped(); err != nil {
		return nil, fmt.Errorf("lineage: ancestor: %w", err)
	}
	b, err := s.evolveOne(ancestor)
	if err != nil {
		return nil, err
	}
	c, err := s.evolveOne(ancestor)
	if err != nil {
		return nil, err
	}
	return &Lineage{Ancestor: ancestor.Clone(), B: b, C: c}, nil
}

// GenerateIndels is Generate followed by the joint indel pass over B and C.
func (s *Simulator) GenerateIndels() (*Lineage, error) {
	anc, err := s.randomAncestor()
	if err != nil {
		return nil, err
	}
	return s.DivergeIndels(anc)
}

// DivergeIndels is Diverge followed by the joint indel pass over B and C.
// The ancestor's length feeds the indel event-rate model.
func (s *Simulator) DivergeIndels(ancestor dna.Sequence) (*Lineage, error) {
	l, err := s.Diverge(ancestor)
	if err != nil {
		return nil, err
	}
	sim, err := indel.New(indel.Config{
		Length:    len(ancestor),
		Time:      s.p.Time,
		Rate:      s.p.Rate,
		EventRate: s.p.IndelRate,
	}, s.src)
	if err != nil {
		return nil, err
	}
	l.B, l.C, err = sim.Apply(l.B, l.C)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Simulator) randomAncestor() (dna.Sequence, error) {
	eng, err := evolve.New(evolve.Config{Time: s.p.Time, Rate: s.p.Rate}, s.src)
	if err != nil {
		return nil, err
	}
	return eng.Random(s.p.Length)
}

func (s *Simulator) evolveOne(ancestor dna.Sequence) (dna.Sequence, error) {
	eng, err := evolve.New(evolve.Config{Time: s.p.Time, Rate: s.p.Rate}, s.src.Split())
	if err != nil {
		return nil, err
	}
	return eng.Mutate(ancestor)
}
