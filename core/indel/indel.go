// core/indel/indel.go
package indel

import (
	"fmt"

	"evosim-core/dna"
	"evosim-core/sample"
)

const (
	insertLen   = 3  // bases spliced in per insertion event
	deleteSpan  = 3  // non-gap symbols recoded per deletion event
	rateDivisor = 10 // relates the event rate to length·time·rate
)

// Config sets the event-count model for one indel pass. The number of
// insertion (and, independently, deletion) events per sequence is the
// arrival count of a Poisson process with rate Length·Time·Rate/10 over
// unit time. EventRate, when non-zero, overrides the derived rate.
type Config struct {
	Length    int
	Time      float64
	Rate      float64
	EventRate float64
}

// Simulator applies insertion and deletion events to a diverged pair while
// keeping the two sequences mutually gap-aligned.
type Simulator struct {
	rate float64
	src  *sample.Source
}

// New validates cfg and returns a Simulator drawing randomness from src.
func New(cfg Config, src *sample.Source) (*Simulator, error) {
	if cfg.Length < 0 {
		return nil, fmt.Errorf("indel: length must be >= 0, got %d", cfg.Length)
	}
	if cfg.Time < 0 {
		return nil, fmt.Errorf("indel: time must be >= 0, got %g", cfg.Time)
	}
	if cfg.Rate <= 0 {
		return nil, fmt.Errorf("indel: rate must be > 0, got %g", cfg.Rate)
	}
	if cfg.EventRate < 0 {
		return nil, fmt.Errorf("indel: event rate must be >= 0, got %g", cfg.EventRate)
	}
	if src == nil {
		return nil, fmt.Errorf("indel: nil random source")
	}
	rate := cfg.EventRate
	if rate == 0 {
		rate = float64(cfg.Length) * cfg.Time * cfg.Rate / rateDivisor
	}
	return &Simulator{rate: rate, src: src}, nil
}

// Count draws the number of events for one sequence and one phase.
func (s *Simulator) Count() int { return s.src.Poisson(s.rate) }

var uniformBases = []float64{1, 1, 1, 1}

func (s *Simulator) randomBases(n int) dna.Sequence {
	nts := dna.Nucleotides()
	out := make(dna.Sequence, n)
	for i := range out {
		out[i] = nts[s.src.Weighted(uniformBases)]
	}
	return out
}

func splice(s dna.Sequence, idx int, ins dna.Sequence) dna.Sequence {
	out := make(dna.Sequence, 0, len(s)+len(ins))
	out = append(out, s[:idx]...)
	out = append(out, ins...)
	out = append(out, s[idx:]...)
	return out
}

func gapRun(n int) dna.Sequence {
	out := make(dna.Sequence, n)
	for i := range out {
		out[i] = dna.Gap
	}
	return out
}

func hasBase(s dna.Sequence) bool {
	for _, b := range s {
		if b != dna.Gap {
			return true
		}
	}
	return false
}

// Insertions applies the drawn number of insertion events to target.
// Per event: a uniform index over the current length+1 selects the splice
// point (the top index appends); three fresh random bases go into target
// and three gaps into partner at the homologous position. A draw landing
// on an existing gap is redrawn and does not consume the quota. The index
// distribution shifts as earlier insertions lengthen the sequence; that is
// part of the model. Returns the rewritten pair; inputs are untouched.
func (s *Simulator) Insertions(target, partner dna.Sequence) (dna.Sequence, dna.Sequence, error) {
	if len(target) != len(partner) {
		return nil, nil, fmt.Errorf("indel: paired sequences differ in length: %d vs %d", len(target), len(partner))
	}
	target = target.Clone()
	partner = partner.Clone()
	events := s.Count()
	for done := 0; done < events; {
		idx := s.src.Intn(len(target) + 1)
		if idx < len(target) && target[idx] == dna.Gap {
			continue
		}
		target = splice(target, idx, s.randomBases(insertLen))
		partner = splice(partner, idx, gapRun(insertLen))
		done++
	}
	return target, partner, nil
}

// Deletions applies the drawn number of deletion events to target alone:
// per event, up to three consecutive non-gap symbols starting at a uniform
// index are recoded to gaps. Interior gaps are skipped without consuming
// the three-count; a run reaching the sequence end stops early but the
// event still counts. A start draw landing on a gap is redrawn without
// consuming the quota. Positions are never removed structurally, so the
// partner's indexing stays valid. Returns a rewritten copy.
func (s *Simulator) Deletions(target dna.Sequence) dna.Sequence {
	target = target.Clone()
	events := s.Count()
	for done := 0; done < events; {
		if !hasBase(target) {
			break
		}
		idx := s.src.Intn(len(target))
		if target[idx] == dna.Gap {
			continue
		}
		removed := 0
		for i := idx; i < len(target) && removed < deleteSpan; i++ {
			if target[i] == dna.Gap {
				continue
			}
			target[i] = dna.Gap
			removed++
		}
		done++
	}
	return target
}

// Apply runs the full pass over a diverged pair: insertions into b, then
// insertions into c, then deletions on b, then deletions on c. Each phase
// operates on the previous phase's output, so deletions see the already
// lengthened pair. The result stays equal-length and gap-aligned.
func (s *Simulator) Apply(b, c dna.Sequence) (dna.Sequence, dna.Sequence, error) {
	b, c, err := s.Insertions(b, c)
	if err != nil {
		return nil, nil, err
	}
	c, b, err = s.Insertions(c, b)
	if err != nil {
		return nil, nil, err
	}
	b = s.Deletions(b)
	c = s.Deletions(c)
	return b, c, nil
}
