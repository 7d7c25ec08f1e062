// internal/simrun/simrun.go
package simrun

import (
	"evosim-core/align"
	"evosim-core/dna"
	"evosim-core/lineage"
	"evosim-core/sample"
)

// Options fixes everything about a batch except the per-replicate seed.
type Options struct {
	Params   lineage.Params
	Indels   bool
	Ancestor dna.Sequence // non-nil: diverge-only from this sequence
	Align    bool
	Scoring  align.Config
}

// Result is one finished replicate, with sequences already encoded for
// the writers. B and C are gapped iff indels were simulated.
type Result struct {
	Index       int
	Seed        int64
	Ancestor    string
	B, C        string
	Length      int // ancestor length
	PairLength  int // B/C length after indels
	Differences int // mismatching B/C columns

	Aligned            bool
	AlignedB, AlignedC string
	Score              float64
	Identity           float64
}

// Replicate runs one independent simulation with its own seeded source.
// The same index and seed always reproduce the same Result, which is what
// lets the pipeline fan replicates over threads without losing determinism.
func Replicate(o Options, index int, seed int64) (Result, error) {
	sim, err := lineage.New(o.Params, sample.New(seed))
	if err != nil {
		return Result{}, err
	}

	var l *lineage.Lineage
	switch {
	case o.Ancestor != nil && o.Indels:
		l, err = sim.DivergeIndels(o.Ancestor)
	case o.Ancestor != nil:
		l, err = sim.Diverge(o.Ancestor)
	case o.Indels:
		l, err = sim.GenerateIndels()
	default:
		l, err = sim.Generate()
	}
	if err != nil {
		return Result{}, err
	}

	diff, err := dna.Differences(l.B, l.C)
	if err != nil {
		return Result{}, err
	}

	r := Result{
		Index:       index,
		Seed:        seed,
		Ancestor:    l.Ancestor.String(),
		B:           l.B.String(),
		C:           l.C.String(),
		Length:      len(l.Ancestor),
		PairLength:  len(l.B),
		Differences: diff,
	}

	if o.Align {
		al, err := align.New(o.Scoring).Align(l.B.RemoveGaps(), l.C.RemoveGaps())
		if err != nil {
			return Result{}, err
		}
		r.Aligned = true
		r.AlignedB = al.A.String()
		r.AlignedC = al.B.String()
		r.Score = al.Score
		r.Identity = al.Identity()
	}
	return r, nil
}
