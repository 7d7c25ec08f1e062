// core/align/align.go
package align

import (
	"fmt"

	"evosim-core/dna"
)

// Matrix scores one substitution column, indexed by the two bases.
// It is fixed to the four-letter alphabet, so a mis-sized matrix cannot be
// constructed. Symmetry is conventional here but not required.
type Matrix [4][4]float64

// Score looks up the reward for aligning a against b. Both arguments must
// be nucleotides, not gaps.
func (m *Matrix) Score(a, b dna.Base) float64 { return m[a-dna.A][b-dna.A] }

// Uniform builds the usual single match / single mismatch matrix.
func Uniform(match, mismatch float64) Matrix {
	var m Matrix
	for i := range m {
		for j := range m[i] {
			if i == j {
				m[i][j] = match
			} else {
				m[i][j] = mismatch
			}
		}
	}
	return m
}

// Config holds the scoring scheme: a substitution matrix and a constant
// per-column gap penalty (typically negative) charged for every gap,
// insertion or deletion alike.
type Config struct {
	Matrix     Matrix
	GapPenalty float64
}

// Aligner computes optimal global alignments. It is stateless and safe to
// share across goroutines.
type Aligner struct {
	cfg Config
}

// New returns an Aligner for the given scoring scheme.
func New(cfg Config) *Aligner { return &Aligner{cfg: cfg} }

// Alignment is a pair of equal-length gapped sequences plus the score of
// the optimal path that produced them.
type Alignment struct {
	A, B  dna.Sequence
	Score float64
}

// Identity returns the fraction of columns where both sequences carry the
// same base. A zero-length alignment reports 0.
func (al *Alignment) Identity() float64 {
	if len(al.A) == 0 {
		return 0
	}
	n := 0
	for i := range al.A {
		if al.A[i] == al.B[i] && al.A[i] != dna.Gap {
			n++
		}
	}
	return float64(n) / float64(len(al.A))
}

// Align computes the optimal global alignment of two ungapped sequences.
// Ties during traceback resolve diagonal, then up (gap in b), then left
// (gap in a), so the output is deterministic whenever several paths share
// the optimal score. Inputs are never modified; empty inputs yield the
// all-gap degenerate alignment.
func (al *Aligner) Align(a, b dna.Sequence) (*Alignment, error) {
	if err := a.CheckUngapped(); err != nil {
		return nil, fmt.Errorf("align: first sequence: %w", err)
	}
	if err := b.CheckUngapped(); err != nil {
		return nil, fmt.Errorf("align: second sequence: %w", err)
	}

	n, m := len(a), len(b)
	gp := al.cfg.GapPenalty

	f := make([][]float64, n+1)
	for i := range f {
		f[i] = make([]float64, m+1)
	}
	for i := 1; i <= n; i++ {
		f[i][0] = float64(i) * gp
	}
	for j := 1; j <= m; j++ {
		f[0][j] = float64(j) * gp
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			best := f[i-1][j-1] + al.cfg.Matrix.Score(a[i-1], b[j-1])
			if up := f[i-1][j] + gp; up > best {
				best = up
			}
			if left := f[i][j-1] + gp; left > best {
				best = left
			}
			f[i][j] = best
		}
	}

	// Traceback, built back-to-front. The comparisons reuse the exact
	// expressions that filled the table, so float equality is sound.
	ra := make(dna.Sequence, 0, n+m)
	rb := make(dna.Sequence, 0, n+m)
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && f[i][j] == f[i-1][j-1]+al.cfg.Matrix.Score(a[i-1], b[j-1]):
			ra = append(ra, a[i-1])
			rb = append(rb, b[j-1])
			i--
			j--
		case i > 0 && f[i][j] == f[i-1][j]+gp:
			ra = append(ra, a[i-1])
			rb = append(rb, dna.Gap)
			i--
		default:
			ra = append(ra, dna.Gap)
			rb = append(rb, b[j-1])
			j--
		}
	}
	reverse(ra)
	reverse(rb)
	return &Alignment{A: ra, B: rb, Score: f[n][m]}, nil
}

func reverse(s dna.Sequence) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
