package indel

import (
	"testing"

	"evosim-core/dna"
	"evosim-core/sample"
)

func newSim(t *testing.T, cfg Config, seed int64) *Simulator {
	t.Helper()
	s, err := New(cfg, sample.New(seed))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNewRejectsBadParams(t *testing.T) {
	src := sample.New(1)
	bad := []Config{
		{Length: -1, Time: 1, Rate: 1},
		{Length: 10, Time: -1, Rate: 1},
		{Length: 10, Time: 1, Rate: 0},
		{Length: 10, Time: 1, Rate: 1, EventRate: -2},
	}
	for _, cfg := range bad {
		if _, err := New(cfg, src); err == nil {
			t.Errorf("expected error for %+v", cfg)
		}
	}
	if _, err := New(Config{Length: 10, Time: 1, Rate: 1}, nil); err == nil {
		t.Error("expected error for nil source")
	}
}

func TestCountZeroTime(t *testing.T) {
	s := newSim(t, Config{Length: 100, Time: 0, Rate: 1}, 1)
	for i := 0; i < 100; i++ {
		if n := s.Count(); n != 0 {
			t.Fatalf("zero-time count %d", n)
		}
	}
}

func TestInsertionsKeepPairAligned(t *testing.T) {
	s := newSim(t, Config{Length: 40, Time: 2, Rate: 1}, 7)
	b := dna.MustParse("ACGTACGTACGTACGTACGT")
	c := dna.MustParse("TGCATGCATGCATGCATGCA")
	nb, nc, err := s.Insertions(b, c)
	if err != nil {
		t.Fatalf("Insertions: %v", err)
	}
	if len(nb) != len(nc) {
		t.Fatalf("pair lengths diverged: %d vs %d", len(nb), len(nc))
	}
	// Every inserted block in target pairs with gaps in partner, so the
	// partner's non-gap content is exactly its old content.
	if nc.RemoveGaps().String() != c.String() {
		t.Errorf("partner content changed: %q", nc.RemoveGaps())
	}
	// Target gained a multiple of three bases and carries no gaps itself.
	grown := len(nb) - len(b)
	if grown%3 != 0 || grown < 0 {
		t.Errorf("target grew by %d, want a non-negative multiple of 3", grown)
	}
	if !nb.Ungapped() {
		t.Errorf("gap symbols leaked into insertion target: %q", nb)
	}
	// Inputs untouched.
	if b.String() != "ACGTACGTACGTACGTACGT" || c.String() != "TGCATGCATGCATGCATGCA" {
		t.Error("Insertions mutated its inputs")
	}
}

func TestInsertionsLengthMismatch(t *testing.T) {
	s := newSim(t, Config{Length: 4, Time: 1, Rate: 1}, 1)
	if _, _, err := s.Insertions(dna.MustParse("ACGT"), dna.MustParse("AC")); err == nil {
		t.Error("expected length-mismatch error")
	}
}

func TestDeletionsPreserveLength(t *testing.T) {
	s := newSim(t, Config{Length: 30, Time: 3, Rate: 1}, 3)
	in := dna.MustParse("ACGTACGTACGTACGTACGTACGTACGTAC")
	out := s.Deletions(in)
	if len(out) != len(in) {
		t.Fatalf("deletion changed structural length: %d vs %d", len(out), len(in))
	}
	if in.Ungapped() != true {
		t.Fatal("input mutated")
	}
	// Gaps only ever replace bases; non-gap content is a subsequence of in.
	kept := out.RemoveGaps()
	if len(kept) > len(in) {
		t.Errorf("deletion added symbols: %d > %d", len(kept), len(in))
	}
}

func TestDeletionsAllGapInputTerminates(t *testing.T) {
	s := newSim(t, Config{Length: 6, Time: 50, Rate: 5}, 5)
	in := dna.MustParse("------")
	out := s.Deletions(in)
	if out.String() != in.String() {
		t.Errorf("all-gap sequence changed: %q", out)
	}
}

func TestApplyEqualLengthInvariant(t *testing.T) {
	anc := "ACGTACGTACGTACGTACGTACGTACGTACGTACGTACGT"
	for seed := int64(1); seed <= 25; seed++ {
		s := newSim(t, Config{Length: len(anc), Time: 2, Rate: 0.8}, seed)
		b, c, err := s.Apply(dna.MustParse(anc), dna.MustParse(anc))
		if err != nil {
			t.Fatalf("seed %d: Apply: %v", seed, err)
		}
		if len(b) != len(c) {
			t.Fatalf("seed %d: lengths diverged: %d vs %d", seed, len(b), len(c))
		}
	}
}

func TestApplyDeterministicForSeed(t *testing.T) {
	anc := dna.MustParse("ACGTACGTACGTACGTACGT")
	run := func() (string, string) {
		s := newSim(t, Config{Length: len(anc), Time: 2, Rate: 1}, 42)
		b, c, err := s.Apply(anc.Clone(), anc.Clone())
		if err != nil {
			t.Fatalf("Apply: %v", err)
		}
		return b.String(), c.String()
	}
	b1, c1 := run()
	b2, c2 := run()
	if b1 != b2 || c1 != c2 {
		t.Errorf("same seed produced different output")
	}
}

func TestGapStrippedLengthAccountsForInsertions(t *testing.T) {
	// After insertions alone, stripping gaps from the partner recovers the
	// original length, and the target length equals original + 3·events.
	s := newSim(t, Config{Length: 20, Time: 4, Rate: 1}, 13)
	b := dna.MustParse("ACGTACGTACGTACGTACGT")
	c := b.Clone()
	nb, nc, err := s.Insertions(b, c)
	if err != nil {
		t.Fatalf("Insertions: %v", err)
	}
	if got := len(nc.RemoveGaps()); got != len(c) {
		t.Errorf("partner stripped length %d, want %d", got, len(c))
	}
	if got := len(nb.RemoveGaps()); got != len(nb) {
		t.Errorf("target should be gap-free after its own insertions")
	}
}
