package dna

import "testing"

func TestParseRoundTrip(t *testing.T) {
	for _, in := range []string{"", "A", "ACGT", "AC-GT--A", "TTTT"} {
		seq, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if got := seq.String(); got != in {
			t.Errorf("round trip %q -> %q", in, got)
		}
	}
}

func TestParseLowercase(t *testing.T) {
	seq, err := Parse("acgt")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if seq.String() != "ACGT" {
		t.Errorf("got %q, want ACGT", seq.String())
	}
}

func TestParseRejectsUnknownSymbol(t *testing.T) {
	if _, err := Parse("ACXGT"); err == nil {
		t.Fatal("expected error for symbol X")
	}
}

func TestRemoveGaps(t *testing.T) {
	seq := MustParse("A-CG--T-")
	got := seq.RemoveGaps()
	if got.String() != "ACGT" {
		t.Errorf("RemoveGaps: got %q, want ACGT", got.String())
	}
	// Input must be untouched.
	if seq.String() != "A-CG--T-" {
		t.Errorf("RemoveGaps mutated its receiver: %q", seq.String())
	}
}

func TestCheckUngapped(t *testing.T) {
	if err := MustParse("ACGT").CheckUngapped(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := MustParse("AC-T").CheckUngapped(); err == nil {
		t.Error("expected gap error")
	}
	if err := (Sequence{A, 9, T}).CheckUngapped(); err == nil {
		t.Error("expected invalid-code error")
	}
}

func TestDifferences(t *testing.T) {
	a := MustParse("ACGTAC")
	if n, err := Differences(a, a.Clone()); err != nil || n != 0 {
		t.Errorf("identical: got %d, %v", n, err)
	}
	b := MustParse("ACCTAT")
	n, err := Differences(a, b)
	if err != nil {
		t.Fatalf("Differences: %v", err)
	}
	if n != 2 {
		t.Errorf("got %d differences, want 2", n)
	}
	if _, err := Differences(a, MustParse("AC")); err == nil {
		t.Error("expected length-mismatch error")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := MustParse("ACGT")
	b := a.Clone()
	b[0] = T
	if a[0] != A {
		t.Error("Clone shares backing storage")
	}
}
