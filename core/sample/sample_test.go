package sample

import "testing"

func TestSameSeedSameStream(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("streams diverged at draw %d", i)
		}
	}
}

func TestExpPositiveFinite(t *testing.T) {
	s := New(1)
	for i := 0; i < 1000; i++ {
		v := s.Exp(0.75)
		if v < 0 {
			t.Fatalf("negative variate %g", v)
		}
		if v != v || v > 1e9 {
			t.Fatalf("degenerate variate %g", v)
		}
	}
}

func TestExpMeanApproximatesInverseRate(t *testing.T) {
	s := New(7)
	const rate = 2.0
	const n = 200000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += s.Exp(rate)
	}
	mean := sum / n
	if mean < 0.45 || mean > 0.55 {
		t.Errorf("mean %g, want ~0.5", mean)
	}
}

func TestPoissonZeroRate(t *testing.T) {
	s := New(3)
	if n := s.Poisson(0); n != 0 {
		t.Errorf("Poisson(0) = %d, want 0", n)
	}
}

func TestPoissonMean(t *testing.T) {
	s := New(9)
	const rate = 4.0
	const runs = 50000
	total := 0
	for i := 0; i < runs; i++ {
		total += s.Poisson(rate)
	}
	mean := float64(total) / runs
	if mean < 3.8 || mean > 4.2 {
		t.Errorf("mean %g, want ~4", mean)
	}
}

func TestWeightedBoundsAndBias(t *testing.T) {
	s := New(11)
	weights := []float64{1, 1, 2}
	counts := make([]int, 3)
	const n = 60000
	for i := 0; i < n; i++ {
		idx := s.Weighted(weights)
		if idx < 0 || idx > 2 {
			t.Fatalf("index %d out of range", idx)
		}
		counts[idx]++
	}
	// Expect roughly 1:1:2.
	if counts[2] < counts[0] || counts[2] < counts[1] {
		t.Errorf("heaviest weight not most frequent: %v", counts)
	}
	for i, c := range counts[:2] {
		frac := float64(c) / n
		if frac < 0.20 || frac > 0.30 {
			t.Errorf("weight %d frequency %g, want ~0.25", i, frac)
		}
	}
}

func TestSplitIndependentOfParentReuse(t *testing.T) {
	// A split child must reproduce given the same parent seed.
	a := New(5).Split()
	b := New(5).Split()
	for i := 0; i < 50; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("split children diverged at draw %d", i)
		}
	}
}
