// core/dna/sequence.go
package dna

import "fmt"

// Sequence is an ordered list of bases, possibly containing gaps.
type Sequence []Base

// String encodes s as A/C/G/T/- characters.
func (s Sequence) String() string {
	out := make([]byte, len(s))
	for i, b := range s {
		out[i] = b.Byte()
	}
	return string(out)
}

// Parse decodes a string of A/C/G/T/- characters (case-insensitive).
func Parse(text string) (Sequence, error) {
	seq := make(Sequence, len(text))
	for i := 0; i < len(text); i++ {
		b := charBase[text[i]]
		if b == 0 {
			return nil, fmt.Errorf("dna: invalid symbol %q at position %d", text[i], i)
		}
		seq[i] = b
	}
	return seq, nil
}

// MustParse is Parse for literals in tests and examples; it panics on
// invalid input.
func MustParse(text string) Sequence {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

// Clone returns an independent copy of s.
func (s Sequence) Clone() Sequence { return append(Sequence(nil), s...) }

// Ungapped reports whether s contains no gap symbols.
func (s Sequence) Ungapped() bool {
	for _, b := range s {
		if b == Gap {
			return false
		}
	}
	return true
}

// CheckUngapped returns a descriptive error naming the first gap or
// out-of-alphabet code in s, if any.
func (s Sequence) CheckUngapped() error {
	for i, b := range s {
		if b == Gap {
			return fmt.Errorf("dna: unexpected gap at position %d", i)
		}
		if !b.Valid() {
			return fmt.Errorf("dna: invalid code %d at position %d", b, i)
		}
	}
	return nil
}

// RemoveGaps returns a new sequence with every gap symbol dropped.
func (s Sequence) RemoveGaps() Sequence {
	out := make(Sequence, 0, len(s))
	for _, b := range s {
		if b != Gap {
			out = append(out, b)
		}
	}
	return out
}

// Differences counts the positions where a and b disagree.
func Differences(a, b Sequence) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("dna: length mismatch %d vs %d", len(a), len(b))
	}
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n, nil
}
