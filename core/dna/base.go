// core/dna/base.go
package dna

// Base is one symbol of a nucleotide sequence. The numeric codes are part
// of the report format: 1..4 are the nucleotides, 5 marks a gap. Code 0 is
// never a valid symbol, which lets the decode table use it as "unknown".
type Base uint8

const (
	A   Base = 1
	C   Base = 2
	G   Base = 3
	T   Base = 4
	Gap Base = 5
)

var baseChar = [...]byte{0, 'A', 'C', 'G', 'T', '-'}

var charBase [256]Base

func init() {
	charBase['A'], charBase['a'] = A, A
	charBase['C'], charBase['c'] = C, C
	charBase['G'], charBase['g'] = G, G
	charBase['T'], charBase['t'] = T, T
	charBase['-'] = Gap
}

// Byte returns the printable character for b, '?' for codes outside the
// alphabet.
func (b Base) Byte() byte {
	if b < A || b > Gap {
		return '?'
	}
	return baseChar[b]
}

func (b Base) IsGap() bool { return b == Gap }

// Valid reports whether b is one of the five defined codes.
func (b Base) Valid() bool { return b >= A && b <= Gap }

// Nucleotides lists the four non-gap bases in code order.
func Nucleotides() [4]Base { return [4]Base{A, C, G, T} }
