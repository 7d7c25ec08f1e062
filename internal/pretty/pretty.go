package pretty

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"evosim/internal/simrun"
)

// Options control the ASCII rendering of alignment panels.
type Options struct {
	// Columns of alignment per panel row. If <=0, use default (60).
	Width int

	// Colorize the base letters on mismatching columns.
	Color bool

	// Glyphs for the marker track.
	MatchGlyph    string // default "|"
	MismatchGlyph string // default "."
	GapGlyph      string // default " "
}

// DefaultOptions keeps the current look and feel.
var DefaultOptions = Options{
	Width:         60,
	MatchGlyph:    "|",
	MismatchGlyph: ".",
	GapGlyph:      " ",
}

const linePrefix = "# "

var (
	matchColor    = color.New(color.FgGreen).SprintfFunc()
	mismatchColor = color.New(color.FgRed).SprintfFunc()
	gapColor      = color.New(color.FgYellow).SprintfFunc()
)

func (o Options) matchGlyph() string {
	if o.MatchGlyph != "" {
		return o.MatchGlyph
	}
	return DefaultOptions.MatchGlyph
}

func (o Options) mismatchGlyph() string {
	if o.MismatchGlyph != "" {
		return o.MismatchGlyph
	}
	return DefaultOptions.MismatchGlyph
}

func (o Options) gapGlyph() string {
	if o.GapGlyph != "" {
		return o.GapGlyph
	}
	return DefaultOptions.GapGlyph
}

// markers builds the track drawn between the two aligned rows: the match
// glyph under identical columns, the gap glyph under indel columns, and
// the mismatch glyph elsewhere.
func markers(a, b string, opt Options) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		switch {
		case a[i] == '-' || b[i] == '-':
			sb.WriteString(opt.gapGlyph())
		case a[i] == b[i]:
			sb.WriteString(opt.matchGlyph())
		default:
			sb.WriteString(opt.mismatchGlyph())
		}
	}
	return sb.String()
}

// colorize paints each base by its column class. Glyph classification
// happens on the plain marker string, so color never shifts columns.
func colorize(seq, marks string, opt Options) string {
	if !opt.Color {
		return seq
	}
	var sb strings.Builder
	for i := 0; i < len(seq); i++ {
		c := seq[i : i+1]
		switch {
		case i >= len(marks):
			sb.WriteString(c)
		case marks[i:i+1] == opt.matchGlyph():
			sb.WriteString(matchColor("%s", c))
		case marks[i:i+1] == opt.gapGlyph():
			sb.WriteString(gapColor("%s", c))
		default:
			sb.WriteString(mismatchColor("%s", c))
		}
	}
	return sb.String()
}

// RenderAlignment prints a wrapped two-row alignment panel with a marker
// track and a score summary line. Rows are labelled with the given names.
func RenderAlignment(nameA, nameB, alignedA, alignedB string, score, identity float64, opt Options) string {
	width := opt.Width
	if width <= 0 {
		width = DefaultOptions.Width
	}
	label := nameA
	if len(nameB) > len(label) {
		label = nameB
	}
	pad := len(label) + 1
	padA := nameA + strings.Repeat(" ", pad-len(nameA))
	padB := nameB + strings.Repeat(" ", pad-len(nameB))
	marks := markers(alignedA, alignedB, opt)

	var b strings.Builder
	for start := 0; start < len(alignedA) || start == 0; start += width {
		end := start + width
		if end > len(alignedA) {
			end = len(alignedA)
		}
		rowA, rowB, rowM := alignedA[start:end], alignedB[start:end], marks[start:end]
		fmt.Fprintf(&b, "%s%s%s\n", linePrefix, padA, colorize(rowA, rowM, opt))
		fmt.Fprintf(&b, "%s%s%s\n", linePrefix, strings.Repeat(" ", pad), rowM)
		fmt.Fprintf(&b, "%s%s%s\n", linePrefix, padB, colorize(rowB, rowM, opt))
		if end >= len(alignedA) {
			break
		}
	}
	fmt.Fprintf(&b, "%sscore=%g identity=%.4f\n#\n", linePrefix, score, identity)
	return b.String()
}

// RenderResultWithOptions renders the recovered alignment of a replicate's
// descendants. Replicates without an alignment render nothing.
func RenderResultWithOptions(r simrun.Result, opt Options) string {
	if !r.Aligned {
		return ""
	}
	return RenderAlignment("b", "c", r.AlignedB, r.AlignedC, r.Score, r.Identity, opt)
}

// RenderResult keeps the common call site short (uses DefaultOptions).
func RenderResult(r simrun.Result) string {
	return RenderResultWithOptions(r, DefaultOptions)
}
