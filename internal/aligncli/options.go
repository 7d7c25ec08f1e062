// internal/aligncli/options.go
package aligncli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"evosim/internal/clibase"
	"evosim/internal/cliutil"
)

// Options holds all evosim-align CLI flags.
type Options struct {
	clibase.Common

	// Input: either two inline sequences or FASTA positionals holding at
	// least two records between them.
	SeqA     string
	SeqB     string
	SeqFiles []string

	// Scoring
	Match      float64
	Mismatch   float64
	GapPenalty float64
}

// NewFlagSet returns the evosim-align flag set with usage installed.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "global pairwise sequence aligner", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "\nUsage:")
		fmt.Fprintf(out, "  %s [options] --seq-a ACGT --seq-b AGT\n", name)
		fmt.Fprintf(out, "  %s [options] pair.fa\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -A, --seq-a string     First sequence (inline)")
		fmt.Fprintln(out, "  -B, --seq-b string     Second sequence (inline)")
		fmt.Fprintln(out, "      FASTA file(s) as positionals; the first two records are aligned")

		fmt.Fprintln(out, "\nScoring:")
		fmt.Fprintf(out, "      --match float      Match reward [%s]\n", def("match"))
		fmt.Fprintf(out, "      --mismatch float   Mismatch penalty [%s]\n", def("mismatch"))
		fmt.Fprintf(out, "      --gap float        Per-column gap penalty [%s]\n", def("gap"))
	})
	return fs
}

// PrintExamples prints a tiny quickstart for evosim-align.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "evosim-align", func(w io.Writer) {
		fmt.Fprintln(w, "Align two inline sequences:")
		fmt.Fprintln(w, "  evosim-align -A ACGTACGT -B ACGACGT --pretty")
		fmt.Fprintln(w, "\nAlign the first two records of a FASTA file:")
		fmt.Fprintln(w, "  evosim-align --output fasta pair.fa")
	})
}

// ParseArgs registers and parses all flags and returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	noHeader := clibase.Register(fs, &o.Common)

	fs.StringVar(&o.SeqA, "seq-a", "", "first sequence (inline)")
	fs.StringVar(&o.SeqA, "A", "", "alias of --seq-a")
	fs.StringVar(&o.SeqB, "seq-b", "", "second sequence (inline)")
	fs.StringVar(&o.SeqB, "B", "", "alias of --seq-b")

	fs.Float64Var(&o.Match, "match", 2, "match reward [2]")
	fs.Float64Var(&o.Mismatch, "mismatch", -2, "mismatch penalty [-2]")
	fs.Float64Var(&o.GapPenalty, "gap", -3, "per-column gap penalty [-3]")

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	o.Header = !*noHeader

	exp, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return o, err
	}
	o.SeqFiles = exp

	if o.Version {
		return o, nil
	}
	return o, Validate(&o)
}

// Validate applies the evosim-align CLI invariants.
func Validate(o *Options) error {
	if err := clibase.Validate(&o.Common); err != nil {
		return err
	}
	usingInline := o.SeqA != "" || o.SeqB != ""
	usingFiles := len(o.SeqFiles) > 0
	switch {
	case usingInline && usingFiles:
		return errors.New("--seq-a/--seq-b conflict with FASTA positionals")
	case usingInline && (o.SeqA == "" || o.SeqB == ""):
		return errors.New("--seq-a and --seq-b must be supplied together")
	case !usingInline && !usingFiles:
		return errors.New("provide --seq-a/--seq-b or FASTA input")
	}
	return nil
}
