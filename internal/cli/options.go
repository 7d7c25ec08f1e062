// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"evosim/internal/clibase"
	"evosim/internal/cliutil"
)

// Options holds all evosim CLI flags.
type Options struct {
	clibase.Common

	// Simulation
	Length     int
	Time       float64
	Rate       float64
	IndelRate  float64
	Indels     bool
	Ancestor   string // inline ancestor sequence; empty = generate one
	Replicates int
	Seed       int64

	// Alignment recovery
	Align      bool
	Match      float64
	Mismatch   float64
	GapPenalty float64

	// Performance
	Threads int

	// Extra output
	Seqs bool // include sequences in text rows
	Diff bool // divergence lines ancestor vs descendants under text rows

	// Scenario file
	ConfigPath string

	// Set records which flags were given explicitly, so scenario-file
	// values only fill the gaps.
	Set map[string]bool
}

// NewFlagSet returns the evosim flag set with its usage handler installed.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "molecular evolution simulator", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "\nUsage:")
		fmt.Fprintf(out, "  %s [options]\n", name)

		fmt.Fprintln(out, "\nSimulation:")
		fmt.Fprintf(out, "  -n, --length int       Ancestor length [%s]\n", def("length"))
		fmt.Fprintf(out, "  -T, --time float       Evolutionary time span [%s]\n", def("time"))
		fmt.Fprintf(out, "  -u, --rate float       Substitution rate between any two bases [%s]\n", def("rate"))
		fmt.Fprintf(out, "      --indels           Simulate insertions and deletions too [%s]\n", def("indels"))
		fmt.Fprintf(out, "      --indel-rate float Explicit indel event rate (0 = length*time*rate/10) [%s]\n", def("indel-rate"))
		fmt.Fprintf(out, "      --ancestor string  Evolve from this sequence instead of generating one\n")
		fmt.Fprintf(out, "  -R, --replicates int   Independent replicates to simulate [%s]\n", def("replicates"))
		fmt.Fprintf(out, "      --seed int         PRNG seed; replicate i uses seed+i [%s]\n", def("seed"))
		fmt.Fprintf(out, "      --config file      YAML scenario file (flags override)\n")

		fmt.Fprintln(out, "\nAlignment recovery:")
		fmt.Fprintf(out, "  -a, --align            Globally align the two descendants [%s]\n", def("align"))
		fmt.Fprintf(out, "      --match float      Match reward [%s]\n", def("match"))
		fmt.Fprintf(out, "      --mismatch float   Mismatch penalty [%s]\n", def("mismatch"))
		fmt.Fprintf(out, "      --gap float        Per-column gap penalty [%s]\n", def("gap"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int      Worker threads (0 = all CPUs) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nExtra output:")
		fmt.Fprintf(out, "      --seqs             Include sequences in text rows [%s]\n", def("seqs"))
		fmt.Fprintf(out, "      --diff             Divergence lines ancestor vs descendants (text) [%s]\n", def("diff"))
	})
	return fs
}

// PrintExamples prints a tiny quickstart for evosim.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "evosim", func(w io.Writer) {
		fmt.Fprintln(w, "Simulate one lineage and print a summary row:")
		fmt.Fprintln(w, "  evosim --length 200 --time 1 --rate 0.5")
		fmt.Fprintln(w, "\nIndels plus recovered alignment, pretty-printed:")
		fmt.Fprintln(w, "  evosim -n 100 -T 2 -u 1 --indels --align --pretty")
		fmt.Fprintln(w, "\nA replicate batch as JSON lines:")
		fmt.Fprintln(w, "  evosim -R 100 --seed 7 --output jsonl")
	})
}

// ParseArgs registers and parses all flags and returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	noHeader := clibase.Register(fs, &o.Common)

	fs.IntVar(&o.Length, "length", 100, "ancestor length [100]")
	fs.IntVar(&o.Length, "n", 100, "alias of --length")
	fs.Float64Var(&o.Time, "time", 1, "evolutionary time span [1]")
	fs.Float64Var(&o.Time, "T", 1, "alias of --time")
	fs.Float64Var(&o.Rate, "rate", 1, "substitution rate [1]")
	fs.Float64Var(&o.Rate, "u", 1, "alias of --rate")
	fs.BoolVar(&o.Indels, "indels", false, "simulate insertions and deletions [false]")
	fs.Float64Var(&o.IndelRate, "indel-rate", 0, "explicit indel event rate (0 = derived) [0]")
	fs.StringVar(&o.Ancestor, "ancestor", "", "evolve from this sequence")
	fs.IntVar(&o.Replicates, "replicates", 1, "independent replicates [1]")
	fs.IntVar(&o.Replicates, "R", 1, "alias of --replicates")
	fs.Int64Var(&o.Seed, "seed", 1, "PRNG seed; replicate i uses seed+i [1]")
	fs.StringVar(&o.ConfigPath, "config", "", "YAML scenario file")

	fs.BoolVar(&o.Align, "align", false, "globally align the descendants [false]")
	fs.BoolVar(&o.Align, "a", false, "alias of --align")
	fs.Float64Var(&o.Match, "match", 2, "match reward [2]")
	fs.Float64Var(&o.Mismatch, "mismatch", -2, "mismatch penalty [-2]")
	fs.Float64Var(&o.GapPenalty, "gap", -3, "per-column gap penalty [-3]")

	fs.IntVar(&o.Threads, "threads", 0, "worker threads (0 = all CPUs) [0]")
	fs.IntVar(&o.Threads, "t", 0, "alias of --threads")

	fs.BoolVar(&o.Seqs, "seqs", false, "include sequences in text rows [false]")
	fs.BoolVar(&o.Diff, "diff", false, "divergence lines under text rows [false]")

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
	if len(posArgs) > 0 {
		return o, fmt.Errorf("unexpected argument %q", posArgs[0])
	}

	o.Header = !*noHeader
	o.Set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { o.Set[canonical(f.Name)] = true })

	if o.Version {
		return o, nil
	}
	return o, Validate(&o)
}

// canonical folds short aliases onto their long names so scenario merging
// only has one spelling to check.
func canonical(name string) string {
	switch name {
	case "n":
		return "length"
	case "T":
		return "time"
	case "u":
		return "rate"
	case "R":
		return "replicates"
	case "a":
		return "align"
	case "t":
		return "threads"
	case "o":
		return "output"
	case "q":
		return "quiet"
	}
	return name
}

// Validate applies the evosim CLI invariants. Simulation parameters get a
// second, authoritative check in the core constructors; this layer exists
// to fail fast with flag-oriented messages.
func Validate(o *Options) error {
	if err := clibase.Validate(&o.Common); err != nil {
		return err
	}
	if o.Length < 0 {
		return errors.New("--length must be >= 0")
	}
	if o.Time < 0 {
		return errors.New("--time must be >= 0")
	}
	if o.Rate <= 0 {
		return errors.New("--rate must be > 0")
	}
	if o.IndelRate < 0 {
		return errors.New("--indel-rate must be >= 0")
	}
	if o.Replicates < 1 {
		return errors.New("--replicates must be >= 1")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be >= 0")
	}
	if o.Ancestor != "" && o.Set["length"] {
		return errors.New("--ancestor conflicts with --length")
	}
	if o.Diff && o.Output != "text" {
		return errors.New("--diff requires --output text")
	}
	return nil
}
