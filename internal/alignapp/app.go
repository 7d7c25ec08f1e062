// internal/alignapp/app.go
package alignapp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/fatih/color"

	"evosim-core/align"
	"evosim-core/dna"
	"evosim-core/fasta"
	"evosim/internal/aligncli"
	"evosim/internal/clibase"
	"evosim/internal/jsonutil"
	"evosim/internal/pretty"
	"evosim/internal/version"
	"evosim/internal/writers"
	"evosim/pkg/api"
)

// TSVHeader is the canonical header row for evosim-align text output.
const TSVHeader = "a\tb\tcolumns\tscore\tidentity"

// input is one sequence to align, with the name used in panels and FASTA
// records.
type input struct {
	name string
	seq  dna.Sequence
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	if parent.Err() != nil {
		return 130
	}

	outw := bufio.NewWriterSize(stdout, 64<<10)

	flushOut := func() (int, bool) {
		err := outw.Flush()
		if writers.IsBrokenPipe(err) {
			return 0, true
		} else if err != nil {
			fmt.Fprintln(stderr, err)
			return 3, true
		}
		return 0, false
	}

	fs := aligncli.NewFlagSet("evosim-align")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = aligncli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		if code, done := flushOut(); done {
			return code
		}
		return 0
	}

	opts, err := aligncli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			aligncli.PrintExamples(outw)
			if code, done := flushOut(); done {
				return code
			}
			return 0
		}
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if code, done := flushOut(); done {
				return code
			}
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if code, done := flushOut(); done {
			return code
		}
		return 2
	}
	if opts.Version {
		fmt.Fprintf(outw, "evosim-align version %s\n", version.Version)
		if code, done := flushOut(); done {
			return code
		}
		return 0
	}

	a, b, err := loadInputs(opts)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	al, err := align.New(align.Config{
		Matrix:     align.Uniform(opts.Match, opts.Mismatch),
		GapPenalty: opts.GapPenalty,
	}).Align(a.seq, b.seq)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	v := api.AlignmentV1{
		A:        a.seq.String(),
		B:        b.seq.String(),
		AlignedA: al.A.String(),
		AlignedB: al.B.String(),
		Score:    al.Score,
		Identity: al.Identity(),
	}

	useColor := clibase.UseColor(stdout, opts.Color)
	color.NoColor = !useColor
	popt := pretty.DefaultOptions
	popt.Color = useColor

	var werr error
	switch opts.Output {
	case "json":
		werr = jsonutil.EncodePretty(outw, v)
	case "jsonl":
		werr = json.NewEncoder(outw).Encode(v)
	case "fasta":
		_, werr = fmt.Fprintf(outw, ">%s_aln score=%g\n%s\n>%s_aln score=%g\n%s\n",
			a.name, al.Score, v.AlignedA,
			b.name, al.Score, v.AlignedB)
	case "text":
		if opts.Header {
			if _, werr = fmt.Fprintln(outw, TSVHeader); werr != nil {
				break
			}
		}
		_, werr = fmt.Fprintf(outw, "%s\t%s\t%d\t%g\t%g\n",
			a.name, b.name, len(al.A), al.Score, al.Identity())
		if werr == nil && opts.Pretty {
			_, werr = io.WriteString(outw, pretty.RenderAlignment(a.name, b.name, v.AlignedA, v.AlignedB, al.Score, al.Identity(), popt))
		}
	default:
		werr = fmt.Errorf("unsupported output %q", opts.Output)
	}
	if writers.IsBrokenPipe(werr) {
		return 0
	}
	if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if code, done := flushOut(); done {
		return code
	}
	return 0
}

// loadInputs resolves the two sequences from inline flags or FASTA files.
// File input takes the first two records across the given files; gap
// symbols from previously aligned records are stripped.
func loadInputs(opts aligncli.Options) (input, input, error) {
	if opts.SeqA != "" {
		a, err := dna.Parse(opts.SeqA)
		if err != nil {
			return input{}, input{}, fmt.Errorf("--seq-a: %w", err)
		}
		b, err := dna.Parse(opts.SeqB)
		if err != nil {
			return input{}, input{}, fmt.Errorf("--seq-b: %w", err)
		}
		return input{name: "a", seq: a.RemoveGaps()}, input{name: "b", seq: b.RemoveGaps()}, nil
	}

	var got []input
	for _, path := range opts.SeqFiles {
		recs, err := fasta.ReadFile(path)
		if err != nil {
			return input{}, input{}, err
		}
		for _, rec := range recs {
			seq, err := dna.Parse(rec.Seq)
			if err != nil {
				return input{}, input{}, fmt.Errorf("%s: record %q: %w", path, rec.ID, err)
			}
			got = append(got, input{name: rec.ID, seq: seq.RemoveGaps()})
			if len(got) == 2 {
				return got[0], got[1], nil
			}
		}
	}
	return input{}, input{}, fmt.Errorf("need 2 sequences, found %d", len(got))
}
