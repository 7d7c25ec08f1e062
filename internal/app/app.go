// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	"github.com/fatih/color"

	"evosim-core/align"
	"evosim-core/dna"
	"evosim-core/lineage"
	"evosim/internal/cli"
	"evosim/internal/clibase"
	"evosim/internal/cmdutil"
	"evosim/internal/config"
	"evosim/internal/pipeline"
	"evosim/internal/pretty"
	"evosim/internal/simrun"
	"evosim/internal/version"
	"evosim/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
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

	fs := cli.NewFlagSet("evosim")
	fs.SetOutput(io.Discard) // silence default flag pkg

	// No args => register flags then print usage
	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		if code, done := flushOut(); done {
			return code
		}
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			cli.PrintExamples(outw)
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
		fmt.Fprintf(outw, "evosim version %s\n", version.Version)
		if code, done := flushOut(); done {
			return code
		}
		return 0
	}

	// Scenario file fills whatever the flags left alone; the merged
	// options then get the same validation the flags got.
	if opts.ConfigPath != "" {
		sc, err := config.Load(opts.ConfigPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		config.Apply(&opts, sc)
		if err := cli.Validate(&opts); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}

	var ancestor dna.Sequence
	if opts.Ancestor != "" {
		ancestor, err = dna.Parse(opts.Ancestor)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}

	if opts.Output != "text" {
		if opts.Pretty {
			cmdutil.Warnf(stderr, opts.Quiet, "--pretty only affects text output; ignoring")
		}
		if opts.Seqs {
			cmdutil.Warnf(stderr, opts.Quiet, "--seqs only affects text output; ignoring")
		}
	}
	if opts.Pretty && !opts.Align {
		cmdutil.Warnf(stderr, opts.Quiet, "--pretty renders nothing without --align")
	}

	thr := opts.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	useColor := clibase.UseColor(stdout, opts.Color)
	color.NoColor = !useColor
	popt := pretty.DefaultOptions
	popt.Color = useColor

	simOpts := simrun.Options{
		Params: lineage.Params{
			Length:    opts.Length,
			Time:      opts.Time,
			Rate:      opts.Rate,
			IndelRate: opts.IndelRate,
		},
		Indels:   opts.Indels,
		Ancestor: ancestor,
		Align:    opts.Align,
		Scoring: align.Config{
			Matrix:     align.Uniform(opts.Match, opts.Mismatch),
			GapPenalty: opts.GapPenalty,
		},
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	in, writeErr := writers.StartResultWriter(outw, opts.Output, writers.TextOptions{
		Header:     opts.Header,
		Seqs:       opts.Seqs,
		Pretty:     opts.Pretty,
		Diff:       opts.Diff,
		PrettyOpts: popt,
	}, thr*4)

	perr := pipeline.ForEachResult(ctx, pipeline.Config{
		Threads:    thr,
		Replicates: opts.Replicates,
		Seed:       opts.Seed,
	}, simOpts, func(r simrun.Result) error {
		in <- r
		return nil
	})
	close(in)

	werr := <-writeErr
	if writers.IsBrokenPipe(werr) {
		return 0
	}
	if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 2
	}
	if code, done := flushOut(); done {
		return code
	}
	return 0
}
