package writers

import (
	"fmt"
	"io"

	"evosim/internal/diffview"
	"evosim/internal/output"
	"evosim/internal/pretty"
	"evosim/internal/simrun"
)

// TextOptions control the annotations attached to text rows.
type TextOptions struct {
	Header bool
	Seqs   bool // append ancestor/b/c sequence columns
	Pretty bool // alignment panel after each row
	Diff   bool // divergence lines after each row

	PrettyOpts pretty.Options
}

// renderer composes the optional per-row annotation blocks.
func (t TextOptions) renderer() output.Renderer {
	if !t.Pretty && !t.Diff {
		return nil
	}
	return func(r simrun.Result) string {
		var s string
		if t.Pretty {
			s += pretty.RenderResultWithOptions(r, t.PrettyOpts)
		}
		if t.Diff {
			s += diffview.RenderResult(r)
		}
		return s
	}
}

// StartResultWriter spins up a writer goroutine for simrun.Result items.
// Results are expected in replicate order; the pipeline's collector
// guarantees that, so no writer sorts.
func StartResultWriter(out io.Writer, format string, topt TextOptions, bufSize int) (chan<- simrun.Result, <-chan error) {
	if format == "jsonl" {
		return StartResultJSONLWriter(out, bufSize)
	}

	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan simrun.Result, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case "json":
			var buf []simrun.Result
			for r := range in {
				buf = append(buf, r)
			}
			err = output.WriteJSON(out, buf)

		case "fasta":
			err = output.StreamFASTA(out, in)

		case "text":
			err = output.StreamText(out, in, topt.Header, topt.Seqs, topt.renderer())

		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		errCh <- err
		// Keep draining so producers never block on a dead writer.
		for range in {
		}
	}()

	return in, errCh
}
