// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"evosim/internal/simrun"
)

// Renderer produces an optional annotation block printed after a row
// (pretty alignment panels, divergence diffs). Empty output is skipped.
type Renderer func(simrun.Result) string

func header(seqs bool) string {
	if seqs {
		return TSVHeaderSeqs
	}
	return TSVHeader
}

func writeRow(w io.Writer, r simrun.Result, seqs bool, render Renderer) error {
	if _, err := fmt.Fprintln(w, FormatRowTSV(r, seqs)); err != nil {
		return err
	}
	if render != nil {
		if block := render(r); block != "" {
			if _, err := io.WriteString(w, block); err != nil {
				return err
			}
		}
	}
	return nil
}

// StreamText writes one TSV row per replicate as results arrive,
// invoking render (if non-nil) after each row.
func StreamText(w io.Writer, in <-chan simrun.Result, withHeader, seqs bool, render Renderer) error {
	if withHeader {
		if _, err := fmt.Fprintln(w, header(seqs)); err != nil {
			return err
		}
	}
	for r := range in {
		if err := writeRow(w, r, seqs, render); err != nil {
			return err
		}
	}
	return nil
}

// WriteText writes a slice of replicates as TSV rows (parity with the
// streaming path).
func WriteText(w io.Writer, list []simrun.Result, withHeader, seqs bool, render Renderer) error {
	if withHeader {
		if _, err := fmt.Fprintln(w, header(seqs)); err != nil {
			return err
		}
	}
	for _, r := range list {
		if err := writeRow(w, r, seqs, render); err != nil {
			return err
		}
	}
	return nil
}
