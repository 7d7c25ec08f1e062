package output

import (
	"fmt"
	"io"

	"evosim/internal/simrun"
)

func writeFASTARecords(w io.Writer, r simrun.Result) error {
	if _, err := fmt.Fprintf(w,
		">rep%d_ancestor len=%d\n%s\n>rep%d_b len=%d\n%s\n>rep%d_c len=%d\n%s\n",
		r.Index, r.Length, r.Ancestor,
		r.Index, r.PairLength, r.B,
		r.Index, r.PairLength, r.C,
	); err != nil {
		return err
	}
	if !r.Aligned {
		return nil
	}
	_, err := fmt.Fprintf(w,
		">rep%d_b_aln score=%g\n%s\n>rep%d_c_aln score=%g\n%s\n",
		r.Index, r.Score, r.AlignedB,
		r.Index, r.Score, r.AlignedC,
	)
	return err
}

// StreamFASTA streams FASTA records from a channel to the writer. Each
// replicate yields ancestor/b/c records, plus the aligned pair when an
// alignment was recovered.
func StreamFASTA(w io.Writer, in <-chan simrun.Result) error {
	for r := range in {
		if err := writeFASTARecords(w, r); err != nil {
			return err
		}
	}
	return nil
}

// WriteFASTA writes a slice of replicates as FASTA records to the writer.
func WriteFASTA(w io.Writer, list []simrun.Result) error {
	for _, r := range list {
		if err := writeFASTARecords(w, r); err != nil {
			return err
		}
	}
	return nil
}
