// internal/output/rows.go
package output

import (
	"fmt"
	"strconv"

	"evosim/internal/simrun"
)

// floatCell renders a score/identity column, "-" when the replicate was
// not aligned.
func floatCell(ok bool, v float64) string {
	if !ok {
		return "-"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatRowTSV returns the base columns for one replicate (no trailing
// newline). With seqs the three sequence columns are appended.
func FormatRowTSV(r simrun.Result, seqs bool) string {
	row := fmt.Sprintf("%d\t%d\t%d\t%d\t%d\t%s\t%s",
		r.Index, r.Seed,
		r.Length, r.PairLength, r.Differences,
		floatCell(r.Aligned, r.Score), floatCell(r.Aligned, r.Identity),
	)
	if seqs {
		row += "\t" + r.Ancestor + "\t" + r.B + "\t" + r.C
	}
	return row
}
