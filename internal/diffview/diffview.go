// Package diffview renders ancestor-to-descendant divergence as compact
// edit summaries, one line per descendant.
package diffview

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"evosim/internal/simrun"
)

const linePrefix = "# "

// edits renders one edit script as a compact inline form:
// unchanged runs verbatim, insertions as {+seq+}, deletions as {-seq-}.
// Gap symbols are stripped first so the script reflects residues, not
// bookkeeping columns.
func edits(from, to string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(strings.ReplaceAll(from, "-", ""), strings.ReplaceAll(to, "-", ""), false)
	diffs = dmp.DiffCleanupEfficiency(diffs)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		case diffpatch.DiffDelete:
			b.WriteString("{-" + d.Text + "-}")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// RenderResult prints one divergence line per descendant, from the
// simulated ancestor.
func RenderResult(r simrun.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%sancestor>b %s\n", linePrefix, edits(r.Ancestor, r.B))
	fmt.Fprintf(&b, "%sancestor>c %s\n", linePrefix, edits(r.Ancestor, r.C))
	b.WriteString("#\n")
	return b.String()
}
