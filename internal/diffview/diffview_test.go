package diffview

import (
	"strings"
	"testing"

	"evosim/internal/simrun"
)

func TestEditsIdentical(t *testing.T) {
	if got := edits("ACGT", "ACGT"); got != "ACGT" {
		t.Errorf("identical sequences produced edits: %q", got)
	}
}

func TestEditsSubstitution(t *testing.T) {
	got := edits("ACGT", "AGGT")
	if !strings.Contains(got, "{-C-}") || !strings.Contains(got, "{+G+}") {
		t.Errorf("substitution not visible in %q", got)
	}
}

func TestEditsStripsGaps(t *testing.T) {
	if got := edits("AC--GT", "ACGT"); got != "ACGT" {
		t.Errorf("gap columns treated as residues: %q", got)
	}
}

func TestRenderResultShape(t *testing.T) {
	r := simrun.Result{Ancestor: "ACGT", B: "ACGT", C: "TCGT"}
	got := RenderResult(r)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 lines, got %d:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "# ancestor>b ") || !strings.HasPrefix(lines[1], "# ancestor>c ") {
		t.Errorf("unexpected layout:\n%s", got)
	}
	if lines[2] != "#" {
		t.Errorf("missing spacer line:\n%s", got)
	}
}
