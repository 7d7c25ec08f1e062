package aligncli

import (
	"io"
	"testing"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("evosim-align")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestInlinePair(t *testing.T) {
	o, err := parse(t, "-A", "ACGT", "-B", "AGT")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if o.SeqA != "ACGT" || o.SeqB != "AGT" {
		t.Errorf("sequences not captured: %+v", o)
	}
	if o.Match != 2 || o.Mismatch != -2 || o.GapPenalty != -3 {
		t.Errorf("scoring defaults wrong: %+v", o)
	}
}

func TestPositionalFiles(t *testing.T) {
	o, err := parse(t, "pair.fa", "--output", "json")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if len(o.SeqFiles) != 1 || o.SeqFiles[0] != "pair.fa" {
		t.Errorf("positionals: %v", o.SeqFiles)
	}
	if o.Output != "json" {
		t.Errorf("output %q", o.Output)
	}
}

func TestValidationErrors(t *testing.T) {
	cases := [][]string{
		{},                               // no input at all
		{"-A", "ACGT"},                   // half an inline pair
		{"-A", "AC", "-B", "GT", "x.fa"}, // inline + files
		{"-A", "AC", "-B", "GT", "--output", "pdf"},
	}
	for _, argv := range cases {
		if _, err := parse(t, argv...); err == nil {
			t.Errorf("expected error for %v", argv)
		}
	}
}

func TestVersionSkipsValidation(t *testing.T) {
	o, err := parse(t, "--version")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if !o.Version {
		t.Error("version flag not set")
	}
}
