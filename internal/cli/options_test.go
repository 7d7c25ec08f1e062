package cli

import (
	"errors"
	"flag"
	"io"
	"testing"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("evosim")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestDefaults(t *testing.T) {
	o, err := parse(t)
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if o.Length != 100 || o.Time != 1 || o.Rate != 1 || o.Replicates != 1 {
		t.Errorf("unexpected defaults: %+v", o)
	}
	if o.Output != "text" || !o.Header {
		t.Errorf("unexpected output defaults: %+v", o.Common)
	}
	if o.Seed != 1 {
		t.Errorf("seed default %d, want 1", o.Seed)
	}
}

func TestAliases(t *testing.T) {
	o, err := parse(t, "-n", "50", "-T", "2.5", "-u", "0.3", "-R", "10", "-a")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if o.Length != 50 || o.Time != 2.5 || o.Rate != 0.3 || o.Replicates != 10 || !o.Align {
		t.Errorf("aliases not applied: %+v", o)
	}
	if !o.Set["length"] || !o.Set["time"] || !o.Set["rate"] {
		t.Errorf("aliases not canonicalized in Set: %v", o.Set)
	}
}

func TestValidationErrors(t *testing.T) {
	cases := [][]string{
		{"--length", "-5"},
		{"--time", "-1"},
		{"--rate", "0"},
		{"--rate", "-2"},
		{"--indel-rate", "-1"},
		{"--replicates", "0"},
		{"--threads", "-1"},
		{"--output", "xml"},
		{"--color", "sometimes"},
		{"--ancestor", "ACGT", "--length", "10"},
		{"--diff", "--output", "json"},
	}
	for _, argv := range cases {
		if _, err := parse(t, argv...); err == nil {
			t.Errorf("expected error for %v", argv)
		}
	}
}

func TestNoHeader(t *testing.T) {
	o, err := parse(t, "--no-header")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if o.Header {
		t.Error("--no-header did not clear Header")
	}
}

func TestHelpRequested(t *testing.T) {
	_, err := parse(t, "-h")
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("got %v, want flag.ErrHelp", err)
	}
}

func TestRejectsPositionals(t *testing.T) {
	if _, err := parse(t, "stray.fa"); err == nil {
		t.Error("expected error for stray positional")
	}
}
