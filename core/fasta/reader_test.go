package fasta

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadMultipleRecords(t *testing.T) {
	in := ">s1 description here\nACGT\nacgt\n\n>s2\nTTTT\n"
	recs, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].ID != "s1" || recs[0].Seq != "ACGTACGT" {
		t.Errorf("record 0: %+v", recs[0])
	}
	if recs[1].ID != "s2" || recs[1].Seq != "TTTT" {
		t.Errorf("record 1: %+v", recs[1])
	}
}

func TestReadRejectsHeaderlessSequence(t *testing.T) {
	if _, err := Read(strings.NewReader("ACGT\n")); err == nil {
		t.Fatal("expected error for sequence before header")
	}
}

func TestReadEmptyInput(t *testing.T) {
	recs, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("got %d records from empty input", len(recs))
	}
}

func TestReadFilePlainAndGzip(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "a.fa")
	if err := os.WriteFile(plain, []byte(">x\nACGT\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	recs, err := ReadFile(plain)
	if err != nil {
		t.Fatalf("ReadFile plain: %v", err)
	}
	if len(recs) != 1 || recs[0].Seq != "ACGT" {
		t.Errorf("plain: %+v", recs)
	}

	gz := filepath.Join(dir, "b.fa.gz")
	fh, err := os.Create(gz)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(">y\nTTAA\n")); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := fh.Close(); err != nil {
		t.Fatal(err)
	}
	recs, err = ReadFile(gz)
	if err != nil {
		t.Fatalf("ReadFile gzip: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != "y" || recs[0].Seq != "TTAA" {
		t.Errorf("gzip: %+v", recs)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.fa")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
