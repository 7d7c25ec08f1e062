// core/fasta/reader.go
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Record is one parsed FASTA entry.
type Record struct {
	ID  string
	Seq string
}

// Read parses every record from r. Sequence lines are concatenated and
// upper-cased; blank lines are skipped. A file with sequence data before
// any header is an error.
func Read(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	// Allow long single-line sequences.
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var (
		recs []Record
		cur  *Record
	)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			recs = append(recs, Record{ID: firstField(line[1:])})
			cur = &recs[len(recs)-1]
			continue
		}
		if cur == nil {
			return nil, fmt.Errorf("fasta: sequence data before first header")
		}
		cur.Seq += strings.ToUpper(line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta: %w", err)
	}
	return recs, nil
}

// ReadFile parses every record from path. "-" reads stdin; gzip input is
// detected by magic number or a .gz suffix.
func ReadFile(path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	recs, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

func firstField(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i]
	}
	return s
}
