// internal/clibase/common.go
package clibase

import (
	"flag"
	"fmt"
)

// Common holds the CLI fields shared by evosim and evosim-align.
type Common struct {
	// Output
	Output string // text|json|jsonl|fasta
	Pretty bool
	Header bool // true unless --no-header
	Color  string // auto|always|never

	// Misc
	Quiet   bool
	Version bool
}

// Register wires the shared flags onto fs and returns a pointer to the
// "no-header" bool; callers set Common.Header = !noHeader after parsing.
func Register(fs *flag.FlagSet, c *Common) *bool {
	fs.StringVar(&c.Output, "output", "text", "output: text | json | jsonl | fasta [text]")
	fs.StringVar(&c.Output, "o", "text", "alias of --output")
	fs.BoolVar(&c.Pretty, "pretty", false, "ASCII alignment block under each text row [false]")
	fs.StringVar(&c.Color, "color", "auto", "color pretty blocks: auto | always | never [auto]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")

	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")

	return &noHeader
}

// Validate applies the shared CLI invariants.
func Validate(c *Common) error {
	switch c.Output {
	case "text", "json", "jsonl", "fasta":
	default:
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid --color %q", c.Color)
	}
	return nil
}
