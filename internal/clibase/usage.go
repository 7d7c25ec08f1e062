// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"evosim/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs. extra prints the
// tool-specific sections (synopsis, simulation or scoring blocks) before
// the shared output/misc blocks.
func UsageCommon(fs *flag.FlagSet, name, oneLiner string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s: %s\n\n", name, oneLiner)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string    Output: text | json | jsonl | fasta [%s]\n", def("output"))
		fmt.Fprintf(out, "      --pretty           ASCII alignment block under each text row [%s]\n", def("pretty"))
		fmt.Fprintf(out, "      --color string     Color pretty blocks: auto | always | never [%s]\n", def("color"))
		fmt.Fprintf(out, "      --no-header        Suppress header line in text output [%s]\n", def("no-header"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet            Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version          Print version and exit")
		fmt.Fprintln(out, "  -h, --help             Show this help and exit")
	}
}
