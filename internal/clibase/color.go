package clibase

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// UseColor decides whether pretty blocks get ANSI colors for the given
// output and --color mode. "auto" means color only on a real terminal.
func UseColor(out io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
