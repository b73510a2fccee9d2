package cli

import (
	"io"
	"os"

	"github.com/dmitrijs2005/cali/internal/config"
	"github.com/gookit/color"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// colorEnabled decides whether reports written to out get ANSI colour.
func colorEnabled(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		color.ForceOpenColor()
		return true
	case config.ColorNever:
		return false
	}

	f, ok := out.(*os.File)
	return ok && isTerminal(int(f.Fd()))
}
