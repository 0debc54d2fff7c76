package encode

import (
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level. The default is 2.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// IndentSequence controls whether sequence items are indented under their
// key. The default is true.
func IndentSequence(v bool) EncodeOption {
	return func(es *EncState) { es.indentSeq = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

// ColorAuto colors the output with the default colors when w is a terminal
// and color has not been disabled (NO_COLOR, TERM=dumb).
func ColorAuto(w io.Writer) EncodeOption {
	return func(es *EncState) {
		if color.NoColor {
			return
		}
		f, ok := w.(interface{ Fd() uintptr })
		if !ok {
			return
		}
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			es.colors = NewColors()
		}
	}
}
