package util

import (
	"os"

	"golang.org/x/term"
)

// TerminalWidth returns the column width of the terminal attached to f.
// ok is false when f is not a terminal or its size cannot be determined.
func TerminalWidth(f *os.File) (width int, ok bool) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}
