package report

import (
	"os"

	"github.com/mattn/go-isatty"
)

// StdoutIsTerminal reports whether stdout is attached to a terminal.
// Used to decide whether coloured output is appropriate by default.
func StdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
