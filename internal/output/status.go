package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI color codes.
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorCyan   = "\033[36m"
	colorYellow = "\033[33m"
)

// Status prints prefixed progress lines ("[*]", "[+]", "[!]") for the
// command-line tools. Warnings are printed even in quiet mode.
type Status struct {
	w       io.Writer
	noColor bool
	quiet   bool
}

// NewStatus creates a status writer on stderr. Color is only used when
// stderr is a terminal and noColor is false.
func NewStatus(noColor, quiet bool) *Status {
	if !noColor && !term.IsTerminal(int(os.Stderr.Fd())) {
		noColor = true
	}
	return NewStatusWriter(os.Stderr, noColor, quiet)
}

// NewStatusWriter creates a status writer on w with explicit color control.
func NewStatusWriter(w io.Writer, noColor, quiet bool) *Status {
	return &Status{w: w, noColor: noColor, quiet: quiet}
}

// Info prints a "[*]" line.
func (s *Status) Info(format string, args ...any) {
	if s.quiet {
		return
	}
	s.print(colorCyan, "[*]", format, args...)
}

// Success prints a "[+]" line.
func (s *Status) Success(format string, args ...any) {
	if s.quiet {
		return
	}
	s.print(colorGreen, "[+]", format, args...)
}

// Warn prints a "[!]" line.
func (s *Status) Warn(format string, args ...any) {
	s.print(colorYellow, "[!]", format, args...)
}

func (s *Status) print(color, prefix, format string, args ...any) {
	reset := colorReset
	if s.noColor {
		color = ""
		reset = ""
	}
	fmt.Fprintf(s.w, "%s%s%s %s\n", color, prefix, reset, fmt.Sprintf(format, args...))
}
