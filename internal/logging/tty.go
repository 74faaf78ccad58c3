package logging

import (
	"io"

	"golang.org/x/term"
)

// IsTTY returns true if the given reader or writer is a terminal.
// It supports os.File and any wrapper that provides an Fd() method.
func IsTTY(v any) bool {
	if f, ok := v.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// IsInteractive reports whether both ends of a prompt are terminals.
func IsInteractive(in io.Reader, out io.Writer) bool {
	return IsTTY(in) && IsTTY(out)
}
