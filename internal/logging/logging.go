// Package logging builds the leveled logger sshez writes diagnostics to and
// detects whether the process is attached to a terminal.
//
// User-facing messages go through ports.Reporter; the logger only carries the
// details shown with --verbose, such as the formed block and the config path.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Prefix is prepended to every log line.
const Prefix = "sshez"

// New returns a logger writing to w. Verbose enables debug output; otherwise
// only warnings and errors are shown.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          Prefix,
		ReportTimestamp: false,
	})
}

// NewDiscard returns a logger that drops everything.
func NewDiscard() *log.Logger {
	return New(io.Discard, false)
}
