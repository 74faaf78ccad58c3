package ui

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/AntonioJCosta/sshez/internal/core/ports"
)

// ConsoleReporter implements ports.Reporter by writing coloured lines.
// Errors and warnings go to errOut, everything else to out.
type ConsoleReporter struct {
	out    io.Writer
	errOut io.Writer
}

// NewConsoleReporter creates a reporter writing to out and errOut.
func NewConsoleReporter(out, errOut io.Writer) ports.Reporter {
	return &ConsoleReporter{out: out, errOut: errOut}
}

func (r *ConsoleReporter) Info(msg string) {
	fmt.Fprintln(r.out, InfoColor(msg))
}

func (r *ConsoleReporter) Success(msg string) {
	fmt.Fprintln(r.out, SuccessColor(msg))
}

func (r *ConsoleReporter) Warn(msg string) {
	fmt.Fprintln(r.errOut, WarningColor(msg))
}

func (r *ConsoleReporter) Error(msg string) {
	fmt.Fprintln(r.errOut, ErrorColor(msg))
}

// List prints heading followed by a borderless one-column table of names.
func (r *ConsoleReporter) List(heading string, names []string) {
	fmt.Fprintln(r.out, HeaderColor(heading))

	table := tablewriter.NewWriter(r.out)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetColumnSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT})
	for _, name := range names {
		table.Append([]string{"- " + AliasNameColor(name)})
	}
	table.Render()
}
