package grade

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
)

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Render writes the report as a table followed by a one-line verdict. The
// table is colored when w is a terminal.
func (r *Report) Render(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	if isTTY(w) {
		t.SetStyle(table.StyleColoredBright)
	}

	t.AppendHeader(table.Row{"Line", "Status", "Diagnostic"})
	for _, f := range r.Missing {
		t.AppendRow(table.Row{f.Line, "MISSING", f.Message})
	}
	for _, f := range r.Unexpected {
		t.AppendRow(table.Row{f.Line, "UNEXPECTED", f.Message})
	}
	for _, f := range r.Matched {
		t.AppendRow(table.Row{f.Line, "OK", f.Message})
	}
	t.Render()

	if r.Passed() {
		fmt.Fprintln(w, "All expected errors found!")
	} else {
		fmt.Fprintf(w, "FAILED: %d missing, %d unexpected\n", len(r.Missing), len(r.Unexpected))
	}
}
