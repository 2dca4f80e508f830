/*
File    : spindle/diag/formatter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package diag

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
)

// Formatter renders Diagnostic values to an io.Writer, coloring by
// severity when Color is enabled. Grounded on malphas-lang's
// diag.Formatter, which is the only diagnostic renderer anywhere in the
// retrieval pack; unlike that renderer this one does not load and
// re-display source snippets, since places the
// diagnostic *renderer* outside the front end's scope - Formatter exists
// here only as the CLI driver's own minimal renderer, not as a
// dependency of lexer/parser.
type Formatter struct {
	Out   io.Writer
	Color bool

	errorColor   *color.Color
	warningColor *color.Color
	noteColor    *color.Color
}

// NewFormatter creates a Formatter writing to out. cmd/spindle/main.go
// passes the result of isatty.IsTerminal on standard output (or the
// .spindlerc.yaml color override), whatever out is.
func NewFormatter(out io.Writer, enableColor bool) *Formatter {
	return &Formatter{
		Out:          out,
		Color:        enableColor,
		errorColor:   color.New(color.FgRed, color.Bold),
		warningColor: color.New(color.FgYellow, color.Bold),
		noteColor:    color.New(color.FgCyan),
	}
}

// FormatAll writes each diagnostic in source order.
func (f *Formatter) FormatAll(diagnostics []Diagnostic) {
	sorted := make([]Diagnostic, len(diagnostics))
	copy(sorted, diagnostics)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Span.Start < sorted[j].Span.Start
	})
	for _, d := range sorted {
		f.Format(d)
	}
}

// Format writes a single diagnostic as "severity[stage]: message\n  --> span\n",
// followed by any notes, with a severity-colored label before the
// message.
func (f *Formatter) Format(d Diagnostic) {
	label := string(d.Severity)
	if f.Color {
		switch d.Severity {
		case SeverityError:
			label = f.errorColor.Sprint(label)
		case SeverityWarning:
			label = f.warningColor.Sprint(label)
		case SeverityNote:
			label = f.noteColor.Sprint(label)
		}
	}
	fmt.Fprintf(f.Out, "%s[%s]: %s\n", label, d.Stage, d.Message)
	fmt.Fprintf(f.Out, "  --> %s\n", d.Span)
	for _, note := range d.Notes {
		if f.Color {
			fmt.Fprintf(f.Out, "  %s: %s\n", f.noteColor.Sprint("note"), note)
		} else {
			fmt.Fprintf(f.Out, "  note: %s\n", note)
		}
	}
}

// HasErrors reports whether any diagnostic in the slice is an error,
// which the CLI driver uses to pick its exit code.
func HasErrors(diagnostics []Diagnostic) bool {
	for _, d := range diagnostics {
		if d.IsError() {
			return true
		}
	}
	return false
}
