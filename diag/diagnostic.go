/*
File    : spindle/diag/diagnostic.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package diag holds the compiler-diagnostic type shared by every stage of
the Spindle front end. It deliberately knows nothing about lexing or
parsing: lexer.LexError and parser.ParseError each expose a
ToDiagnostic() method that produces one of these values, so diag itself
has no dependency back on either package.
*/
package diag

import "github.com/spindle-lang/spindle/span"

// Stage identifies which compiler phase raised a Diagnostic.
type Stage string

const (
	StageLexer  Stage = "lexer"
	StageParser Stage = "parser"
)

// Severity captures how impactful a Diagnostic is. The driver's exit
// code is nonzero iff at least one Diagnostic with SeverityError was
// produced.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Diagnostic is the output tuple "{ span, severity, message, notes[] }".
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Message  string
	Span     span.Span
	Notes    []string
}

// WithNote appends a note (a secondary explanatory line, e.g. the
// type-parser's "Tuple types begin with a hash #(...)" hint) and returns
// the updated Diagnostic so callers can chain it onto a constructor.
func (d Diagnostic) WithNote(note string) Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}

// IsError reports whether d should affect the driver's exit code.
func (d Diagnostic) IsError() bool {
	return d.Severity == SeverityError
}
