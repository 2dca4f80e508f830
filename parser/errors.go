/*
File    : spindle/parser/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/spindle-lang/spindle/diag"
	"github.com/spindle-lang/spindle/span"
)

// ParseError is a single parse failure, mirroring lexer.LexError's shape
// so both stages feed diag.Diagnostic the same way. Rule names the
// grammar production being attempted when the error was raised, so a
// diagnostic carries the offending token's span alongside that context.
type ParseError struct {
	Message string
	Rule    string
	Span    span.Span
	Notes   []string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Span, e.Message)
}

// ToDiagnostic converts a ParseError into the diag.Diagnostic shape the
// CLI driver consumes.
func (e ParseError) ToDiagnostic() diag.Diagnostic {
	d := diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: diag.SeverityError,
		Message:  e.Message,
		Span:     e.Span,
	}
	if e.Rule != "" {
		d = d.WithNote(fmt.Sprintf("while parsing %s", e.Rule))
	}
	for _, n := range e.Notes {
		d = d.WithNote(n)
	}
	return d
}

func newError(sp span.Span, rule string, format string, args ...any) ParseError {
	return ParseError{Span: sp, Rule: rule, Message: fmt.Sprintf(format, args...)}
}
