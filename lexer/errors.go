/*
File    : spindle/lexer/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"fmt"

	"github.com/spindle-lang/spindle/diag"
	"github.com/spindle-lang/spindle/span"
)

// ErrorKind classifies the kind of recoverable problem a LexError reports.
type ErrorKind int

const (
	ErrUnrecognizedChar ErrorKind = iota
	ErrUnterminatedChar
	ErrUnterminatedString
	ErrUnterminatedBlockComment
	ErrInvalidUnicodeEscape
	ErrEmptyCharLiteral
	ErrMultiCharLiteral
	ErrIntegerFollowedByIdent
	ErrStrayBlockCommentClose
)

// LexError is a single recovered or fatal lexical error, carrying enough
// context for diag.Diagnostic conversion. The lexer never stops on an
// error except for ErrUnterminatedString/ErrUnterminatedChar/
// ErrUnterminatedBlockComment, which end tokenization of the literal in
// progress.
type LexError struct {
	Kind    ErrorKind
	Message string
	Span    span.Span
}

func (e LexError) Error() string {
	return fmt.Sprintf("%s: %s", e.Span, e.Message)
}

// ToDiagnostic converts a LexError into the diag.Diagnostic shape the CLI
// driver and any other external renderer consume.
func (e LexError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageLexer,
		Severity: diag.SeverityError,
		Message:  e.Message,
		Span:     e.Span,
	}
}

func newError(kind ErrorKind, sp span.Span, format string, args ...any) LexError {
	return LexError{Kind: kind, Span: sp, Message: fmt.Sprintf(format, args...)}
}
