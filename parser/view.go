/*
File    : spindle/parser/view.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/spindle-lang/spindle/span"
	"github.com/spindle-lang/spindle/token"
)

// View is a cursor over a token vector. NewView copies the Token values
// out of the Spanned slice it is given, so a View does not share that
// slice with the caller; Sub constructs a nested View over a
// composite token's inner vector so the same parser machinery can
// descend into a String or StringInterpolation token's Parts.
type View struct {
	tokens []token.Token
	pos    int
	eoi    span.Span
}

// NewView wraps a flat token stream such as lexer.Lex's output. eoi is
// the span reported once the view is exhausted; for a top-level program
// this is the trailing EOF token's own span.
func NewView(tokens []token.Spanned, eoi span.Span) *View {
	plain := make([]token.Token, len(tokens))
	for i, t := range tokens {
		plain[i] = t.Value
	}
	return &View{tokens: plain, eoi: eoi}
}

// Sub constructs a nested View over a composite token's inner Parts,
// used whenever the parser descends into a String or StringInterpolation
// token.
func (v *View) Sub(tok token.Token) *View {
	return NewView(tok.Parts, tok.Span)
}

// AtEnd reports whether the view has no more tokens to offer (the
// underlying slice either is exhausted or ends in an EOF token).
func (v *View) AtEnd() bool {
	return v.Peek().Kind == token.EOF
}

// Peek returns the current token without consuming it. Past the end of
// the slice it synthesizes an EOF token at the view's EOI span, so
// callers never need a separate bounds check.
func (v *View) Peek() token.Token {
	return v.PeekAt(0)
}

// PeekAt returns the token n positions ahead of the cursor, without
// consuming anything.
func (v *View) PeekAt(n int) token.Token {
	i := v.pos + n
	if i < 0 || i >= len(v.tokens) {
		return token.Token{Kind: token.EOF, Span: v.eoi}
	}
	return v.tokens[i]
}

// Advance consumes and returns the current token.
func (v *View) Advance() token.Token {
	t := v.Peek()
	if v.pos < len(v.tokens) {
		v.pos++
	}
	return t
}

// Check reports whether the current token has kind k, without consuming.
func (v *View) Check(k token.Kind) bool {
	return v.Peek().Kind == k
}

// Match consumes and returns the current token if it has kind k.
func (v *View) Match(k token.Kind) (token.Token, bool) {
	if v.Check(k) {
		return v.Advance(), true
	}
	return token.Token{}, false
}

// HereSpan returns a zero-width span positioned at the current token's
// start, used to anchor diagnostics that have no offending token of
// their own (for example "unexpected end of input").
func (v *View) HereSpan() span.Span {
	sp := v.Peek().Span
	sp.End = sp.Start
	return sp
}
