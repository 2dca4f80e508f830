/*
File    : spindle/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package parser implements a recursive-descent shell over a Pratt
expression/type/pattern engine for the Spindle language. It converts the
flat token stream produced by package lexer into an ast.Module tree,
collecting parse errors instead of panicking, into a single
[]ParseError accumulated on the Parser itself.
*/
package parser

import (
	"github.com/spindle-lang/spindle/ast"
	"github.com/spindle-lang/spindle/span"
	"github.com/spindle-lang/spindle/token"
)

// Parser holds the cursor and the dispatch table built once in New. It
// is not safe for concurrent use by multiple goroutines, but distinct
// Parser values share no state.
type Parser struct {
	view   *View
	errors []ParseError

	declFns map[token.Kind]declParseFn
}

type declParseFn func(vis ast.Visibility) ast.Declaration

// New constructs a Parser over an already-built View. Most callers want
// Parse instead; New is exposed so the expression parser can build a
// fresh Parser over a Sub-view when it descends into a string
// interpolation.
func New(view *View) *Parser {
	p := &Parser{view: view}
	p.declFns = map[token.Kind]declParseFn{
		token.KwImport:    func(vis ast.Visibility) ast.Declaration { return p.parseImport(vis) },
		token.KwLet:       func(vis ast.Visibility) ast.Declaration { return p.parseLet(vis) },
		token.KwExternal:  func(vis ast.Visibility) ast.Declaration { return p.parseExternal(vis) },
		token.KwFunc:      func(vis ast.Visibility) ast.Declaration { return p.parseFunc(vis) },
		token.KwType:      func(vis ast.Visibility) ast.Declaration { return p.parseTypeAlias(vis) },
		token.KwStruct:    func(vis ast.Visibility) ast.Declaration { return p.parseStruct(vis) },
		token.KwEnum:      func(vis ast.Visibility) ast.Declaration { return p.parseEnum(vis) },
		token.KwNamespace: func(vis ast.Visibility) ast.Declaration { return p.parseNamespace(vis) },
		token.KwInterface: func(vis ast.Visibility) ast.Declaration { return p.parseInterface(vis) },
		token.KwImpl:      func(ast.Visibility) ast.Declaration { return p.parseImpl() },
	}
	return p
}

// Parse consumes the token vector produced by lexer.Lex and returns the
// resulting Module alongside any accumulated ParseErrors.
func Parse(filename string, tokens []token.Spanned) (*ast.Module, []ParseError) {
	v := NewView(tokens, eoiSpan(tokens))
	p := New(v)
	mod := p.parseModule()
	return mod, p.errors
}

// eoiSpan reports the span the view should synthesize once exhausted:
// the trailing EOF token's own span, or a zero Span for an empty input.
func eoiSpan(tokens []token.Spanned) span.Span {
	if len(tokens) == 0 {
		return span.Span{}
	}
	return tokens[len(tokens)-1].Span
}

func (p *Parser) addError(e ParseError) {
	p.errors = append(p.errors, e)
}

// expect consumes the current token if it has kind k, else records a
// ParseError naming rule as context and returns the zero Token.
func (p *Parser) expect(k token.Kind, rule string) (token.Token, bool) {
	if t, ok := p.view.Match(k); ok {
		return t, true
	}
	got := p.view.Peek()
	p.addError(newError(got.Span, rule, "expected %s, found %s", k, got.Kind))
	return token.Token{}, false
}

// parseModule parses `declaration*` to end-of-input.
func (p *Parser) parseModule() *ast.Module {
	start := p.view.HereSpan()
	mod := &ast.Module{}
	for !p.view.AtEnd() {
		before := p.view.pos
		decl := p.parseDeclaration()
		if decl != nil {
			mod.Declarations = append(mod.Declarations, decl)
		}
		if p.view.pos == before {
			// No progress: resync by skipping the offending token so a
			// single bad declaration doesn't loop forever.
			p.view.Advance()
		}
	}
	mod.Span = span.Combine(start, p.view.HereSpan())
	return mod
}

// parseVisibility consumes an optional `public`/`internal`/`private`
// modifier.
func (p *Parser) parseVisibility() ast.Visibility {
	switch p.view.Peek().Kind {
	case token.KwPublic:
		p.view.Advance()
		return ast.VisibilityPublic
	case token.KwInternal:
		p.view.Advance()
		return ast.VisibilityInternal
	case token.KwPrivate:
		p.view.Advance()
		return ast.VisibilityPrivate
	default:
		return ast.VisibilityNone
	}
}

// parseDeclaration dispatches on the leading keyword after an optional
// visibility modifier.
func (p *Parser) parseDeclaration() ast.Declaration {
	vis := p.parseVisibility()
	fn, ok := p.declFns[p.view.Peek().Kind]
	if !ok {
		got := p.view.Peek()
		p.addError(newError(got.Span, "declaration", "expected a declaration, found %s", got.Kind))
		return nil
	}
	return fn(vis)
}

// parseIdentifier consumes an Ident token, recording a ParseError
// (without consuming) if the current token is not one.
func (p *Parser) parseIdentifier(rule string) ast.Identifier {
	t, ok := p.expect(token.Ident, rule)
	if !ok {
		return ast.Identifier{Span: p.view.HereSpan()}
	}
	return ast.Identifier{Name: t.Text, Span: t.Span}
}

// parseGenericParams consumes an optional `<A[: Constraint][= Default],
// ...>` parameter list.
func (p *Parser) parseGenericParams() []ast.GenericParam {
	if !p.view.Check(token.Lt) {
		return nil
	}
	p.view.Advance()
	var params []ast.GenericParam
	for !p.view.Check(token.Gt) && !p.view.AtEnd() {
		start := p.view.HereSpan()
		name := p.parseIdentifier("generic parameter")
		var constraint ast.Type
		if p.view.Check(token.Colon) {
			p.view.Advance()
			constraint = p.parseType()
		}
		var dflt ast.Type
		if p.view.Check(token.Eq) {
			p.view.Advance()
			dflt = p.parseType()
		}
		params = append(params, ast.GenericParam{Name: name, Constraint: constraint, Default: dflt, Span: span.Combine(start, p.view.HereSpan())})
		if !p.view.Check(token.Comma) {
			break
		}
		p.view.Advance()
	}
	p.expect(token.Gt, "generic parameter list")
	return params
}

// parseParams consumes a parenthesized `([...][mut] pattern[: Type][=
// default], ...)` parameter list; the opening `(` must already have been
// consumed by the caller. requireType controls whether the `: Type`
// annotation is mandatory (true for Func/ExternalFunc) or optional (false
// for a Closure). It returns the params alongside the closing `)` token,
// so callers that need the list's overall span don't have to re-derive it
// from the cursor's position after the fact.
func (p *Parser) parseParams(requireType bool) ([]ast.Param, token.Token) {
	var params []ast.Param
	for !p.view.Check(token.RParen) && !p.view.AtEnd() {
		start := p.view.HereSpan()
		spread := false
		if p.view.Check(token.DotDotDot) {
			p.view.Advance()
			spread = true
		}
		mutable := false
		if p.view.Check(token.KwMut) {
			p.view.Advance()
			mutable = true
		}
		name := p.parsePattern()
		var typ ast.Type
		if requireType {
			p.expect(token.Colon, "parameter")
			typ = p.parseType()
		} else if p.view.Check(token.Colon) {
			p.view.Advance()
			typ = p.parseType()
		}
		var dflt ast.Expression
		if p.view.Check(token.Eq) {
			p.view.Advance()
			dflt = p.parseExpr()
		}
		params = append(params, ast.Param{Mutable: mutable, Spread: spread, Name: name, Type: typ, Default: dflt, Span: span.Combine(start, p.view.HereSpan())})
		if !p.view.Check(token.Comma) {
			break
		}
		p.view.Advance()
	}
	closer, _ := p.expect(token.RParen, "parameter list")
	return params, closer
}
