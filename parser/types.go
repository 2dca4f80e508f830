/*
File    : spindle/parser/types.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/spindle-lang/spindle/ast"
	"github.com/spindle-lang/spindle/span"
	"github.com/spindle-lang/spindle/token"
)

// typeOperators is the type grammar's two-level ladder: postfix `is`/`!is` at precedence 2 (tightest), infix `+`
// (intersection) at precedence 1. The prefix `(T,...) ->` form is not a
// table entry: it is resolved at the atom level, in parseParenType,
// because recognizing it requires seeing past the matching `)` first.
var typeOperators = []operator[ast.Type]{
	{
		Precedence: 2,
		Postfix:    true,
		Match:      func(v *View) bool { return v.Check(token.KwIs) },
		Consume:    oneTokenConsume,
		Build: func(p *Parser, left ast.Type, opSpan span.Span, _ func() ast.Type) ast.Type {
			pat := p.parsePattern()
			return &ast.PatternType{Base: left, Pattern: pat, Span: span.Combine(spanOfType(left), spanOfPattern(pat))}
		},
	},
	{
		Precedence: 2,
		Postfix:    true,
		Match:      func(v *View) bool { return v.Check(token.BangIs) },
		Consume:    oneTokenConsume,
		Build: func(p *Parser, left ast.Type, opSpan span.Span, _ func() ast.Type) ast.Type {
			pat := p.parsePattern()
			return &ast.NotPatternType{Base: left, Pattern: pat, Span: span.Combine(spanOfType(left), spanOfPattern(pat))}
		},
	},
	{
		Precedence: 1,
		Match:      func(v *View) bool { return v.Check(token.Plus) },
		Consume:    oneTokenConsume,
		Build: func(p *Parser, left ast.Type, opSpan span.Span, rhs func() ast.Type) ast.Type {
			right := rhs()
			return &ast.IntersectionType{Left: left, Right: right, Span: span.Combine(spanOfType(left), spanOfType(right))}
		},
	},
}

func (p *Parser) parseType() ast.Type {
	return climb(p, 0, p.parseTypeAtom, typeOperators)
}

func (p *Parser) parseTypeAtom() ast.Type {
	start := p.view.HereSpan()
	t := p.view.Peek()
	switch t.Kind {
	case token.KwInt:
		p.view.Advance()
		return &ast.AtomicType{Kind: ast.AtomicInt, Span: t.Span}
	case token.KwFloat:
		p.view.Advance()
		return &ast.AtomicType{Kind: ast.AtomicFloat, Span: t.Span}
	case token.KwChar:
		p.view.Advance()
		return &ast.AtomicType{Kind: ast.AtomicChar, Span: t.Span}
	case token.KwString:
		p.view.Advance()
		return &ast.AtomicType{Kind: ast.AtomicString, Span: t.Span}
	case token.KwBoolean:
		p.view.Advance()
		return &ast.AtomicType{Kind: ast.AtomicBoolean, Span: t.Span}
	case token.KwVoid:
		p.view.Advance()
		return &ast.AtomicType{Kind: ast.AtomicVoid, Span: t.Span}
	case token.KwNever:
		p.view.Advance()
		return &ast.AtomicType{Kind: ast.AtomicNever, Span: t.Span}
	case token.KwSelf:
		p.view.Advance()
		return &ast.AtomicType{Kind: ast.AtomicSelf, Span: t.Span}
	case token.Underscore:
		p.view.Advance()
		return &ast.AtomicType{Kind: ast.AtomicInfer, Span: t.Span}
	case token.HashLBracket:
		return p.parseListType(start)
	case token.HashLBrace:
		return p.parseMapType(start)
	case token.HashLParen:
		return p.parseTupleType(start)
	case token.LParen:
		return p.parseParenType(start)
	case token.Ident:
		return p.parseReferenceType()
	default:
		p.addError(newError(t.Span, "type", "expected a type, found %s", t.Kind))
		p.view.Advance()
		return &ast.AtomicType{Kind: ast.AtomicInfer, Span: t.Span}
	}
}

func (p *Parser) parseListType(start span.Span) ast.Type {
	p.view.Advance() // #[
	elem := p.parseType()
	closer, _ := p.expect(token.RBracket, "list type")
	return &ast.ListType{Elem: elem, Span: span.Combine(start, closer.Span)}
}

func (p *Parser) parseMapType(start span.Span) ast.Type {
	p.view.Advance() // #{
	key := p.parseType()
	p.expect(token.Colon, "map type")
	val := p.parseType()
	closer, _ := p.expect(token.RBrace, "map type")
	return &ast.MapType{Key: key, Value: val, Span: span.Combine(start, closer.Span)}
}

func (p *Parser) parseTupleType(start span.Span) ast.Type {
	p.view.Advance() // #(
	elems := p.parseTypeList(token.RParen)
	closer, _ := p.expect(token.RParen, "tuple type")
	return &ast.TupleType{Elems: elems, Span: span.Combine(start, closer.Span)}
}

func (p *Parser) parseTypeList(closing token.Kind) []ast.Type {
	var elems []ast.Type
	for !p.view.Check(closing) && !p.view.AtEnd() {
		elems = append(elems, p.parseType())
		if !p.view.Check(token.Comma) {
			break
		}
		p.view.Advance()
	}
	return elems
}

// parseParenType disambiguates a function type `(T, ...) -> T` from a
// grouped type `(T)` by looking past the matching close paren for an
// arrow: no backtracking is needed because the
// distinguishing token comes strictly after the parenthesized list.
func (p *Parser) parseParenType(start span.Span) ast.Type {
	p.view.Advance() // (
	elems := p.parseTypeList(token.RParen)
	closer, _ := p.expect(token.RParen, "parenthesized type")
	if p.view.Check(token.Arrow) {
		p.view.Advance()
		ret := p.parseType()
		return &ast.FunctionType{Params: elems, Return: ret, Span: span.Combine(start, spanOfType(ret))}
	}
	if len(elems) == 1 {
		return &ast.GroupedType{Inner: elems[0], Span: span.Combine(start, closer.Span)}
	}
	sp := span.Combine(start, closer.Span)
	err := newError(sp, "parenthesized type", "a bare parenthesized type list must be followed by '->'")
	err.Notes = append(err.Notes, "Tuple types begin with a hash #(...)")
	p.addError(err)
	if len(elems) == 0 {
		return &ast.AtomicType{Kind: ast.AtomicInfer, Span: sp}
	}
	return &ast.GroupedType{Inner: elems[0], Span: sp}
}

func (p *Parser) parseReferenceType() ast.Type {
	start := p.view.HereSpan()
	name := p.parseIdentifier("type reference")
	end := name.Span
	var args []ast.Type
	if p.view.Check(token.Lt) {
		p.view.Advance()
		args = p.parseTypeList(token.Gt)
		closer, _ := p.expect(token.Gt, "type reference generic arguments")
		end = closer.Span
	}
	return &ast.ReferenceType{Name: name, GenericArgs: args, Span: span.Combine(start, end)}
}

// spanOfType recovers the Span of any ast.Type node, used to combine
// spans when building a composite type node.
func spanOfType(t ast.Type) span.Span {
	switch v := t.(type) {
	case *ast.AtomicType:
		return v.Span
	case *ast.ListType:
		return v.Span
	case *ast.TupleType:
		return v.Span
	case *ast.MapType:
		return v.Span
	case *ast.FunctionType:
		return v.Span
	case *ast.ReferenceType:
		return v.Span
	case *ast.IntersectionType:
		return v.Span
	case *ast.PatternType:
		return v.Span
	case *ast.NotPatternType:
		return v.Span
	case *ast.GroupedType:
		return v.Span
	default:
		return span.Span{}
	}
}
