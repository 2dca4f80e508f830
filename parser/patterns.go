/*
File    : spindle/parser/patterns.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/spindle-lang/spindle/ast"
	"github.com/spindle-lang/spindle/span"
	"github.com/spindle-lang/spindle/token"
)

// patternOperators is the pattern grammar's two-level ladder: postfix
// `as Ident` at precedence 2, infix `|` (union) at precedence 1,
// left-associative.
var patternOperators = []operator[ast.Pattern]{
	{
		Precedence: 2,
		Postfix:    true,
		Match:      func(v *View) bool { return v.Check(token.KwAs) },
		Consume:    oneTokenConsume,
		Build: func(p *Parser, left ast.Pattern, opSpan span.Span, _ func() ast.Pattern) ast.Pattern {
			name := p.parseIdentifier("binding pattern")
			return &ast.BindingPattern{Name: name, Inner: left, Span: span.Combine(spanOfPattern(left), name.Span)}
		},
	},
	{
		Precedence: 1,
		Match:      func(v *View) bool { return v.Check(token.Pipe) },
		Consume:    oneTokenConsume,
		Build: func(p *Parser, left ast.Pattern, opSpan span.Span, rhs func() ast.Pattern) ast.Pattern {
			right := rhs()
			return &ast.UnionPattern{Left: left, Right: right, Span: span.Combine(spanOfPattern(left), spanOfPattern(right))}
		},
	},
}

func (p *Parser) parsePattern() ast.Pattern {
	return climb(p, 0, p.parsePatternAtom, patternOperators)
}

// parsePatternAtom tries range patterns first, as a leading literal may
// turn out to be a range bound rather than a bare literal.
func (p *Parser) parsePatternAtom() ast.Pattern {
	start := p.view.HereSpan()
	if p.view.Check(token.DotDotEq) {
		p.view.Advance()
		high := p.parseRangeBoundLiteral()
		return &ast.RangePattern{Kind: ast.RangePatternInclusiveMax, High: high, Span: span.Combine(start, spanOfPattern(high))}
	}
	switch p.view.Peek().Kind {
	case token.Underscore:
		t := p.view.Advance()
		return &ast.PlaceholderPattern{Span: t.Span}
	case token.KwTrue:
		t := p.view.Advance()
		return &ast.BooleanLiteralPattern{Value: true, Span: t.Span}
	case token.KwFalse:
		t := p.view.Advance()
		return &ast.BooleanLiteralPattern{Value: false, Span: t.Span}
	case token.Char, token.CharEscape:
		return p.parseCharOrRangePattern()
	case token.String:
		return p.parseStringPattern()
	case token.HashLBracket:
		return p.parseListPattern()
	case token.HashLParen:
		return p.parseTuplePattern()
	case token.HashLBrace:
		return p.parseMapPattern()
	case token.LParen:
		return p.parseGroupedPattern()
	case token.Minus, token.BinaryInt, token.OctalInt, token.HexInt, token.DecimalInt, token.Float:
		return p.parseNumericOrRangePattern()
	case token.Ident:
		return p.parseStructPattern()
	default:
		t := p.view.Peek()
		p.addError(newError(t.Span, "pattern", "expected a pattern, found %s", t.Kind))
		p.view.Advance()
		return &ast.PlaceholderPattern{Span: t.Span}
	}
}

func (p *Parser) parseNumericOrRangePattern() ast.Pattern {
	low := p.parseSignedNumericLiteralPattern()
	switch p.view.Peek().Kind {
	case token.DotDotEq:
		p.view.Advance()
		high := p.parseRangeBoundLiteral()
		return &ast.RangePattern{Kind: ast.RangePatternInclusiveBoth, Low: low, High: high, Span: span.Combine(spanOfPattern(low), spanOfPattern(high))}
	case token.DotDot:
		dots := p.view.Advance()
		if p.canStartRangeBound() {
			high := p.parseRangeBoundLiteral()
			return &ast.RangePattern{Kind: ast.RangePatternExclusiveBoth, Low: low, High: high, Span: span.Combine(spanOfPattern(low), spanOfPattern(high))}
		}
		return &ast.RangePattern{Kind: ast.RangePatternExclusiveMin, Low: low, Span: span.Combine(spanOfPattern(low), dots.Span)}
	default:
		return low
	}
}

// parseCharOrRangePattern mirrors parseNumericOrRangePattern: a leading
// char literal may turn out to be a range bound rather than a bare
// literal pattern.
func (p *Parser) parseCharOrRangePattern() ast.Pattern {
	low := p.parseCharPattern()
	switch p.view.Peek().Kind {
	case token.DotDotEq:
		p.view.Advance()
		high := p.parseRangeBoundLiteral()
		return &ast.RangePattern{Kind: ast.RangePatternInclusiveBoth, Low: low, High: high, Span: span.Combine(spanOfPattern(low), spanOfPattern(high))}
	case token.DotDot:
		dots := p.view.Advance()
		if p.canStartRangeBound() {
			high := p.parseRangeBoundLiteral()
			return &ast.RangePattern{Kind: ast.RangePatternExclusiveBoth, Low: low, High: high, Span: span.Combine(spanOfPattern(low), spanOfPattern(high))}
		}
		return &ast.RangePattern{Kind: ast.RangePatternExclusiveMin, Low: low, Span: span.Combine(spanOfPattern(low), dots.Span)}
	default:
		return low
	}
}

func (p *Parser) canStartRangeBound() bool {
	switch p.view.Peek().Kind {
	case token.Minus, token.BinaryInt, token.OctalInt, token.HexInt, token.DecimalInt, token.Float, token.Char, token.CharEscape:
		return true
	default:
		return false
	}
}

func (p *Parser) parseRangeBoundLiteral() ast.Pattern {
	if p.view.Check(token.Char) || p.view.Check(token.CharEscape) {
		return p.parseCharPattern()
	}
	return p.parseSignedNumericLiteralPattern()
}

// parseSignedNumericLiteralPattern handles the `-` prefix permitted only
// on numeric literal patterns.
func (p *Parser) parseSignedNumericLiteralPattern() ast.Pattern {
	start := p.view.HereSpan()
	neg := false
	if p.view.Check(token.Minus) {
		p.view.Advance()
		neg = true
	}
	t := p.view.Peek()
	switch t.Kind {
	case token.BinaryInt, token.OctalInt, token.HexInt, token.DecimalInt:
		p.view.Advance()
		return &ast.IntLiteralPattern{Negative: neg, Value: t.IntValue, Span: span.Combine(start, t.Span)}
	case token.Float:
		p.view.Advance()
		return &ast.FloatLiteralPattern{Negative: neg, Value: t.FloatValue, Span: span.Combine(start, t.Span)}
	default:
		p.addError(newError(t.Span, "numeric literal pattern", "expected an integer or float literal, found %s", t.Kind))
		return &ast.IntLiteralPattern{Span: t.Span}
	}
}

func (p *Parser) parseCharPattern() ast.Pattern {
	t := p.view.Advance()
	return &ast.CharLiteralPattern{Value: t.Rune, Span: t.Span}
}

// parseStringPattern rejects any StringInterpolation part with a
// diagnostic instead of constructing it.
func (p *Parser) parseStringPattern() ast.Pattern {
	t := p.view.Advance()
	var parts []ast.StringPatternPart
	for _, part := range t.Parts {
		switch part.Value.Kind {
		case token.StringChar:
			parts = append(parts, &ast.StringPatternChar{Value: part.Value.Rune, Span: part.Span})
		case token.StringEscape:
			parts = append(parts, &ast.StringPatternEscape{Kind: part.Value.EscapeKind, Value: part.Value.Rune, Span: part.Span})
		case token.StringInterpolation:
			p.addError(newError(part.Span, "string pattern", "string interpolation is not allowed in a pattern"))
		}
	}
	return &ast.StringLiteralPattern{Parts: parts, Span: t.Span}
}

// parseSequenceElems parses the shared `item | ...rest[name] , ...` body
// of a ListPattern or TuplePattern.
func (p *Parser) parseSequenceElems(closing token.Kind) []ast.SequenceElem {
	var elems []ast.SequenceElem
	for !p.view.Check(closing) && !p.view.AtEnd() {
		start := p.view.HereSpan()
		if p.view.Check(token.DotDotDot) {
			dots := p.view.Advance()
			end := dots.Span
			var name *ast.Identifier
			if p.view.Check(token.Ident) {
				id := p.parseIdentifier("spread capture name")
				name = &id
				end = id.Span
			}
			elems = append(elems, ast.SequenceElem{Kind: ast.SeqSpread, Name: name, Span: span.Combine(start, end)})
		} else {
			pat := p.parsePattern()
			elems = append(elems, ast.SequenceElem{Kind: ast.SeqItem, Pattern: pat, Span: spanOfPattern(pat)})
		}
		if !p.view.Check(token.Comma) {
			break
		}
		p.view.Advance()
	}
	return elems
}

func (p *Parser) parseListPattern() ast.Pattern {
	start := p.view.HereSpan()
	p.view.Advance() // #[
	elems := p.parseSequenceElems(token.RBracket)
	closer, _ := p.expect(token.RBracket, "list pattern")
	return &ast.ListPattern{Elems: elems, Span: span.Combine(start, closer.Span)}
}

func (p *Parser) parseTuplePattern() ast.Pattern {
	start := p.view.HereSpan()
	p.view.Advance() // #(
	elems := p.parseSequenceElems(token.RParen)
	closer, _ := p.expect(token.RParen, "tuple pattern")
	return &ast.TuplePattern{Elems: elems, Span: span.Combine(start, closer.Span)}
}

func (p *Parser) parseMapPattern() ast.Pattern {
	start := p.view.HereSpan()
	p.view.Advance() // #{
	var entries []ast.MapPatternEntry
	for !p.view.Check(token.RBrace) && !p.view.AtEnd() {
		estart := p.view.HereSpan()
		if p.view.Check(token.DotDotDot) {
			dots := p.view.Advance()
			end := dots.Span
			var name *ast.Identifier
			if p.view.Check(token.Ident) {
				id := p.parseIdentifier("spread capture name")
				name = &id
				end = id.Span
			}
			entries = append(entries, ast.MapPatternEntry{Kind: ast.MapEntryRest, Name: name, Span: span.Combine(estart, end)})
		} else {
			key := p.parsePattern()
			p.expect(token.Colon, "map pattern entry")
			val := p.parsePattern()
			entries = append(entries, ast.MapPatternEntry{Kind: ast.MapEntryItem, Key: key, Value: val, Span: span.Combine(estart, spanOfPattern(val))})
		}
		if !p.view.Check(token.Comma) {
			break
		}
		p.view.Advance()
	}
	closer, _ := p.expect(token.RBrace, "map pattern")
	return &ast.MapPattern{Entries: entries, Span: span.Combine(start, closer.Span)}
}

func (p *Parser) parseGroupedPattern() ast.Pattern {
	start := p.view.HereSpan()
	p.view.Advance() // (
	inner := p.parsePattern()
	closer, _ := p.expect(token.RParen, "grouped pattern")
	return &ast.GroupedPattern{Inner: inner, Span: span.Combine(start, closer.Span)}
}

// parseStructPattern is `Name[(fields...)]`; fields
// may be a shorthand name, a `name = pattern` value, or a `...` rest.
func (p *Parser) parseStructPattern() ast.Pattern {
	start := p.view.HereSpan()
	name := p.parseIdentifier("struct pattern")
	end := name.Span
	var fields []ast.StructPatternField
	if p.view.Check(token.LParen) {
		p.view.Advance()
		for !p.view.Check(token.RParen) && !p.view.AtEnd() {
			fstart := p.view.HereSpan()
			if p.view.Check(token.DotDotDot) {
				dots := p.view.Advance()
				fields = append(fields, ast.StructPatternField{Kind: ast.FieldRest, Span: span.Combine(fstart, dots.Span)})
			} else {
				fname := p.parseIdentifier("struct pattern field")
				if p.view.Check(token.Eq) {
					p.view.Advance()
					pat := p.parsePattern()
					fields = append(fields, ast.StructPatternField{Kind: ast.FieldValue, Name: fname, Pattern: pat, Span: span.Combine(fstart, spanOfPattern(pat))})
				} else {
					fields = append(fields, ast.StructPatternField{Kind: ast.FieldNamed, Name: fname, Span: fname.Span})
				}
			}
			if !p.view.Check(token.Comma) {
				break
			}
			p.view.Advance()
		}
		closer, _ := p.expect(token.RParen, "struct pattern field list")
		end = closer.Span
	}
	return &ast.StructPattern{Name: name, Fields: fields, Span: span.Combine(start, end)}
}

// spanOfPattern recovers the Span of any ast.Pattern node.
func spanOfPattern(pat ast.Pattern) span.Span {
	switch v := pat.(type) {
	case *ast.IntLiteralPattern:
		return v.Span
	case *ast.FloatLiteralPattern:
		return v.Span
	case *ast.CharLiteralPattern:
		return v.Span
	case *ast.StringLiteralPattern:
		return v.Span
	case *ast.BooleanLiteralPattern:
		return v.Span
	case *ast.PlaceholderPattern:
		return v.Span
	case *ast.ListPattern:
		return v.Span
	case *ast.TuplePattern:
		return v.Span
	case *ast.MapPattern:
		return v.Span
	case *ast.StructPattern:
		return v.Span
	case *ast.RangePattern:
		return v.Span
	case *ast.BindingPattern:
		return v.Span
	case *ast.UnionPattern:
		return v.Span
	case *ast.GroupedPattern:
		return v.Span
	default:
		return span.Span{}
	}
}
