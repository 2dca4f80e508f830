/*
File    : spindle/parser/expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Implements the expression Pratt table: the ~20-level
precedence ladder is data, not a chain of mutually recursive parseX()
functions, driven by the climb engine in precedence.go.
*/
package parser

import (
	"github.com/spindle-lang/spindle/ast"
	"github.com/spindle-lang/spindle/span"
	"github.com/spindle-lang/spindle/token"
)

// Precedence levels, loosest to tightest.
const (
	precAssignment = iota
	precPipeline
	precBoolOr
	precBoolAnd
	precEquality
	precComparison
	precIn
	precUnwrap
	precBitOr
	precBitXor
	precBitAnd
	precBitShift
	precRange
	precAddition
	precMultiplication
	precPower
	precIs
	precAs
	precUnary
	precIndexAccess
	precMemberAccess
	precFuncCall
)

func noConsume(*View) span.Span { return span.Span{} }

func binaryOp(tok token.Kind, prec int, rightAssoc bool, kind ast.BinaryOpKind) operator[ast.Expression] {
	return operator[ast.Expression]{
		Precedence: prec,
		RightAssoc: rightAssoc,
		Match:      func(v *View) bool { return v.Check(tok) },
		Consume:    oneTokenConsume,
		Build: func(p *Parser, left ast.Expression, _ span.Span, rhs func() ast.Expression) ast.Expression {
			right := rhs()
			return &ast.BinaryOpExpr{Op: kind, Left: left, Right: right, Span: span.Combine(spanOfExpr(left), spanOfExpr(right))}
		},
	}
}

// contiguousShiftOp matches two adjacent same-kind tokens with no gap
// between their spans.
func contiguousShiftOp(tok token.Kind, kind ast.BinaryOpKind) operator[ast.Expression] {
	return operator[ast.Expression]{
		Precedence: precBitShift,
		Match: func(v *View) bool {
			a, b := v.Peek(), v.PeekAt(1)
			return a.Kind == tok && b.Kind == tok && a.Span.End == b.Span.Start
		},
		Consume: func(v *View) span.Span {
			a := v.Advance()
			b := v.Advance()
			return span.Combine(a.Span, b.Span)
		},
		Build: func(p *Parser, left ast.Expression, _ span.Span, rhs func() ast.Expression) ast.Expression {
			right := rhs()
			return &ast.BinaryOpExpr{Op: kind, Left: left, Right: right, Span: span.Combine(spanOfExpr(left), spanOfExpr(right))}
		},
	}
}

type assignSpec struct {
	tok token.Kind
	op  ast.AssignOpKind
}

var assignSpecs = []assignSpec{
	{token.Eq, ast.AssignPlain}, {token.PlusEq, ast.AssignAdd}, {token.MinusEq, ast.AssignSub},
	{token.StarEq, ast.AssignMul}, {token.SlashEq, ast.AssignDiv}, {token.PercentEq, ast.AssignMod},
	{token.StarStarEq, ast.AssignPow}, {token.LtLtEq, ast.AssignShl}, {token.GtGtEq, ast.AssignShr},
	{token.AmpEq, ast.AssignBitAnd}, {token.CaretEq, ast.AssignBitXor}, {token.PipeEq, ast.AssignBitOr},
	{token.TildeEq, ast.AssignBitNot}, {token.AmpAmpEq, ast.AssignBoolAnd}, {token.PipePipeEq, ast.AssignBoolOr},
}

func assignOp(spec assignSpec) operator[ast.Expression] {
	return operator[ast.Expression]{
		Precedence: precAssignment,
		RightAssoc: true,
		Match:      func(v *View) bool { return v.Check(spec.tok) },
		Consume:    oneTokenConsume,
		Build: func(p *Parser, left ast.Expression, _ span.Span, rhs func() ast.Expression) ast.Expression {
			right := rhs()
			return &ast.AssignOpExpr{Op: spec.op, Target: left, Value: right, Span: span.Combine(spanOfExpr(left), spanOfExpr(right))}
		},
	}
}

// looksLikeCallGenericArgs reports whether the tokens starting at the
// view's cursor look like `<...>(` - a bounded scan for a balanced angle
// bracket group immediately followed by '(', used to disambiguate a
// generic call (`foo<T>(x)`) from the Comparison operator `<`. This
// heuristic covers the common case rather than resolving the ambiguity
// generally.
func looksLikeCallGenericArgs(v *View) bool {
	if v.Peek().Kind != token.Lt {
		return false
	}
	depth := 0
	for i := 0; i < 64; i++ {
		switch v.PeekAt(i).Kind {
		case token.Lt:
			depth++
		case token.Gt:
			depth--
			if depth == 0 {
				return v.PeekAt(i + 1).Kind == token.LParen
			}
		case token.EOF:
			return false
		}
	}
	return false
}

var exprOperators = buildExprOperators()

func buildExprOperators() []operator[ast.Expression] {
	var ops []operator[ast.Expression]
	for _, spec := range assignSpecs {
		ops = append(ops, assignOp(spec))
	}
	ops = append(ops,
		binaryOp(token.PipeGt, precPipeline, true, ast.BinPipeline),
		binaryOp(token.PipePipe, precBoolOr, false, ast.BinBoolOr),
		binaryOp(token.AmpAmp, precBoolAnd, false, ast.BinBoolAnd),
		binaryOp(token.EqEq, precEquality, false, ast.BinEq),
		binaryOp(token.BangEq, precEquality, false, ast.BinNotEq),
		contiguousShiftOp(token.Lt, ast.BinShl),
		contiguousShiftOp(token.Gt, ast.BinShr),
		funcCallOperator(),
		binaryOp(token.LtEq, precComparison, false, ast.BinLtEq),
		binaryOp(token.GtEq, precComparison, false, ast.BinGtEq),
		binaryOp(token.Lt, precComparison, false, ast.BinLt),
		binaryOp(token.Gt, precComparison, false, ast.BinGt),
		binaryOp(token.KwIn, precIn, false, ast.BinIn),
		binaryOp(token.BangIn, precIn, false, ast.BinNotIn),
		binaryOp(token.QuestionQuestion, precUnwrap, false, ast.BinCoalesce),
		binaryOp(token.Pipe, precBitOr, false, ast.BinBitOr),
		binaryOp(token.Caret, precBitXor, false, ast.BinBitXor),
		binaryOp(token.Amp, precBitAnd, false, ast.BinBitAnd),
		rangeOperator(),
		binaryOp(token.Plus, precAddition, false, ast.BinAdd),
		binaryOp(token.Minus, precAddition, false, ast.BinSub),
		binaryOp(token.Star, precMultiplication, false, ast.BinMul),
		binaryOp(token.Slash, precMultiplication, false, ast.BinDiv),
		binaryOp(token.Percent, precMultiplication, false, ast.BinMod),
		binaryOp(token.StarStar, precPower, true, ast.BinPow),
		isOperator(token.KwIs, ast.PatternOpIs),
		isOperator(token.BangIs, ast.PatternOpNotIs),
		asOperator(),
		unwrapPostfixOperator(),
		indexAccessOperator(),
		memberAccessOperator(),
	)
	return ops
}

func isOperator(tok token.Kind, kind ast.PatternOpKind) operator[ast.Expression] {
	return operator[ast.Expression]{
		Precedence: precIs,
		Postfix:    true,
		Match:      func(v *View) bool { return v.Check(tok) },
		Consume:    oneTokenConsume,
		Build: func(p *Parser, left ast.Expression, _ span.Span, _ func() ast.Expression) ast.Expression {
			pat := p.parsePattern()
			return &ast.PatternOpExpr{Op: kind, Operand: left, Pattern: pat, Span: span.Combine(spanOfExpr(left), spanOfPattern(pat))}
		},
	}
}

func asOperator() operator[ast.Expression] {
	return operator[ast.Expression]{
		Precedence: precAs,
		Postfix:    true,
		Match:      func(v *View) bool { return v.Check(token.KwAs) },
		Consume:    oneTokenConsume,
		Build: func(p *Parser, left ast.Expression, _ span.Span, _ func() ast.Expression) ast.Expression {
			typ := p.parseType()
			return &ast.TypeOpExpr{Operand: left, Type: typ, Span: span.Combine(spanOfExpr(left), spanOfType(typ))}
		},
	}
}

func unwrapPostfixOperator() operator[ast.Expression] {
	return operator[ast.Expression]{
		Precedence: precUnary,
		Postfix:    true,
		Match:      func(v *View) bool { return v.Check(token.Question) },
		Consume:    oneTokenConsume,
		Build: func(p *Parser, left ast.Expression, opSpan span.Span, _ func() ast.Expression) ast.Expression {
			return &ast.PostfixOpExpr{Operand: left, Span: span.Combine(spanOfExpr(left), opSpan)}
		},
	}
}

func indexAccessOperator() operator[ast.Expression] {
	return operator[ast.Expression]{
		Precedence: precIndexAccess,
		Postfix:    true,
		Match: func(v *View) bool {
			return v.Check(token.LBracket) || (v.Check(token.QuestionDot) && v.PeekAt(1).Kind == token.LBracket)
		},
		Consume: noConsume,
		Build: func(p *Parser, left ast.Expression, _ span.Span, _ func() ast.Expression) ast.Expression {
			optional := false
			if p.view.Check(token.QuestionDot) {
				optional = true
				p.view.Advance()
			}
			p.view.Advance() // [
			idx := p.parseExpr()
			closer, _ := p.expect(token.RBracket, "index access")
			return &ast.IndexAccessExpr{Parent: left, Index: idx, Optional: optional, Span: span.Combine(spanOfExpr(left), closer.Span)}
		},
	}
}

func memberAccessOperator() operator[ast.Expression] {
	return operator[ast.Expression]{
		Precedence: precMemberAccess,
		Postfix:    true,
		Match:      func(v *View) bool { return v.Check(token.Dot) || v.Check(token.QuestionDot) },
		Consume:    noConsume,
		Build: func(p *Parser, left ast.Expression, _ span.Span, _ func() ast.Expression) ast.Expression {
			optional := p.view.Check(token.QuestionDot)
			p.view.Advance() // . or ?.
			name := p.parseIdentifier("member access")
			return &ast.MemberAccessExpr{Parent: left, Name: name, Optional: optional, Span: span.Combine(spanOfExpr(left), name.Span)}
		},
	}
}

func funcCallOperator() operator[ast.Expression] {
	return operator[ast.Expression]{
		Precedence: precFuncCall,
		Postfix:    true,
		Match: func(v *View) bool {
			return v.Check(token.LParen) || looksLikeCallGenericArgs(v)
		},
		Consume: noConsume,
		Build: func(p *Parser, left ast.Expression, _ span.Span, _ func() ast.Expression) ast.Expression {
			var generics []ast.GenericArg
			if p.view.Check(token.Lt) {
				generics = p.parseCallGenericArgs()
			}
			p.expect(token.LParen, "call arguments")
			args, closer := p.parseCallArgs()
			return &ast.CallExpr{Func: left, GenericArgs: generics, Args: args, Span: span.Combine(spanOfExpr(left), closer.Span)}
		},
	}
}

// rangeOperator handles the infix/postfix range forms `a..b`, `a..`,
// `a..=b`; the prefix forms `..b`/`..=b` are parsed at
// the atom level in parseExprAtom since they never follow a left operand.
func rangeOperator() operator[ast.Expression] {
	return operator[ast.Expression]{
		Precedence: precRange,
		Match:      func(v *View) bool { return v.Check(token.DotDot) || v.Check(token.DotDotEq) },
		Consume:    noConsume,
		Build: func(p *Parser, left ast.Expression, _ span.Span, rhs func() ast.Expression) ast.Expression {
			inclusive := p.view.Check(token.DotDotEq)
			opTok := p.view.Advance()
			if p.canStartExprAtom() {
				high := rhs()
				kind := ast.RangeExprExclusiveBoth
				if inclusive {
					kind = ast.RangeExprInclusiveBoth
				}
				return &ast.RangeExpr{Kind: kind, Low: left, High: high, Span: span.Combine(spanOfExpr(left), spanOfExpr(high))}
			}
			if inclusive {
				p.addError(newError(opTok.Span, "range expression", "'..=' requires an upper bound"))
			}
			return &ast.RangeExpr{Kind: ast.RangeExprExclusiveMin, Low: left, Span: span.Combine(spanOfExpr(left), opTok.Span)}
		},
	}
}

func (p *Parser) parseExpr() ast.Expression {
	return climb(p, precAssignment, p.parseExprAtom, exprOperators)
}

// canStartExprAtom reports whether the current token can begin an
// expression, used to decide whether a range's high bound or a bare
// return/break carries a following operand.
func (p *Parser) canStartExprAtom() bool {
	switch p.view.Peek().Kind {
	case token.Ident, token.Underscore, token.KwThis, token.KwFunc,
		token.BinaryInt, token.OctalInt, token.HexInt, token.DecimalInt, token.Float,
		token.Char, token.CharEscape, token.String, token.KwTrue, token.KwFalse,
		token.LParen, token.HashLBracket, token.HashLParen, token.HashLBrace, token.LBrace,
		token.KwIf, token.KwWhile, token.KwFor, token.KwMatch,
		token.KwReturn, token.KwBreak, token.KwContinue,
		token.Minus, token.Bang, token.Tilde, token.DotDot, token.DotDotEq:
		return true
	default:
		return false
	}
}

func (p *Parser) parseOptionalLabel() *ast.Identifier {
	if !p.view.Check(token.At) {
		return nil
	}
	p.view.Advance()
	id := p.parseIdentifier("label")
	return &id
}

func (p *Parser) parseExprAtom() ast.Expression {
	start := p.view.HereSpan()
	t := p.view.Peek()
	switch t.Kind {
	case token.BinaryInt, token.OctalInt, token.HexInt, token.DecimalInt:
		p.view.Advance()
		return &ast.IntLiteral{Value: t.IntValue, Span: t.Span}
	case token.Float:
		p.view.Advance()
		return &ast.FloatLiteral{Value: t.FloatValue, Bits: t.FloatBits, Span: t.Span}
	case token.Char, token.CharEscape:
		p.view.Advance()
		return &ast.CharLiteral{Value: t.Rune, Span: t.Span}
	case token.KwTrue:
		p.view.Advance()
		return &ast.BoolLiteral{Value: true, Span: t.Span}
	case token.KwFalse:
		p.view.Advance()
		return &ast.BoolLiteral{Value: false, Span: t.Span}
	case token.String:
		return p.parseStringExpr()
	case token.Underscore:
		p.view.Advance()
		return &ast.PlaceholderExpr{Span: t.Span}
	case token.KwThis:
		p.view.Advance()
		return &ast.ThisExpr{Span: t.Span}
	case token.Ident:
		if p.view.PeekAt(1).Kind == token.At {
			return p.parseLabeledBlock()
		}
		id := p.parseIdentifier("identifier")
		return &ast.Reference{Name: id, Span: id.Span}
	case token.LBrace:
		return p.parseBlockBody(start, nil)
	case token.HashLBracket:
		return p.parseListExpr()
	case token.HashLParen:
		return p.parseTupleExpr()
	case token.HashLBrace:
		return p.parseMapExpr()
	case token.LParen:
		return p.parseGroupedExpr()
	case token.KwFunc:
		return p.parseClosureExpr()
	case token.KwIf:
		return p.parseIfExpr()
	case token.KwWhile:
		return p.parseWhileExpr()
	case token.KwFor:
		return p.parseForExpr()
	case token.KwMatch:
		return p.parseMatchExpr()
	case token.KwReturn:
		return p.parseReturnExpr()
	case token.KwBreak:
		return p.parseBreakExpr()
	case token.KwContinue:
		return p.parseContinueExpr()
	case token.Minus:
		p.view.Advance()
		operand := climb(p, precUnary, p.parseExprAtom, exprOperators)
		return &ast.PrefixOpExpr{Op: ast.PrefixNeg, Operand: operand, Span: span.Combine(start, spanOfExpr(operand))}
	case token.Bang:
		p.view.Advance()
		operand := climb(p, precUnary, p.parseExprAtom, exprOperators)
		return &ast.PrefixOpExpr{Op: ast.PrefixNot, Operand: operand, Span: span.Combine(start, spanOfExpr(operand))}
	case token.Tilde:
		p.view.Advance()
		operand := climb(p, precUnary, p.parseExprAtom, exprOperators)
		return &ast.PrefixOpExpr{Op: ast.PrefixBitNot, Operand: operand, Span: span.Combine(start, spanOfExpr(operand))}
	case token.DotDot:
		p.view.Advance()
		high := climb(p, precAddition, p.parseExprAtom, exprOperators)
		return &ast.RangeExpr{Kind: ast.RangeExprTo, High: high, Span: span.Combine(start, spanOfExpr(high))}
	case token.DotDotEq:
		p.view.Advance()
		high := climb(p, precAddition, p.parseExprAtom, exprOperators)
		return &ast.RangeExpr{Kind: ast.RangeExprInclusiveMax, High: high, Span: span.Combine(start, spanOfExpr(high))}
	default:
		p.addError(newError(t.Span, "expression", "expected an expression, found %s", t.Kind))
		p.view.Advance()
		return &ast.PlaceholderExpr{Span: t.Span}
	}
}

func (p *Parser) parseLabeledBlock() ast.Expression {
	start := p.view.HereSpan()
	label := p.parseIdentifier("block label")
	p.expect(token.At, "block label")
	return p.parseBlockBody(start, &label)
}

func (p *Parser) parseBlockBody(start span.Span, label *ast.Identifier) ast.Expression {
	p.expect(token.LBrace, "block")
	var stmts []ast.Statement
	for !p.view.Check(token.RBrace) && !p.view.AtEnd() {
		before := p.view.pos
		stmts = append(stmts, p.parseStatement())
		if p.view.pos == before {
			p.view.Advance()
		}
	}
	closer, _ := p.expect(token.RBrace, "block")
	return &ast.BlockExpr{Label: label, Statements: stmts, Span: span.Combine(start, closer.Span)}
}

func (p *Parser) parseStatement() ast.Statement {
	start := p.view.HereSpan()
	if p.view.Check(token.KwLet) {
		p.view.Advance()
		mutable := false
		if p.view.Check(token.KwMut) {
			p.view.Advance()
			mutable = true
		}
		pat := p.parsePattern()
		var typ ast.Type
		if p.view.Check(token.Colon) {
			p.view.Advance()
			typ = p.parseType()
		}
		p.expect(token.Eq, "let statement")
		val := p.parseExpr()
		return &ast.LetStatement{Mutable: mutable, Pattern: pat, Type: typ, Value: val, Span: span.Combine(start, spanOfExpr(val))}
	}
	val := p.parseExpr()
	return &ast.ExprStatement{Value: val, Span: spanOfExpr(val)}
}

func (p *Parser) parseListExpr() ast.Expression {
	start := p.view.HereSpan()
	p.view.Advance() // #[
	elems := p.parseSeqExprElems(token.RBracket)
	closer, _ := p.expect(token.RBracket, "list literal")
	return &ast.ListExpr{Elems: elems, Span: span.Combine(start, closer.Span)}
}

func (p *Parser) parseTupleExpr() ast.Expression {
	start := p.view.HereSpan()
	p.view.Advance() // #(
	elems := p.parseSeqExprElems(token.RParen)
	closer, _ := p.expect(token.RParen, "tuple literal")
	return &ast.TupleExpr{Elems: elems, Span: span.Combine(start, closer.Span)}
}

func (p *Parser) parseSeqExprElems(closing token.Kind) []ast.SeqExprElem {
	var elems []ast.SeqExprElem
	for !p.view.Check(closing) && !p.view.AtEnd() {
		start := p.view.HereSpan()
		spread := false
		if p.view.Check(token.DotDotDot) {
			p.view.Advance()
			spread = true
		}
		val := p.parseExpr()
		elems = append(elems, ast.SeqExprElem{Spread: spread, Value: val, Span: span.Combine(start, spanOfExpr(val))})
		if !p.view.Check(token.Comma) {
			break
		}
		p.view.Advance()
	}
	return elems
}

func (p *Parser) parseMapExpr() ast.Expression {
	start := p.view.HereSpan()
	p.view.Advance() // #{
	var entries []ast.MapExprEntry
	for !p.view.Check(token.RBrace) && !p.view.AtEnd() {
		estart := p.view.HereSpan()
		if p.view.Check(token.DotDotDot) {
			p.view.Advance()
			val := p.parseExpr()
			entries = append(entries, ast.MapExprEntry{Spread: true, Value: val, Span: span.Combine(estart, spanOfExpr(val))})
		} else {
			key := p.parseExpr()
			p.expect(token.Colon, "map literal entry")
			val := p.parseExpr()
			entries = append(entries, ast.MapExprEntry{Key: key, Value: val, Span: span.Combine(estart, spanOfExpr(val))})
		}
		if !p.view.Check(token.Comma) {
			break
		}
		p.view.Advance()
	}
	closer, _ := p.expect(token.RBrace, "map literal")
	return &ast.MapExpr{Entries: entries, Span: span.Combine(start, closer.Span)}
}

func (p *Parser) parseGroupedExpr() ast.Expression {
	start := p.view.HereSpan()
	p.view.Advance() // (
	inner := p.parseExpr()
	closer, _ := p.expect(token.RParen, "grouped expression")
	return &ast.GroupedExpr{Inner: inner, Span: span.Combine(start, closer.Span)}
}

func (p *Parser) parseClosureExpr() ast.Expression {
	start := p.view.HereSpan()
	p.view.Advance() // func
	generics := p.parseGenericParams()
	p.expect(token.LParen, "closure")
	params, _ := p.parseParams(false)
	var ret ast.Type
	if p.view.Check(token.Colon) {
		p.view.Advance()
		ret = p.parseType()
	}
	p.expect(token.Arrow, "closure")
	body := p.parseExpr()
	return &ast.ClosureExpr{Generics: generics, Params: params, ReturnType: ret, Body: body, Span: span.Combine(start, spanOfExpr(body))}
}

func (p *Parser) parseIfExpr() ast.Expression {
	start := p.view.HereSpan()
	p.view.Advance() // if
	cond := p.parseExpr()
	then := p.parseBlockBody(p.view.HereSpan(), nil)
	var elseBranch ast.Expression
	end := spanOfExpr(then)
	if p.view.Check(token.KwElse) {
		p.view.Advance()
		if p.view.Check(token.KwIf) {
			elseBranch = p.parseIfExpr()
		} else {
			elseBranch = p.parseBlockBody(p.view.HereSpan(), nil)
		}
		end = spanOfExpr(elseBranch)
	}
	return &ast.IfExpr{Cond: cond, Then: then, Else: elseBranch, Span: span.Combine(start, end)}
}

func (p *Parser) parseWhileExpr() ast.Expression {
	start := p.view.HereSpan()
	p.view.Advance() // while
	label := p.parseOptionalLabel()
	cond := p.parseExpr()
	body := p.parseBlockBody(p.view.HereSpan(), nil)
	return &ast.WhileExpr{Label: label, Cond: cond, Body: body, Span: span.Combine(start, spanOfExpr(body))}
}

func (p *Parser) parseForExpr() ast.Expression {
	start := p.view.HereSpan()
	p.view.Advance() // for
	label := p.parseOptionalLabel()
	pat := p.parsePattern()
	p.expect(token.KwIn, "for expression")
	iterable := p.parseExpr()
	body := p.parseBlockBody(p.view.HereSpan(), nil)
	return &ast.ForExpr{Label: label, Pattern: pat, Iterable: iterable, Body: body, Span: span.Combine(start, spanOfExpr(body))}
}

func (p *Parser) parseMatchExpr() ast.Expression {
	start := p.view.HereSpan()
	p.view.Advance() // match
	p.expect(token.LParen, "match expression")
	scrutinee := p.parseExpr()
	p.expect(token.RParen, "match expression")
	p.expect(token.LBrace, "match expression")
	var arms []ast.MatchArm
	for !p.view.Check(token.RBrace) && !p.view.AtEnd() {
		astart := p.view.HereSpan()
		pat := p.parsePattern()
		var guard ast.Expression
		if p.view.Check(token.KwIf) {
			p.view.Advance()
			guard = p.parseExpr()
		}
		p.expect(token.Arrow, "match arm")
		body := p.parseExpr()
		arms = append(arms, ast.MatchArm{Pattern: pat, Guard: guard, Body: body, Span: span.Combine(astart, spanOfExpr(body))})
		if !p.view.Check(token.Comma) {
			break
		}
		p.view.Advance()
	}
	closer, _ := p.expect(token.RBrace, "match expression")
	return &ast.MatchExpr{Scrutinee: scrutinee, Arms: arms, Span: span.Combine(start, closer.Span)}
}

func (p *Parser) parseReturnExpr() ast.Expression {
	start := p.view.HereSpan()
	kw := p.view.Advance()
	label := p.parseOptionalLabel()
	end := kw.Span
	if label != nil {
		end = label.Span
	}
	var val ast.Expression
	if p.canStartExprAtom() {
		val = p.parseExpr()
		end = spanOfExpr(val)
	}
	return &ast.ReturnExpr{Label: label, Value: val, Span: span.Combine(start, end)}
}

func (p *Parser) parseBreakExpr() ast.Expression {
	start := p.view.HereSpan()
	kw := p.view.Advance()
	label := p.parseOptionalLabel()
	end := kw.Span
	if label != nil {
		end = label.Span
	}
	var val ast.Expression
	if p.canStartExprAtom() {
		val = p.parseExpr()
		end = spanOfExpr(val)
	}
	return &ast.BreakExpr{Label: label, Value: val, Span: span.Combine(start, end)}
}

func (p *Parser) parseContinueExpr() ast.Expression {
	start := p.view.HereSpan()
	kw := p.view.Advance()
	label := p.parseOptionalLabel()
	end := kw.Span
	if label != nil {
		end = label.Span
	}
	return &ast.ContinueExpr{Label: label, Span: span.Combine(start, end)}
}

func (p *Parser) parseCallGenericArgs() []ast.GenericArg {
	p.view.Advance() // <
	var args []ast.GenericArg
	for !p.view.Check(token.Gt) && !p.view.AtEnd() {
		start := p.view.HereSpan()
		var name *ast.Identifier
		if p.view.Check(token.Ident) && p.view.PeekAt(1).Kind == token.Eq {
			id := p.parseIdentifier("generic argument name")
			name = &id
			p.view.Advance() // =
		}
		typ := p.parseType()
		args = append(args, ast.GenericArg{Name: name, Type: typ, Span: span.Combine(start, spanOfType(typ))})
		if !p.view.Check(token.Comma) {
			break
		}
		p.view.Advance()
	}
	p.expect(token.Gt, "call generic arguments")
	return args
}

func (p *Parser) parseCallArgs() ([]ast.Argument, token.Token) {
	var args []ast.Argument
	for !p.view.Check(token.RParen) && !p.view.AtEnd() {
		start := p.view.HereSpan()
		var name *ast.Identifier
		if p.view.Check(token.Ident) && p.view.PeekAt(1).Kind == token.Eq {
			id := p.parseIdentifier("argument name")
			name = &id
			p.view.Advance() // =
		}
		spread := false
		if p.view.Check(token.DotDotDot) {
			p.view.Advance()
			spread = true
		}
		val := p.parseExpr()
		args = append(args, ast.Argument{Name: name, Spread: spread, Value: val, Span: span.Combine(start, spanOfExpr(val))})
		if !p.view.Check(token.Comma) {
			break
		}
		p.view.Advance()
	}
	closer, _ := p.expect(token.RParen, "call arguments")
	return args, closer
}

// parseStringExpr implements the interpolation wiring:
// each inner token becomes a StringPart, and a StringInterpolation part
// recursively invokes a fresh Parser over the nested View the outer
// token's Parts vector produces.
func (p *Parser) parseStringExpr() ast.Expression {
	t := p.view.Advance()
	var parts []ast.StringPart
	for _, part := range t.Parts {
		switch part.Value.Kind {
		case token.StringChar:
			parts = append(parts, &ast.StringPartChar{Value: part.Value.Rune, Span: part.Span})
		case token.StringEscape:
			parts = append(parts, &ast.StringPartEscape{Kind: part.Value.EscapeKind, Value: part.Value.Rune, Span: part.Span})
		case token.StringInterpolation:
			sub := p.view.Sub(part.Value)
			subParser := New(sub)
			expr := subParser.parseExpr()
			p.errors = append(p.errors, subParser.errors...)
			parts = append(parts, &ast.StringPartInterpolation{Expr: expr, Span: part.Span})
		}
	}
	return &ast.StringLiteral{Parts: parts, Span: t.Span}
}

// spanOfExpr recovers the Span of any ast.Expression node.
func spanOfExpr(e ast.Expression) span.Span {
	switch v := e.(type) {
	case *ast.IntLiteral:
		return v.Span
	case *ast.FloatLiteral:
		return v.Span
	case *ast.CharLiteral:
		return v.Span
	case *ast.BoolLiteral:
		return v.Span
	case *ast.StringLiteral:
		return v.Span
	case *ast.Reference:
		return v.Span
	case *ast.ThisExpr:
		return v.Span
	case *ast.PlaceholderExpr:
		return v.Span
	case *ast.ListExpr:
		return v.Span
	case *ast.TupleExpr:
		return v.Span
	case *ast.MapExpr:
		return v.Span
	case *ast.RangeExpr:
		return v.Span
	case *ast.CallExpr:
		return v.Span
	case *ast.MemberAccessExpr:
		return v.Span
	case *ast.IndexAccessExpr:
		return v.Span
	case *ast.ClosureExpr:
		return v.Span
	case *ast.PrefixOpExpr:
		return v.Span
	case *ast.PostfixOpExpr:
		return v.Span
	case *ast.BinaryOpExpr:
		return v.Span
	case *ast.TypeOpExpr:
		return v.Span
	case *ast.PatternOpExpr:
		return v.Span
	case *ast.AssignOpExpr:
		return v.Span
	case *ast.IfExpr:
		return v.Span
	case *ast.WhileExpr:
		return v.Span
	case *ast.ForExpr:
		return v.Span
	case *ast.MatchExpr:
		return v.Span
	case *ast.ReturnExpr:
		return v.Span
	case *ast.BreakExpr:
		return v.Span
	case *ast.ContinueExpr:
		return v.Span
	case *ast.BlockExpr:
		return v.Span
	case *ast.GroupedExpr:
		return v.Span
	default:
		return span.Span{}
	}
}
