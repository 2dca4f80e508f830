/*
File    : spindle/parser/precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Shared Pratt climbing engine used by the type, pattern, and expression
sub-parsers: each operator is data - { precedence, fixity, token
predicate, build(lhs?, rhs?, span) -> Node } - driven by the standard
climbing algorithm. One generic engine serves all three grammars since
each only differs in its node type T, its atom parser, and its
operator table.
*/
package parser

import "github.com/spindle-lang/spindle/span"

// operator is one entry of a sub-grammar's precedence table. Lower
// Precedence values bind looser; climb stops consuming an operator once
// its Precedence falls below the caller's minPrec.
type operator[T any] struct {
	Precedence int
	RightAssoc bool
	Postfix    bool
	Match      func(v *View) bool
	// Consume advances past the operator and returns its span. Most
	// operators are one token; the contiguous-span "<<"/">>" pair
	// consumes two.
	Consume func(v *View) span.Span
	Build   func(p *Parser, left T, opSpan span.Span, rhs func() T) T
}

func oneTokenConsume(v *View) span.Span {
	return v.Advance().Span
}

func findOperator[T any](v *View, ops []operator[T]) (operator[T], bool) {
	for _, op := range ops {
		if op.Match(v) {
			return op, true
		}
	}
	return operator[T]{}, false
}

// climb parses one node of grammar T at or above minPrec: an atom
// followed by zero or more operators from ops, left-to-right.
func climb[T any](p *Parser, minPrec int, parseAtom func() T, ops []operator[T]) T {
	left := parseAtom()
	for {
		op, ok := findOperator(p.view, ops)
		if !ok || op.Precedence < minPrec {
			return left
		}
		opSpan := op.Consume(p.view)
		if op.Postfix {
			left = op.Build(p, left, opSpan, nil)
			continue
		}
		nextMin := op.Precedence
		if !op.RightAssoc {
			nextMin++
		}
		rhs := func() T { return climb(p, nextMin, parseAtom, ops) }
		left = op.Build(p, left, opSpan, rhs)
	}
}
