/*
File    : spindle/ast/expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"github.com/spindle-lang/spindle/span"
	"github.com/spindle-lang/spindle/token"
)

// Expression is every node the expression parser can
// produce.
type Expression interface {
	isExpression()
}

// Statement is a block's direct content: a bare expression or a `let`
// binding.
type Statement interface {
	isStatement()
}

// --- literals ---------------------------------------------------------

type IntLiteral struct {
	Value uint64
	Span  span.Span
}

type FloatLiteral struct {
	Value float64
	Bits  uint64 // math.Float64bits(Value); distinguishes NaN payloads
	Span  span.Span
}

type CharLiteral struct {
	Value rune
	Span  span.Span
}

type BoolLiteral struct {
	Value bool
	Span  span.Span
}

// StringPart is one element of a StringLiteral's body.
type StringPart interface {
	isStringPart()
}

type StringPartChar struct {
	Value rune
	Span  span.Span
}

type StringPartEscape struct {
	Kind  token.EscapeKind
	Value rune
	Span  span.Span
}

// StringPartInterpolation is an `${ expr }` segment: Expr is the result
// of recursively invoking the expression parser over the interpolation's
// inner token stream.
type StringPartInterpolation struct {
	Expr Expression
	Span span.Span
}

type StringLiteral struct {
	Parts []StringPart
	Span  span.Span
}

// Reference is a bare identifier used as an expression.
type Reference struct {
	Name Identifier
	Span span.Span
}

type ThisExpr struct{ Span span.Span }
type PlaceholderExpr struct{ Span span.Span }

// --- containers ---------------------------------------------------------

// SeqExprElem is one element of a ListExpr or TupleExpr: Value holds
// either the item expression or, when Spread is true, the expression
// being spread.
type SeqExprElem struct {
	Spread bool
	Value  Expression
	Span   span.Span
}

type ListExpr struct {
	Elems []SeqExprElem
	Span  span.Span
}

type TupleExpr struct {
	Elems []SeqExprElem
	Span  span.Span
}

// MapExprEntry is one entry of a MapExpr: an ordinary Key:Value pair, or
// (Spread == true) a spread source held in Value with Key unset.
type MapExprEntry struct {
	Spread bool
	Key    Expression
	Value  Expression
	Span   span.Span
}

type MapExpr struct {
	Entries []MapExprEntry
	Span    span.Span
}

// RangeExprKind enumerates the five expression-level range shapes, one
// more than pattern ranges because expressions additionally allow the
// unbounded-start `..b` form (`To`).
type RangeExprKind int

const (
	RangeExprExclusiveBoth RangeExprKind = iota // a..b
	RangeExprExclusiveMin                       // a..
	RangeExprInclusiveBoth                      // a..=b
	RangeExprInclusiveMax                       // ..=b
	RangeExprTo                                 // ..b
)

type RangeExpr struct {
	Kind RangeExprKind
	Low  Expression // nil where absent
	High Expression // nil where absent
	Span span.Span
}

// --- calls and access ---------------------------------------------------

// Argument is one call argument: `[name =] [...] value`.
type Argument struct {
	Name   *Identifier
	Spread bool
	Value  Expression
	Span   span.Span
}

// GenericArg is one `<...>` generic argument, optionally named
// (`<T = int>`).
type GenericArg struct {
	Name *Identifier
	Type Type
	Span span.Span
}

type CallExpr struct {
	Func        Expression
	GenericArgs []GenericArg
	Args        []Argument
	Span        span.Span
}

type MemberAccessExpr struct {
	Parent   Expression
	Name     Identifier
	Optional bool // true for `?.`
	Span     span.Span
}

type IndexAccessExpr struct {
	Parent   Expression
	Index    Expression
	Optional bool // true for `?.[`
	Span     span.Span
}

type ClosureExpr struct {
	Generics   []GenericParam
	Params     []Param
	ReturnType Type // nil if omitted
	Body       Expression
	Span       span.Span
}

// --- operators -----------------------------------------------------------

type PrefixOpKind int

const (
	PrefixNeg PrefixOpKind = iota // -
	PrefixNot                     // !
	PrefixBitNot                  // ~
)

type PrefixOpExpr struct {
	Op      PrefixOpKind
	Operand Expression
	Span    span.Span
}

// PostfixOpExpr is the postfix `?` unwrap-or-propagate operator.
type PostfixOpExpr struct {
	Operand Expression
	Span    span.Span
}

// BinaryOpKind enumerates every infix operator in the precedence ladder
// from Pipeline down through Power.
type BinaryOpKind int

const (
	BinPipeline BinaryOpKind = iota // |>
	BinBoolOr                       // ||
	BinBoolAnd                      // &&
	BinEq                           // ==
	BinNotEq                        // !=
	BinLt                           // <
	BinLtEq                         // <=
	BinGt                           // >
	BinGtEq                         // >=
	BinIn                           // in
	BinNotIn                        // !in
	BinCoalesce                     // ??
	BinBitOr                        // |
	BinBitXor                       // ^
	BinBitAnd                       // &
	BinShl                          // << (contiguous-span pair)
	BinShr                          // >> (contiguous-span pair)
	BinAdd                          // +
	BinSub                          // -
	BinMul                          // *
	BinDiv                          // /
	BinMod                          // %
	BinPow                          // **
)

type BinaryOpExpr struct {
	Op    BinaryOpKind
	Left  Expression
	Right Expression
	Span  span.Span
}

// TypeOpExpr is postfix `as Type`.
type TypeOpExpr struct {
	Operand Expression
	Type    Type
	Span    span.Span
}

type PatternOpKind int

const (
	PatternOpIs    PatternOpKind = iota // is
	PatternOpNotIs                      // !is
)

type PatternOpExpr struct {
	Op      PatternOpKind
	Operand Expression
	Pattern Pattern
	Span    span.Span
}

// AssignOpKind enumerates all 15 assignment flavors.
type AssignOpKind int

const (
	AssignPlain AssignOpKind = iota // =
	AssignAdd                       // +=
	AssignSub                       // -=
	AssignMul                       // *=
	AssignDiv                       // /=
	AssignMod                       // %=
	AssignPow                       // **=
	AssignShl                       // <<=
	AssignShr                       // >>=
	AssignBitAnd                    // &=
	AssignBitXor                    // ^=
	AssignBitOr                     // |=
	AssignBitNot                    // ~=
	AssignBoolAnd                   // &&=
	AssignBoolOr                    // ||=
)

type AssignOpExpr struct {
	Op     AssignOpKind
	Target Expression
	Value  Expression
	Span   span.Span
}

// --- control flow ---------------------------------------------------------

// IfExpr's Else is nil for a bodyless if, or itself an *IfExpr for an
// `else if` chain.
type IfExpr struct {
	Cond Expression
	Then Expression
	Else Expression
	Span span.Span
}

type WhileExpr struct {
	Label *Identifier
	Cond  Expression
	Body  Expression
	Span  span.Span
}

type ForExpr struct {
	Label    *Identifier
	Pattern  Pattern
	Iterable Expression
	Body     Expression
	Span     span.Span
}

// MatchArm's Guard is nil when the arm carries no `if` guard.
type MatchArm struct {
	Pattern Pattern
	Guard   Expression
	Body    Expression
	Span    span.Span
}

type MatchExpr struct {
	Scrutinee Expression
	Arms      []MatchArm
	Span      span.Span
}

type ReturnExpr struct {
	Label *Identifier
	Value Expression // nil if omitted
	Span  span.Span
}

type BreakExpr struct {
	Label *Identifier
	Value Expression // nil if omitted
	Span  span.Span
}

type ContinueExpr struct {
	Label *Identifier
	Span  span.Span
}

type BlockExpr struct {
	Label      *Identifier
	Statements []Statement
	Span       span.Span
}

type GroupedExpr struct {
	Inner Expression
	Span  span.Span
}

// --- statements ------------------------------------------------------------

type ExprStatement struct {
	Value Expression
	Span  span.Span
}

type LetStatement struct {
	Mutable bool
	Pattern Pattern
	Type    Type // nil if omitted
	Value   Expression
	Span    span.Span
}

func (*IntLiteral) isExpression()       {}
func (*FloatLiteral) isExpression()     {}
func (*CharLiteral) isExpression()      {}
func (*BoolLiteral) isExpression()      {}
func (*StringLiteral) isExpression()    {}
func (*Reference) isExpression()        {}
func (*ThisExpr) isExpression()         {}
func (*PlaceholderExpr) isExpression()  {}
func (*ListExpr) isExpression()         {}
func (*TupleExpr) isExpression()        {}
func (*MapExpr) isExpression()          {}
func (*RangeExpr) isExpression()        {}
func (*CallExpr) isExpression()         {}
func (*MemberAccessExpr) isExpression() {}
func (*IndexAccessExpr) isExpression()  {}
func (*ClosureExpr) isExpression()      {}
func (*PrefixOpExpr) isExpression()     {}
func (*PostfixOpExpr) isExpression()    {}
func (*BinaryOpExpr) isExpression()     {}
func (*TypeOpExpr) isExpression()       {}
func (*PatternOpExpr) isExpression()    {}
func (*AssignOpExpr) isExpression()     {}
func (*IfExpr) isExpression()           {}
func (*WhileExpr) isExpression()        {}
func (*ForExpr) isExpression()          {}
func (*MatchExpr) isExpression()        {}
func (*ReturnExpr) isExpression()       {}
func (*BreakExpr) isExpression()        {}
func (*ContinueExpr) isExpression()     {}
func (*BlockExpr) isExpression()        {}
func (*GroupedExpr) isExpression()      {}

func (*StringPartChar) isStringPart()         {}
func (*StringPartEscape) isStringPart()       {}
func (*StringPartInterpolation) isStringPart() {}

func (*ExprStatement) isStatement() {}
func (*LetStatement) isStatement()  {}
