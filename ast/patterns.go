/*
File    : spindle/ast/patterns.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"github.com/spindle-lang/spindle/span"
	"github.com/spindle-lang/spindle/token"
)

// Pattern is the match/destructuring grammar.
type Pattern interface {
	isPattern()
}

// IntLiteralPattern is a (possibly sign-prefixed) integer literal
// pattern; Negative is only ever true for numeric literal patterns,
// the `-` prefix is rejected on any other pattern kind.
type IntLiteralPattern struct {
	Negative bool
	Value    uint64
	Span     span.Span
}

// FloatLiteralPattern is a (possibly sign-prefixed) float literal
// pattern.
type FloatLiteralPattern struct {
	Negative bool
	Value    float64
	Span     span.Span
}

// CharLiteralPattern matches one exact code point.
type CharLiteralPattern struct {
	Value rune
	Span  span.Span
}

// StringPatternPart is one element of a StringLiteralPattern: only Char
// and EscapeSequence parts are allowed.
type StringPatternPart interface {
	isStringPatternPart()
}

type StringPatternChar struct {
	Value rune
	Span  span.Span
}

type StringPatternEscape struct {
	Kind  token.EscapeKind
	Value rune
	Span  span.Span
}

// StringLiteralPattern matches an exact string with no interpolation
// allowed.
type StringLiteralPattern struct {
	Parts []StringPatternPart
	Span  span.Span
}

// BooleanLiteralPattern matches `true` or `false` exactly.
type BooleanLiteralPattern struct {
	Value bool
	Span  span.Span
}

// PlaceholderPattern is `_`, matching anything and binding nothing.
type PlaceholderPattern struct {
	Span span.Span
}

// SequenceElemKind distinguishes a plain item from a spread inside a
// ListPattern or TuplePattern.
type SequenceElemKind int

const (
	SeqItem SequenceElemKind = iota
	SeqSpread
)

// SequenceElem is one element of a ListPattern or TuplePattern: either
// an ordinary sub-pattern (Kind == SeqItem, Pattern set) or a
// `...rest[?name]` spread (Kind == SeqSpread, Name optionally set).
type SequenceElem struct {
	Kind    SequenceElemKind
	Pattern Pattern     // set when Kind == SeqItem
	Name    *Identifier // set when Kind == SeqSpread and a capture name was given
	Span    span.Span
}

// ListPattern is `#[ ... ]`.
type ListPattern struct {
	Elems []SequenceElem
	Span  span.Span
}

// TuplePattern is `#( ... )`.
type TuplePattern struct {
	Elems []SequenceElem
	Span  span.Span
}

// MapPatternEntryKind distinguishes an ordinary `key: value` entry from
// a `...rest[?name]` spread inside a MapPattern.
type MapPatternEntryKind int

const (
	MapEntryItem MapPatternEntryKind = iota
	MapEntryRest
)

// MapPatternEntry is one entry of a MapPattern: either an ordinary
// `key: value` pair (Kind == MapEntryItem, Key/Value set) or a
// `...rest[?name]` spread (Kind == MapEntryRest, Name optionally set).
type MapPatternEntry struct {
	Kind  MapPatternEntryKind
	Key   Pattern
	Value Pattern
	Name  *Identifier // set when Kind == MapEntryRest and a capture name was given
	Span  span.Span
}

// MapPattern is `#{ ... }`.
type MapPattern struct {
	Entries []MapPatternEntry
	Span    span.Span
}

// StructPatternFieldKind distinguishes the three field forms a
// StructPattern's field list may contain.
type StructPatternFieldKind int

const (
	FieldNamed StructPatternFieldKind = iota // `name` (shorthand binding)
	FieldValue                               // `name = pattern`
	FieldRest                                // `...`
)

// StructPatternField is one entry of a StructPattern's field list.
type StructPatternField struct {
	Kind    StructPatternFieldKind
	Name    Identifier // unset when Kind == FieldRest
	Pattern Pattern    // set only when Kind == FieldValue
	Span    span.Span
}

// StructPattern is `Name[(fields...)]`, matching a struct or enum
// variant by name and destructuring its fields.
type StructPattern struct {
	Name   Identifier
	Fields []StructPatternField
	Span   span.Span
}

// RangePatternKind distinguishes the four bounded-range pattern shapes.
type RangePatternKind int

const (
	RangePatternExclusiveBoth RangePatternKind = iota // a..b
	RangePatternExclusiveMin                          // a..
	RangePatternInclusiveBoth                         // a..=b
	RangePatternInclusiveMax                          // ..=b
)

// RangePattern matches a value falling within [Low, High) or [Low, High]
// depending on Kind; Low or High is nil where the bound is absent.
type RangePattern struct {
	Kind RangePatternKind
	Low  Pattern
	High Pattern
	Span span.Span
}

// BindingPattern is `inner as name`, capturing the matched value under
// name in addition to matching inner.
type BindingPattern struct {
	Name  Identifier
	Inner Pattern
	Span  span.Span
}

// UnionPattern is `lhs | rhs`, matching if either alternative matches.
type UnionPattern struct {
	Left  Pattern
	Right Pattern
	Span  span.Span
}

// GroupedPattern is a parenthesized pattern, `(P)`.
type GroupedPattern struct {
	Inner Pattern
	Span  span.Span
}

func (*IntLiteralPattern) isPattern()     {}
func (*FloatLiteralPattern) isPattern()   {}
func (*CharLiteralPattern) isPattern()    {}
func (*StringLiteralPattern) isPattern()  {}
func (*BooleanLiteralPattern) isPattern() {}
func (*PlaceholderPattern) isPattern()    {}
func (*ListPattern) isPattern()           {}
func (*TuplePattern) isPattern()          {}
func (*MapPattern) isPattern()            {}
func (*StructPattern) isPattern()         {}
func (*RangePattern) isPattern()          {}
func (*BindingPattern) isPattern()        {}
func (*UnionPattern) isPattern()          {}
func (*GroupedPattern) isPattern()        {}

func (*StringPatternChar) isStringPatternPart()   {}
func (*StringPatternEscape) isStringPatternPart() {}
