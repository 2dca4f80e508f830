/*
File    : spindle/ast/types.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/spindle-lang/spindle/span"

// Type is the algebraic, unresolved type grammar the parser produces;
// no name resolution happens here.
type Type interface {
	isType()
}

// AtomicKind enumerates the built-in atomic types.
type AtomicKind int

const (
	AtomicInt AtomicKind = iota
	AtomicFloat
	AtomicChar
	AtomicString
	AtomicBoolean
	AtomicVoid
	AtomicNever
	AtomicSelf
	AtomicInfer // `_`
)

// AtomicType is one of the built-in keyword types, or the `_` inferred
// placeholder.
type AtomicType struct {
	Kind AtomicKind
	Span span.Span
}

// ListType is `#[T]`.
type ListType struct {
	Elem Type
	Span span.Span
}

// TupleType is `#(T, ...)`.
type TupleType struct {
	Elems []Type
	Span  span.Span
}

// MapType is `#{K:V}`.
type MapType struct {
	Key   Type
	Value Type
	Span  span.Span
}

// FunctionType is `(T, ...) -> T`.
type FunctionType struct {
	Params []Type
	Return Type
	Span   span.Span
}

// ReferenceType is `Ident[<args>]`, a named type with optional generic
// arguments.
type ReferenceType struct {
	Name        Identifier
	GenericArgs []Type
	Span        span.Span
}

// IntersectionType is `T + T`, infix and left-associative.
type IntersectionType struct {
	Left  Type
	Right Type
	Span  span.Span
}

// PatternType is `T is Pattern`.
type PatternType struct {
	Base    Type
	Pattern Pattern
	Span    span.Span
}

// NotPatternType is `T !is Pattern`.
type NotPatternType struct {
	Base    Type
	Pattern Pattern
	Span    span.Span
}

// GroupedType is a parenthesized type, `(T)`.
type GroupedType struct {
	Inner Type
	Span  span.Span
}

func (*AtomicType) isType()       {}
func (*ListType) isType()         {}
func (*TupleType) isType()        {}
func (*MapType) isType()          {}
func (*FunctionType) isType()     {}
func (*ReferenceType) isType()    {}
func (*IntersectionType) isType() {}
func (*PatternType) isType()      {}
func (*NotPatternType) isType()   {}
func (*GroupedType) isType()      {}
