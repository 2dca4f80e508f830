/*
File    : spindle/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package ast defines the syntax tree the parser produces from a token
stream: a Module is an ordered sequence of top-level Declarations, each
built from Types, Patterns, and Expressions (see types.go, patterns.go,
expressions.go). Every node is immutable after construction and carries
a span.Span describing exactly the source text that produced it.

Nodes are grouped into tagged interfaces (Declaration, Member, Type,
Pattern, Expression, Statement) rather than dispatched through a visitor:
nothing downstream of parsing needs double dispatch here, so a plain type
switch on the concrete struct is all any caller needs.
*/
package ast

import "github.com/spindle-lang/spindle/span"

// Identifier is a spanned name. Two Identifiers with the same Name but
// different Spans are distinct occurrences of the same symbol.
type Identifier struct {
	Name string
	Span span.Span
}

// Visibility is the optional public/internal/private modifier carried by
// top-level and member declarations. Impl and ImplFor have no Visibility
// field, so a modifier written before `impl` is not recorded, and the
// three special member forms accept no modifier. The zero
// value, VisibilityNone, means no modifier was written.
type Visibility int

const (
	VisibilityNone Visibility = iota
	VisibilityPublic
	VisibilityInternal
	VisibilityPrivate
)

// Module is the root of a parsed source file: an ordered sequence of
// top-level declarations.
type Module struct {
	Declarations []Declaration
	Span         span.Span
}

// Declaration is any top-level or struct/enum/interface member form
// that is not one of the three special member forms (NamespaceMember,
// ImplMutMember, ImplInterfaceMember).
type Declaration interface {
	isDeclaration()
}

// Member is any element of a struct/enum/interface/impl body: a regular
// Declaration (Let, Func, ExternalLet, ExternalFunc) or one of the three
// special forms below.
type Member interface {
	isMember()
}

// GenericParam names one generic parameter introduced by a declaration,
// with an optional `: Constraint` bound and `= Default` default type.
type GenericParam struct {
	Name       Identifier
	Constraint Type // nil if omitted
	Default    Type // nil if omitted
	Span       span.Span
}

// Param is one parameter of a Func, ExternalFunc, or Closure. Name is a
// full Pattern rather than a bare Identifier so destructuring parameters
// parse the same way a `let` binding's name does. Type is nil only for a
// Closure param that omitted its annotation - Func and ExternalFunc
// always require one. Default is nil if the parameter has no `= expr`.
type Param struct {
	Mutable bool
	Spread  bool
	Name    Pattern
	Type    Type // nil if omitted (closures only)
	Default Expression
	Span    span.Span
}

// ImportRoot selects where an Import's path is rooted.
type ImportRoot int

const (
	ImportRootPackage ImportRoot = iota
	ImportRootCurrent
	ImportRootParent
)

// ImportSelector is one entry of an Import's optional `selected` mapping,
// pairing a source identifier with an optional rename.
type ImportSelector struct {
	Name  Identifier
	Alias *Identifier // nil if not renamed
}

// Import is the `import` declaration. Path is non-empty; Selected is nil
// when the import form selects nothing explicitly (imports the path's
// own name).
type Import struct {
	Visibility Visibility
	Root       ImportRoot
	Path       []Identifier
	Selected   []ImportSelector
	Span       span.Span
}

// Let is a `let` binding, valid at top level, inside a block
// (as a Statement via LetStatement, see expressions.go), or as a struct/
// enum/interface member.
type Let struct {
	Visibility Visibility
	Mutable    bool
	Pattern    Pattern
	Type       Type // nil if omitted
	Value      Expression
	Span       span.Span
}

// ExternalLet is `external let`: like Let but forbidden from carrying a
// value.
type ExternalLet struct {
	Visibility Visibility
	Mutable    bool
	Pattern    Pattern
	Type       Type // nil if omitted
	Span       span.Span
}

// Func is a `func` declaration with a body. Body is nil only for an
// interface member left abstract, never for a top-level Func.
type Func struct {
	Visibility Visibility
	Name       Identifier
	Generics   []GenericParam
	Params     []Param
	ReturnType Type // nil if omitted
	Body       Expression
	Span       span.Span
}

// ExternalFunc is `external func`: like Func but never carries a body.
type ExternalFunc struct {
	Visibility Visibility
	Name       Identifier
	Generics   []GenericParam
	Params     []Param
	ReturnType Type // nil if omitted
	Span       span.Span
}

// TypeAlias is `type Name[<G>] = Value`.
type TypeAlias struct {
	Visibility Visibility
	Name       Identifier
	Generics   []GenericParam
	Value      Type
	Span       span.Span
}

// StructField is one field of a Struct's `(...)` clause, or one payload
// field of an EnumVariant. Default is nil if the field carries no
// `= expr` default value.
type StructField struct {
	Name    Identifier
	Type    Type
	Default Expression
	Span    span.Span
}

// Struct is a `struct` declaration. Fields is nil for a unit struct -
// nil here distinguishes "clause omitted" from "clause present but
// empty", which the parser rejects per the at-least-one field
// invariant.
type Struct struct {
	Visibility Visibility
	Name       Identifier
	Generics   []GenericParam
	Fields     []StructField
	Members    []Member
	Span       span.Span
}

// EnumVariant is one variant of an Enum; Fields may be empty (a
// unit-like variant).
type EnumVariant struct {
	Name   Identifier
	Fields []StructField
	Span   span.Span
}

// Enum is an `enum` declaration with at least one variant.
type Enum struct {
	Visibility Visibility
	Name       Identifier
	Generics   []GenericParam
	Variants   []EnumVariant
	Members    []Member
	Span       span.Span
}

// Namespace is a top-level `namespace` declaration.
type Namespace struct {
	Visibility Visibility
	Name       Identifier
	Members    []Member
	Span       span.Span
}

// Interface is an `interface` declaration. SuperInterfaces are reference
// types this interface extends.
type Interface struct {
	Visibility      Visibility
	Mutable         bool
	Name            Identifier
	Generics        []GenericParam
	SuperInterfaces []Type
	Members         []Member
	Span            span.Span
}

// Impl is a bare `impl Type { ... }` inherent implementation block.
type Impl struct {
	Generics []GenericParam
	Mutable  bool
	Type     Type
	Members  []Member
	Span     span.Span
}

// ImplFor is `impl InterfaceName[<args>] for Type { ... }`.
type ImplFor struct {
	Generics         []GenericParam
	Mutable          bool
	Type             Type
	ForInterfaceName Identifier
	ForInterfaceArgs []Type
	Members          []Member
	Span             span.Span
}

// NamespaceMember is the `namespace { members }` static-side member
// form inside a struct/enum/interface body.
type NamespaceMember struct {
	Members []Member
	Span    span.Span
}

// ImplMutMember is the `impl mut { members }` member form, marking its
// members as mutable-self-accessible.
type ImplMutMember struct {
	Members []Member
	Span    span.Span
}

// ImplInterfaceMember is the `impl [<G>] IName[<args>] { members }`
// inline interface implementation member form.
type ImplInterfaceMember struct {
	Generics      []GenericParam
	InterfaceName Identifier
	GenericArgs   []Type
	Members       []Member
	Span          span.Span
}

func (*Import) isDeclaration()       {}
func (*Let) isDeclaration()          {}
func (*ExternalLet) isDeclaration()  {}
func (*Func) isDeclaration()         {}
func (*ExternalFunc) isDeclaration() {}
func (*TypeAlias) isDeclaration()    {}
func (*Struct) isDeclaration()       {}
func (*Enum) isDeclaration()         {}
func (*Namespace) isDeclaration()    {}
func (*Interface) isDeclaration()    {}
func (*Impl) isDeclaration()         {}
func (*ImplFor) isDeclaration()      {}

// Let, ExternalLet, Func, and ExternalFunc double as Member: the same
// node serves as both a top-level declaration and a struct/enum/
// interface body member.
func (*Let) isMember()                 {}
func (*ExternalLet) isMember()         {}
func (*Func) isMember()                {}
func (*ExternalFunc) isMember()        {}
func (*NamespaceMember) isMember()     {}
func (*ImplMutMember) isMember()       {}
func (*ImplInterfaceMember) isMember() {}
