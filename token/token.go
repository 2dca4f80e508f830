/*
File    : spindle/token/token.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package token defines the tagged union of lexical tokens produced by the
// Spindle lexer and consumed by the Spindle parser. A Token carries one
// Kind and whichever payload fields that Kind uses; unused payload fields
// are left zero. Two Kind values, String and StringInterpolation, are
// composite: their payload is itself a slice of Spanned tokens, which is
// how nested tokenization inside string interpolation is represented.
package token

import (
	"fmt"

	"github.com/spindle-lang/spindle/span"
)

// Kind identifies which alternative of the Token tagged union a value
// holds. Kind is a small int rather than a string because the parser's
// Pratt tables switch on Kind in the hot path of every expression parsed;
// an int switch/map key is cheaper than a string one and the String
// method below keeps Kind just as readable in diagnostics and test
// failures.
type Kind int

const (
	Illegal Kind = iota
	EOF

	// Numeric literals.
	BinaryInt
	OctalInt
	HexInt
	DecimalInt
	Float

	// Character literal; Rune holds the single decoded code point and
	// CharEscape marks that it was spelled as an escape sequence rather
	// than a literal code point (both still carry the decoded Rune).
	Char
	CharEscape

	// String is composite: Parts holds the nested StringChar /
	// StringEscape / StringInterpolation tokens between the quotes.
	String
	StringChar
	StringEscape
	// StringInterpolation is composite: Parts holds the arbitrary token
	// stream lexed (recursively) between "${" and its matching "}".
	StringInterpolation

	Ident
	Underscore

	// Keywords: exactly these identifiers are reserved
	// and cannot be used as names.
	KwTrue
	KwFalse
	KwPublic
	KwInternal
	KwPrivate
	KwImport
	KwWith
	KwAsync
	KwAwait
	KwType
	KwStruct
	KwEnum
	KwLet
	KwMut
	KwExternal
	KwFunc
	KwInterface
	KwImpl
	KwNamespace
	KwFor
	KwWhile
	KwIf
	KwElse
	KwMatch
	KwInt
	KwFloat
	KwBoolean
	KwChar
	KwString
	KwVoid
	KwNever
	KwSelf
	KwAs
	KwIs
	KwIn
	KwReturn
	KwBreak
	KwContinue
	KwThis

	// Delimiters. The "#(" / "#[" / "#{" triples are only ever produced
	// when the '#' and the bracket are contiguous in the source;
	// otherwise the lone '#' is reported as an unrecognized character
	// (no token is emitted for it) and the bracket is its own token.
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace
	HashLParen
	HashLBracket
	HashLBrace

	// Punctuation, longest-match-first.
	DotDotDot // ...
	DotDotEq  // ..=
	DotDot    // ..
	Dot       // .

	QuestionQuestion // ??
	QuestionDot      // ?.
	Question         // ?

	ColonColon // ::
	Colon      // :

	BangIn // !in
	BangIs // !is
	BangEq // !=
	Bang   // !

	PlusEq // +=
	Plus   // +

	Arrow    // ->
	MinusEq  // -=
	Minus    // -

	StarStarEq // **=
	StarStar   // **
	StarEq     // *=
	Star       // *

	SlashEq // /=
	Slash   // /

	PercentEq // %=
	Percent   // %

	AmpAmpEq // &&=
	AmpAmp   // &&
	AmpEq    // &=
	Amp      // &

	PipeGt    // |>
	PipePipeEq // ||=
	PipePipe  // ||
	PipeEq    // |=
	Pipe      // |

	CaretEq // ^=
	Caret   // ^

	TildeEq // ~=
	Tilde   // ~

	EqEq // ==
	Eq   // =

	LtLtEq // <<=
	LtEq   // <=
	Lt     // <

	GtGtEq // >>=
	GtEq   // >=
	Gt     // >

	Comma
	At // @ (label prefix)
)

// kindNames is used only by Kind.String, kept as a map (rather than a
// switch) because the set is large and purely mechanical.
var kindNames = map[Kind]string{
	Illegal: "ILLEGAL", EOF: "EOF",
	BinaryInt: "BINARY_INT", OctalInt: "OCTAL_INT", HexInt: "HEX_INT",
	DecimalInt: "DECIMAL_INT", Float: "FLOAT",
	Char: "CHAR", CharEscape: "CHAR_ESCAPE",
	String: "STRING", StringChar: "STRING_CHAR", StringEscape: "STRING_ESCAPE",
	StringInterpolation: "STRING_INTERPOLATION",
	Ident:               "IDENT", Underscore: "_",
	KwTrue: "true", KwFalse: "false", KwPublic: "public", KwInternal: "internal",
	KwPrivate: "private", KwImport: "import", KwWith: "with", KwAsync: "async",
	KwAwait: "await", KwType: "type", KwStruct: "struct", KwEnum: "enum",
	KwLet: "let", KwMut: "mut", KwExternal: "external", KwFunc: "func",
	KwInterface: "interface", KwImpl: "impl", KwNamespace: "namespace",
	KwFor: "for", KwWhile: "while", KwIf: "if", KwElse: "else", KwMatch: "match",
	KwInt: "int", KwFloat: "float", KwBoolean: "boolean", KwChar: "char",
	KwString: "string", KwVoid: "void", KwNever: "never", KwSelf: "self",
	KwAs: "as", KwIs: "is", KwIn: "in", KwReturn: "return", KwBreak: "break",
	KwContinue: "continue", KwThis: "this",
	LParen: "(", RParen: ")", LBracket: "[", RBracket: "]", LBrace: "{", RBrace: "}",
	HashLParen: "#(", HashLBracket: "#[", HashLBrace: "#{",
	DotDotDot: "...", DotDotEq: "..=", DotDot: "..", Dot: ".",
	QuestionQuestion: "??", QuestionDot: "?.", Question: "?",
	ColonColon: "::", Colon: ":",
	BangIn: "!in", BangIs: "!is", BangEq: "!=", Bang: "!",
	PlusEq: "+=", Plus: "+",
	Arrow: "->", MinusEq: "-=", Minus: "-",
	StarStarEq: "**=", StarStar: "**", StarEq: "*=", Star: "*",
	SlashEq: "/=", Slash: "/",
	PercentEq: "%=", Percent: "%",
	AmpAmpEq: "&&=", AmpAmp: "&&", AmpEq: "&=", Amp: "&",
	PipeGt: "|>", PipePipeEq: "||=", PipePipe: "||", PipeEq: "|=", Pipe: "|",
	CaretEq: "^=", Caret: "^",
	TildeEq: "~=", Tilde: "~",
	EqEq: "==", Eq: "=",
	LtLtEq: "<<=", LtEq: "<=", Lt: "<",
	GtGtEq: ">>=", GtEq: ">=", Gt: ">",
	Comma: ",", At: "@",
}

// String renders a Kind's canonical spelling, used in diagnostics such as
// "expected ), found {".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords maps every reserved word to its Kind. Lexed
// identifiers are looked up here after being scanned as a plain
// identifier; a hit reclassifies the token (keywords shadow identifiers).
var keywords = map[string]Kind{
	"true": KwTrue, "false": KwFalse, "public": KwPublic, "internal": KwInternal,
	"private": KwPrivate, "import": KwImport, "with": KwWith, "async": KwAsync,
	"await": KwAwait, "type": KwType, "struct": KwStruct, "enum": KwEnum,
	"let": KwLet, "mut": KwMut, "external": KwExternal, "func": KwFunc,
	"interface": KwInterface, "impl": KwImpl, "namespace": KwNamespace,
	"for": KwFor, "while": KwWhile, "if": KwIf, "else": KwElse, "match": KwMatch,
	"int": KwInt, "float": KwFloat, "boolean": KwBoolean, "char": KwChar,
	"string": KwString, "void": KwVoid, "never": KwNever, "self": KwSelf,
	"as": KwAs, "is": KwIs, "in": KwIn, "return": KwReturn, "break": KwBreak,
	"continue": KwContinue, "this": KwThis,
}

// LookupIdent classifies an already-scanned identifier string: if it is
// one of the 39 reserved words it returns the matching keyword Kind,
// otherwise Ident.
func LookupIdent(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return Ident
}

// EscapeKind identifies which escape sequence a CharEscape or
// StringEscape token spells out.
type EscapeKind int

const (
	EscapeBackslash EscapeKind = iota // \\
	EscapeNewline                     // \n or \N
	EscapeReturn                      // \r or \R
	EscapeTab                         // \t or \T
	EscapeSingleQuote                 // \'
	EscapeDoubleQuote                 // \"
	EscapeInterpDollar                // \${
	EscapeUnicode                     // \uHHHHHH (1-6 hex digits)
)

// Token is the tagged union itself. Only the fields relevant to Kind are
// meaningful; the rest are left zero. This flat-struct representation
// (rather than one Go type per Kind behind an interface) is deliberate:
// the grammar is defined purely in terms of which Kind appears next, so
// the parser never needs dynamic dispatch on Token, only a switch on Kind.
type Token struct {
	Kind Kind
	Span span.Span

	// Ident, keywords spelled back out for diagnostics, and the raw
	// digit text of numeric literals (kept so re-lexing a token's source
	// slice is always possible,).
	Text string

	IntValue   uint64  // Binary/Octal/Hex/DecimalInt
	FloatValue float64 // Float, decoded
	FloatBits  uint64  // Float, math.Float64bits(FloatValue); NaN-distinguishing bit pattern

	Rune       rune       // Char, CharEscape (decoded code point)
	EscapeKind EscapeKind // CharEscape, StringEscape

	// Parts holds the inner token stream of a composite token: the
	// StringChar/StringEscape/StringInterpolation sequence of a String,
	// or the arbitrary recursively-lexed token stream of a
	// StringInterpolation.
	Parts []span.Spanned[Token]
}

// Spanned is shorthand for span.Spanned[Token], used throughout the
// lexer and parser so call sites don't repeat the generic instantiation.
type Spanned = span.Spanned[Token]
