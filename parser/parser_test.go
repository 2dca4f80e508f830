/*
File    : spindle/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spindle-lang/spindle/ast"
	"github.com/spindle-lang/spindle/lexer"
)

// parseSrc lexes and parses src, requiring the lex stage to be clean
// (lexer behavior is covered separately by lexer_test.go).
func parseSrc(t *testing.T, src string) (*ast.Module, []ParseError) {
	t.Helper()
	tokens, lexErrs := lexer.Lex("<test>", src)
	require.Empty(t, lexErrs, "unexpected lex errors for %q", src)
	return Parse("<test>", tokens)
}

func parseOK(t *testing.T, src string) *ast.Module {
	t.Helper()
	mod, errs := parseSrc(t, src)
	require.Empty(t, errs, "unexpected parse errors for %q: %v", src, errs)
	return mod
}

func TestParse_LetTopLevel(t *testing.T) {
	mod := parseOK(t, "let x = 1 + 2 * 3")
	require.Len(t, mod.Declarations, 1)
	let, ok := mod.Declarations[0].(*ast.Let)
	require.True(t, ok)
	require.False(t, let.Mutable)

	bin, ok := let.Value.(*ast.BinaryOpExpr)
	require.True(t, ok)
	require.Equal(t, ast.BinAdd, bin.Op)

	rhs, ok := bin.Right.(*ast.BinaryOpExpr)
	require.True(t, ok)
	require.Equal(t, ast.BinMul, rhs.Op)
}

func TestParse_LetMutableWithType(t *testing.T) {
	mod := parseOK(t, "let mut count: int = 0")
	let := mod.Declarations[0].(*ast.Let)
	require.True(t, let.Mutable)
	require.NotNil(t, let.Type)
	atomic, ok := let.Type.(*ast.AtomicType)
	require.True(t, ok)
	require.Equal(t, ast.AtomicInt, atomic.Kind)
}

func TestParse_FuncGenericWithBody(t *testing.T) {
	mod := parseOK(t, "func add<T>(a: T, b: T): T -> a + b")
	fn, ok := mod.Declarations[0].(*ast.Func)
	require.True(t, ok)
	require.Equal(t, "add", fn.Name.Name)
	require.Len(t, fn.Generics, 1)
	require.Equal(t, "T", fn.Generics[0].Name.Name)
	require.Len(t, fn.Params, 2)
	require.NotNil(t, fn.Body)

	bin, ok := fn.Body.(*ast.BinaryOpExpr)
	require.True(t, ok)
	require.Equal(t, ast.BinAdd, bin.Op)
}

func TestParse_StructWithFieldsAndMember(t *testing.T) {
	mod := parseOK(t, "struct Pair<A, B>(l: A, r: B) { func sum(): int -> 0 }")
	st, ok := mod.Declarations[0].(*ast.Struct)
	require.True(t, ok)
	require.Equal(t, "Pair", st.Name.Name)
	require.Len(t, st.Fields, 2)
	require.Len(t, st.Members, 1)
	_, ok = st.Members[0].(*ast.Func)
	require.True(t, ok)
}

func TestParse_EnumVariants(t *testing.T) {
	mod := parseOK(t, "enum Option<T> { Some(value: T), None }")
	en, ok := mod.Declarations[0].(*ast.Enum)
	require.True(t, ok)
	require.Len(t, en.Variants, 2)
	require.Equal(t, "Some", en.Variants[0].Name.Name)
	require.Len(t, en.Variants[0].Fields, 1)
	require.Equal(t, "None", en.Variants[1].Name.Name)
	require.Empty(t, en.Variants[1].Fields)
}

func TestParse_ImplForInterface(t *testing.T) {
	mod := parseOK(t, "impl<T> Iterable for Option<T> { func next(): T -> this }")
	impl, ok := mod.Declarations[0].(*ast.ImplFor)
	require.True(t, ok)
	require.Equal(t, "Iterable", impl.ForInterfaceName.Name)
	require.Len(t, impl.Members, 1)
}

func TestParse_MatchExpr(t *testing.T) {
	mod := parseOK(t, "let y = match (x) { Some(v) -> v, None -> 0 }")
	let := mod.Declarations[0].(*ast.Let)
	m, ok := let.Value.(*ast.MatchExpr)
	require.True(t, ok)
	require.Len(t, m.Arms, 2)
}

func TestParse_StringInterpolation(t *testing.T) {
	mod := parseOK(t, `let s = "x=${a+1}"`)
	let := mod.Declarations[0].(*ast.Let)
	str, ok := let.Value.(*ast.StringLiteral)
	require.True(t, ok)

	var foundInterp bool
	for _, part := range str.Parts {
		if interp, ok := part.(*ast.StringPartInterpolation); ok {
			foundInterp = true
			bin, ok := interp.Expr.(*ast.BinaryOpExpr)
			require.True(t, ok)
			require.Equal(t, ast.BinAdd, bin.Op)
		}
	}
	require.True(t, foundInterp, "expected an interpolation part")
}

func TestParse_ImportWithSelected(t *testing.T) {
	mod := parseOK(t, "import collections / list with { List, Map as Dict }")
	imp, ok := mod.Declarations[0].(*ast.Import)
	require.True(t, ok)
	require.Equal(t, ast.ImportRootPackage, imp.Root)
	require.Len(t, imp.Path, 2)
	require.Equal(t, "collections", imp.Path[0].Name)
	require.Equal(t, "list", imp.Path[1].Name)
	require.Len(t, imp.Selected, 2)
	require.Equal(t, "List", imp.Selected[0].Name.Name)
	require.Nil(t, imp.Selected[0].Alias)
	require.Equal(t, "Map", imp.Selected[1].Name.Name)
	require.NotNil(t, imp.Selected[1].Alias)
	require.Equal(t, "Dict", imp.Selected[1].Alias.Name)
}

func TestParse_ImportRelative(t *testing.T) {
	mod := parseOK(t, "import . sibling")
	imp := mod.Declarations[0].(*ast.Import)
	require.Equal(t, ast.ImportRootCurrent, imp.Root)
}

func TestParse_RangeExprKinds(t *testing.T) {
	tests := []struct {
		src  string
		kind ast.RangeExprKind
	}{
		{"let a = 1..10", ast.RangeExprExclusiveBoth},
		{"let a = 1..", ast.RangeExprExclusiveMin},
		{"let a = 1..=10", ast.RangeExprInclusiveBoth},
		{"let a = ..=10", ast.RangeExprInclusiveMax},
		{"let a = ..10", ast.RangeExprTo},
	}
	for _, tt := range tests {
		mod := parseOK(t, tt.src)
		let := mod.Declarations[0].(*ast.Let)
		rng, ok := let.Value.(*ast.RangeExpr)
		require.True(t, ok, "src=%q", tt.src)
		require.Equal(t, tt.kind, rng.Kind, "src=%q", tt.src)
	}
}

func TestParse_GenericCallVsComparison(t *testing.T) {
	mod := parseOK(t, "let a = foo<int>(1)")
	let := mod.Declarations[0].(*ast.Let)
	call, ok := let.Value.(*ast.CallExpr)
	require.True(t, ok)
	require.Len(t, call.GenericArgs, 1)

	mod2 := parseOK(t, "let b = x < y")
	let2 := mod2.Declarations[0].(*ast.Let)
	bin, ok := let2.Value.(*ast.BinaryOpExpr)
	require.True(t, ok)
	require.Equal(t, ast.BinLt, bin.Op)
}

func TestParse_ShiftVsComparisonComparison(t *testing.T) {
	mod := parseOK(t, "let a = x << y")
	let := mod.Declarations[0].(*ast.Let)
	bin, ok := let.Value.(*ast.BinaryOpExpr)
	require.True(t, ok)
	require.Equal(t, ast.BinShl, bin.Op)
}

func TestParse_LabeledWhileAndBreak(t *testing.T) {
	mod := parseOK(t, "func f() -> while@outer true { break@outer 1 }")
	fn := mod.Declarations[0].(*ast.Func)
	wh, ok := fn.Body.(*ast.WhileExpr)
	require.True(t, ok)
	require.NotNil(t, wh.Label)
	require.Equal(t, "outer", wh.Label.Name)
}

func TestParse_LabeledBlock(t *testing.T) {
	mod := parseOK(t, "func f() -> outer@ { 1 }")
	fn := mod.Declarations[0].(*ast.Func)
	blk, ok := fn.Body.(*ast.BlockExpr)
	require.True(t, ok)
	require.NotNil(t, blk.Label)
	require.Equal(t, "outer", blk.Label.Name)
}

func TestParse_InterfaceAbstractMethodNoBody(t *testing.T) {
	mod := parseOK(t, "interface Shape { func area(): float }")
	iface, ok := mod.Declarations[0].(*ast.Interface)
	require.True(t, ok)
	require.Len(t, iface.Members, 1)
	fn := iface.Members[0].(*ast.Func)
	require.Nil(t, fn.Body)
}

func TestParse_InterfaceMissingBodyAndReturnTypeErrors(t *testing.T) {
	_, errs := parseSrc(t, "interface Shape { func area() }")
	require.NotEmpty(t, errs)
}

func TestParse_TopLevelFuncMissingBodyErrors(t *testing.T) {
	_, errs := parseSrc(t, "func area(): float")
	require.NotEmpty(t, errs)
}

func TestParse_ExternalDeclarationsHaveNoBody(t *testing.T) {
	mod := parseOK(t, "external func puts(s: string): int")
	fn, ok := mod.Declarations[0].(*ast.ExternalFunc)
	require.True(t, ok)
	require.Equal(t, "puts", fn.Name.Name)
}

func TestParse_ResyncOnBadDeclaration(t *testing.T) {
	_, errs := parseSrc(t, "} let x = 1")
	require.NotEmpty(t, errs)
}

func TestParse_CharRangePattern(t *testing.T) {
	tests := []struct {
		src  string
		kind ast.RangePatternKind
	}{
		{"let y = match (c) { 'a'..'z' -> 1, _ -> 0 }", ast.RangePatternExclusiveBoth},
		{"let y = match (c) { 'a'.. -> 1, _ -> 0 }", ast.RangePatternExclusiveMin},
		{"let y = match (c) { 'a'..='z' -> 1, _ -> 0 }", ast.RangePatternInclusiveBoth},
	}
	for _, tt := range tests {
		mod := parseOK(t, tt.src)
		let := mod.Declarations[0].(*ast.Let)
		m := let.Value.(*ast.MatchExpr)
		rng, ok := m.Arms[0].Pattern.(*ast.RangePattern)
		require.True(t, ok, "src=%q", tt.src)
		require.Equal(t, tt.kind, rng.Kind, "src=%q", tt.src)
		low, ok := rng.Low.(*ast.CharLiteralPattern)
		require.True(t, ok, "src=%q", tt.src)
		require.Equal(t, 'a', low.Value)
	}
}

func TestParse_StructPatternValueFieldUsesEquals(t *testing.T) {
	mod := parseOK(t, "let y = match (x) { Some(v = inner) -> inner, None -> 0 }")
	let := mod.Declarations[0].(*ast.Let)
	m := let.Value.(*ast.MatchExpr)
	st, ok := m.Arms[0].Pattern.(*ast.StructPattern)
	require.True(t, ok)
	require.Len(t, st.Fields, 1)
	require.Equal(t, ast.FieldValue, st.Fields[0].Kind)
	require.Equal(t, "v", st.Fields[0].Name.Name)
	_, ok = st.Fields[0].Pattern.(*ast.StructPattern)
	require.True(t, ok)
}

func TestParse_ImportVisibility(t *testing.T) {
	mod := parseOK(t, "public import collections")
	imp, ok := mod.Declarations[0].(*ast.Import)
	require.True(t, ok)
	require.Equal(t, ast.VisibilityPublic, imp.Visibility)
}
