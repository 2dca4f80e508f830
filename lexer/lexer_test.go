/*
File    : spindle/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spindle-lang/spindle/token"
)

// kinds extracts the Kind of every token in a lex result, dropping the
// trailing EOF so test tables only have to spell out the meaningful
// tokens.
func kinds(tokens []token.Spanned) []token.Kind {
	out := make([]token.Kind, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Value.Kind == token.EOF {
			continue
		}
		out = append(out, tok.Value.Kind)
	}
	return out
}

// A '#' that is not immediately followed by its bracket forms no
// delimiter: it is reported as an unrecognized character and the bracket
// lexes on its own.
func TestLex_HashNotContiguous(t *testing.T) {
	tokens, errs := Lex("<test>", "# (")
	require.Len(t, errs, 1)
	assert.Equal(t, ErrUnrecognizedChar, errs[0].Kind)
	assert.Equal(t, []token.Kind{token.LParen}, kinds(tokens))
}

func TestLex_Punctuation(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []token.Kind
	}{
		{"arithmetic", "1 + 2 - 3", []token.Kind{token.DecimalInt, token.Plus, token.DecimalInt, token.Minus, token.DecimalInt}},
		{"delimiters", "( ) [ ] { } #( #[ #{", []token.Kind{
			token.LParen, token.RParen, token.LBracket, token.RBracket,
			token.LBrace, token.RBrace, token.HashLParen, token.HashLBracket, token.HashLBrace,
		}},
		{"range forms", "0..10 0..=10 a...b", []token.Kind{
			token.DecimalInt, token.DotDot, token.DecimalInt,
			token.DecimalInt, token.DotDotEq, token.DecimalInt,
			token.Ident, token.DotDotDot, token.Ident,
		}},
		{"angle bracket split", "a<<b", []token.Kind{token.Ident, token.Lt, token.Lt, token.Ident}},
		{"angle bracket compound", "a<<=b a>>=b", []token.Kind{
			token.Ident, token.LtLtEq, token.Ident,
			token.Ident, token.GtGtEq, token.Ident,
		}},
		{"shift vs compare", "a<=b a>=b a<b a>b", []token.Kind{
			token.Ident, token.LtEq, token.Ident,
			token.Ident, token.GtEq, token.Ident,
			token.Ident, token.Lt, token.Ident,
			token.Ident, token.Gt, token.Ident,
		}},
		{"pipeline and logical or", "a|>b a||b a|=b a|b", []token.Kind{
			token.Ident, token.PipeGt, token.Ident,
			token.Ident, token.PipePipe, token.Ident,
			token.Ident, token.PipeEq, token.Ident,
			token.Ident, token.Pipe, token.Ident,
		}},
		{"bang forms", "!a !=a !in x !is x !inside", []token.Kind{
			token.Bang, token.Ident,
			token.BangEq, token.Ident,
			token.BangIn, token.Ident,
			token.BangIs, token.Ident,
			token.Bang, token.Ident,
		}},
		{"question forms", "a?.b a??b a?", []token.Kind{
			token.Ident, token.QuestionDot, token.Ident,
			token.Ident, token.QuestionQuestion, token.Ident,
			token.Ident, token.Question,
		}},
		{"arrow and minus", "a->b a-b a-=b", []token.Kind{
			token.Ident, token.Arrow, token.Ident,
			token.Ident, token.Minus, token.Ident,
			token.Ident, token.MinusEq, token.Ident,
		}},
		{"star forms", "a**b a*b a**=b a*=b", []token.Kind{
			token.Ident, token.StarStar, token.Ident,
			token.Ident, token.Star, token.Ident,
			token.Ident, token.StarStarEq, token.Ident,
			token.Ident, token.StarEq, token.Ident,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, errs := Lex("<test>", tt.src)
			assert.Empty(t, errs, "unexpected lex errors: %v", errs)
			assert.Equal(t, tt.want, kinds(tokens))
		})
	}
}

func TestLex_Comments(t *testing.T) {
	tokens, errs := Lex("<test>", "1 // trailing comment\n2 /* block\nspanning lines */ 3")
	require.Empty(t, errs)
	assert.Equal(t, []token.Kind{token.DecimalInt, token.DecimalInt, token.DecimalInt}, kinds(tokens))
}

func TestLex_UnterminatedBlockComment(t *testing.T) {
	_, errs := Lex("<test>", "1 /* never closed")
	require.Len(t, errs, 1)
	assert.Equal(t, ErrUnterminatedBlockComment, errs[0].Kind)
}

func TestLex_StrayBlockCommentClose(t *testing.T) {
	tokens, errs := Lex("<test>", "1 */ 2")
	require.Len(t, errs, 1)
	assert.Equal(t, ErrStrayBlockCommentClose, errs[0].Kind)
	assert.Equal(t, []token.Kind{token.DecimalInt, token.DecimalInt}, kinds(tokens))
}

func TestLex_Identifiers(t *testing.T) {
	tokens, errs := Lex("<test>", "_ _foo foo_bar2 über func true")
	require.Empty(t, errs)
	toks := tokens[:len(tokens)-1]
	require.Len(t, toks, 6)
	assert.Equal(t, token.Underscore, toks[0].Value.Kind)
	assert.Equal(t, token.Ident, toks[1].Value.Kind)
	assert.Equal(t, "_foo", toks[1].Value.Text)
	assert.Equal(t, token.Ident, toks[2].Value.Kind)
	assert.Equal(t, token.Ident, toks[3].Value.Kind)
	assert.Equal(t, token.KwFunc, toks[4].Value.Kind)
	assert.Equal(t, token.KwTrue, toks[5].Value.Kind)
}

func TestLex_IntegerLiterals(t *testing.T) {
	tests := []struct {
		src  string
		kind token.Kind
		want uint64
	}{
		{"0b1010", token.BinaryInt, 10},
		{"0o17", token.OctalInt, 15},
		{"0xFF", token.HexInt, 255},
		{"1_000_000", token.DecimalInt, 1000000},
		{"0xFF_FF", token.HexInt, 0xFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tokens, errs := Lex("<test>", tt.src)
			require.Empty(t, errs)
			require.Len(t, tokens, 2)
			assert.Equal(t, tt.kind, tokens[0].Value.Kind)
			assert.Equal(t, tt.want, tokens[0].Value.IntValue)
		})
	}
}

func TestLex_IntegerFollowedByIdentIsAnError(t *testing.T) {
	_, errs := Lex("<test>", "123abc")
	require.Len(t, errs, 1)
	assert.Equal(t, ErrIntegerFollowedByIdent, errs[0].Kind)
}

func TestLex_FloatLiterals(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"3.14", 3.14},
		{"1e10", 1e10},
		{"1.5e-3", 1.5e-3},
		{"2f", 2.0},
		{"2F", 2.0},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tokens, errs := Lex("<test>", tt.src)
			require.Empty(t, errs)
			require.Len(t, tokens, 2)
			assert.Equal(t, token.Float, tokens[0].Value.Kind)
			assert.InDelta(t, tt.want, tokens[0].Value.FloatValue, 1e-9)
		})
	}
}

func TestLex_FloatVsRangeDisambiguation(t *testing.T) {
	// "1..10" must not be consumed as a float with trailing dots; the
	// lexer only takes the '.' as starting a fraction when a digit
	// immediately follows it.
	tokens, errs := Lex("<test>", "1..10")
	require.Empty(t, errs)
	assert.Equal(t, []token.Kind{token.DecimalInt, token.DotDot, token.DecimalInt}, kinds(tokens))
}

func TestLex_CharLiterals(t *testing.T) {
	tokens, errs := Lex("<test>", `'a' '\n' '\t' '😀'`)
	require.Empty(t, errs)
	require.Len(t, tokens, 5)
	assert.Equal(t, token.Char, tokens[0].Value.Kind)
	assert.Equal(t, 'a', tokens[0].Value.Rune)
	assert.Equal(t, token.CharEscape, tokens[1].Value.Kind)
	assert.Equal(t, '\n', tokens[1].Value.Rune)
	assert.Equal(t, token.CharEscape, tokens[2].Value.Kind)
	assert.Equal(t, '\t', tokens[2].Value.Rune)
	assert.Equal(t, token.Char, tokens[3].Value.Kind)
	assert.Equal(t, rune(0x1F600), tokens[3].Value.Rune)
}

func TestLex_CharLiteralErrors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, errs := Lex("<test>", "''")
		require.Len(t, errs, 1)
		assert.Equal(t, ErrEmptyCharLiteral, errs[0].Kind)
	})
	t.Run("multi char", func(t *testing.T) {
		_, errs := Lex("<test>", "'ab'")
		require.Len(t, errs, 1)
		assert.Equal(t, ErrMultiCharLiteral, errs[0].Kind)
	})
	t.Run("unterminated", func(t *testing.T) {
		_, errs := Lex("<test>", "'a")
		require.Len(t, errs, 1)
		assert.Equal(t, ErrUnterminatedChar, errs[0].Kind)
	})
}

func TestLex_SimpleString(t *testing.T) {
	tokens, errs := Lex("<test>", `"hello\nworld"`)
	require.Empty(t, errs)
	require.Len(t, tokens, 2)
	str := tokens[0].Value
	require.Equal(t, token.String, str.Kind)
	var text string
	for _, part := range str.Parts {
		switch part.Value.Kind {
		case token.StringChar:
			text += string(part.Value.Rune)
		case token.StringEscape:
			text += string(part.Value.Rune)
		}
	}
	assert.Equal(t, "hello\nworld", text)
}

func TestLex_UnterminatedString(t *testing.T) {
	_, errs := Lex("<test>", `"hello`)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrUnterminatedString, errs[0].Kind)
}

func TestLex_StringInterpolation(t *testing.T) {
	tokens, errs := Lex("<test>", `"sum = ${1 + 2}!"`)
	require.Empty(t, errs)
	require.Len(t, tokens, 2)
	str := tokens[0].Value
	require.Equal(t, token.String, str.Kind)

	var interp *token.Token
	for i := range str.Parts {
		if str.Parts[i].Value.Kind == token.StringInterpolation {
			interp = &str.Parts[i].Value
		}
	}
	require.NotNil(t, interp, "expected a StringInterpolation part")
	assert.Equal(t, []token.Kind{token.DecimalInt, token.Plus, token.DecimalInt}, innerKinds(interp.Parts))
}

func TestLex_NestedStringInInterpolation(t *testing.T) {
	tokens, errs := Lex("<test>", `"outer ${ "inner" } done"`)
	require.Empty(t, errs)
	str := tokens[0].Value
	var interp *token.Token
	for i := range str.Parts {
		if str.Parts[i].Value.Kind == token.StringInterpolation {
			interp = &str.Parts[i].Value
		}
	}
	require.NotNil(t, interp)
	require.Len(t, interp.Parts, 1)
	assert.Equal(t, token.String, interp.Parts[0].Value.Kind)
}

func TestLex_InterpolationWithBlockBraces(t *testing.T) {
	// The interpolation's own closing brace must not be confused with
	// braces belonging to a nested block expression.
	tokens, errs := Lex("<test>", `"${ if x { 1 } else { 2 } }"`)
	require.Empty(t, errs)
	str := tokens[0].Value
	var interp *token.Token
	for i := range str.Parts {
		if str.Parts[i].Value.Kind == token.StringInterpolation {
			interp = &str.Parts[i].Value
		}
	}
	require.NotNil(t, interp)
	assert.Equal(t, []token.Kind{
		token.KwIf, token.Ident, token.LBrace, token.DecimalInt, token.RBrace,
		token.KwElse, token.LBrace, token.DecimalInt, token.RBrace,
	}, innerKinds(interp.Parts))
}

func TestLex_EscapedInterpolationMarker(t *testing.T) {
	tokens, errs := Lex("<test>", `"literal \${not interpolated}"`)
	require.Empty(t, errs)
	str := tokens[0].Value
	foundEscape := false
	for _, part := range str.Parts {
		if part.Value.Kind == token.StringEscape && part.Value.EscapeKind == token.EscapeInterpDollar {
			foundEscape = true
		}
		assert.NotEqual(t, token.StringInterpolation, part.Value.Kind)
	}
	assert.True(t, foundEscape, "expected an EscapeInterpDollar part")
}

func TestLex_UnrecognizedCharacterRecovers(t *testing.T) {
	tokens, errs := Lex("<test>", "1 ` 2")
	require.Len(t, errs, 1)
	assert.Equal(t, ErrUnrecognizedChar, errs[0].Kind)
	assert.Equal(t, []token.Kind{token.DecimalInt, token.DecimalInt}, kinds(tokens))
}

func innerKinds(parts []token.Spanned) []token.Kind {
	out := make([]token.Kind, 0, len(parts))
	for _, p := range parts {
		out = append(out, p.Value.Kind)
	}
	return out
}
