/*
File    : spindle/parser/declarations.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Implements the ten declaration forms dispatched by Parser.declFns:
import, let/external let, func/external func, type alias, struct,
enum, namespace, interface, impl/impl-for, and the three special
member forms nested inside struct/enum/interface bodies.
*/
package parser

import (
	"github.com/spindle-lang/spindle/ast"
	"github.com/spindle-lang/spindle/span"
	"github.com/spindle-lang/spindle/token"
)

// parseImport is `import [.|..] path (/ path)* [with { sel (as alias)?, ... }]`.
func (p *Parser) parseImport(vis ast.Visibility) ast.Declaration {
	start := p.view.HereSpan()
	p.view.Advance() // import
	root := ast.ImportRootPackage
	if p.view.Check(token.DotDot) {
		p.view.Advance()
		root = ast.ImportRootParent
	} else if p.view.Check(token.Dot) {
		p.view.Advance()
		root = ast.ImportRootCurrent
	}
	var path []ast.Identifier
	for {
		path = append(path, p.parseIdentifier("import path"))
		if !p.view.Check(token.Slash) {
			break
		}
		p.view.Advance()
		if !p.view.Check(token.Ident) {
			break // trailing slash allowed
		}
	}
	end := path[len(path)-1].Span
	var selected []ast.ImportSelector
	if p.view.Check(token.KwWith) {
		p.view.Advance()
		p.expect(token.LBrace, "import selection")
		for !p.view.Check(token.RBrace) && !p.view.AtEnd() {
			name := p.parseIdentifier("import selection")
			var alias *ast.Identifier
			if p.view.Check(token.KwAs) {
				p.view.Advance()
				a := p.parseIdentifier("import alias")
				alias = &a
			}
			selected = append(selected, ast.ImportSelector{Name: name, Alias: alias})
			if !p.view.Check(token.Comma) {
				break
			}
			p.view.Advance()
		}
		closer, _ := p.expect(token.RBrace, "import selection")
		end = closer.Span
	}
	return &ast.Import{Visibility: vis, Root: root, Path: path, Selected: selected, Span: span.Combine(start, end)}
}

// parseLet is `let [mut] pattern [: Type] = value`.
func (p *Parser) parseLet(vis ast.Visibility) ast.Declaration {
	start := p.view.HereSpan()
	p.view.Advance() // let
	mutable := false
	if p.view.Check(token.KwMut) {
		p.view.Advance()
		mutable = true
	}
	pat := p.parsePattern()
	var typ ast.Type
	end := spanOfPattern(pat)
	if p.view.Check(token.Colon) {
		p.view.Advance()
		typ = p.parseType()
		end = spanOfType(typ)
	}
	var value ast.Expression
	if _, ok := p.expect(token.Eq, "let declaration"); ok {
		value = p.parseExpr()
		end = spanOfExpr(value)
	}
	return &ast.Let{Visibility: vis, Mutable: mutable, Pattern: pat, Type: typ, Value: value, Span: span.Combine(start, end)}
}

// parseExternal dispatches `external let ...` / `external func ...`,
// which never carry a value/body.
func (p *Parser) parseExternal(vis ast.Visibility) ast.Declaration {
	start := p.view.HereSpan()
	kw := p.view.Advance() // external
	switch p.view.Peek().Kind {
	case token.KwLet:
		p.view.Advance()
		mutable := false
		if p.view.Check(token.KwMut) {
			p.view.Advance()
			mutable = true
		}
		pat := p.parsePattern()
		var typ ast.Type
		end := spanOfPattern(pat)
		if p.view.Check(token.Colon) {
			p.view.Advance()
			typ = p.parseType()
			end = spanOfType(typ)
		}
		if p.view.Check(token.Eq) {
			got := p.view.Peek()
			p.addError(newError(got.Span, "external let declaration", "an external let cannot carry a value"))
		}
		return &ast.ExternalLet{Visibility: vis, Mutable: mutable, Pattern: pat, Type: typ, Span: span.Combine(start, end)}
	case token.KwFunc:
		p.view.Advance()
		name := p.parseIdentifier("external func declaration")
		generics := p.parseGenericParams()
		p.expect(token.LParen, "external func declaration")
		params, closer := p.parseParams(true)
		end := closer.Span
		var ret ast.Type
		if p.view.Check(token.Colon) {
			p.view.Advance()
			ret = p.parseType()
			end = spanOfType(ret)
		}
		if p.view.Check(token.Arrow) {
			got := p.view.Peek()
			p.addError(newError(got.Span, "external func declaration", "an external func cannot carry a body"))
		}
		return &ast.ExternalFunc{Visibility: vis, Name: name, Generics: generics, Params: params, ReturnType: ret, Span: span.Combine(start, end)}
	default:
		got := p.view.Peek()
		p.addError(newError(got.Span, "external declaration", "expected 'let' or 'func', found %s", got.Kind))
		return &ast.ExternalLet{Visibility: vis, Span: span.Combine(start, kw.Span)}
	}
}

// parseFunc is `func name[<G>](params)[: Type] -> body`.
func (p *Parser) parseFunc(vis ast.Visibility) ast.Declaration {
	start := p.view.HereSpan()
	fn, _ := p.parseFuncHeadAndOptionalBody(start, true)
	fn.Visibility = vis
	return fn
}

// parseFuncHeadAndOptionalBody parses the shared `func name[<G>](params)
// [: Type]` head, then an arrow body if present. requireBody controls
// whether a missing body is reported as an error (true for a top-level or
// struct/enum func; false inside an interface, where it is abstract).
func (p *Parser) parseFuncHeadAndOptionalBody(start span.Span, requireBody bool) (*ast.Func, bool) {
	p.view.Advance() // func
	name := p.parseIdentifier("func declaration")
	generics := p.parseGenericParams()
	p.expect(token.LParen, "func declaration")
	params, _ := p.parseParams(true)
	var ret ast.Type
	if p.view.Check(token.Colon) {
		p.view.Advance()
		ret = p.parseType()
	}
	var body ast.Expression
	hadBody := false
	if p.view.Check(token.Arrow) {
		p.view.Advance()
		body = p.parseExpr()
		hadBody = true
	} else if requireBody {
		got := p.view.Peek()
		p.addError(newError(got.Span, "func declaration", "expected '->' introducing the function body, found %s", got.Kind))
	} else if ret == nil {
		got := p.view.Peek()
		p.addError(newError(got.Span, "interface func member", "an interface function needs a return type, a body, or both"))
	}
	return &ast.Func{Name: name, Generics: generics, Params: params, ReturnType: ret, Body: body, Span: span.Combine(start, p.view.HereSpan())}, hadBody
}

// parseTypeAlias is `type Name[<G>] = Value`.
func (p *Parser) parseTypeAlias(vis ast.Visibility) ast.Declaration {
	start := p.view.HereSpan()
	p.view.Advance() // type
	name := p.parseIdentifier("type alias")
	generics := p.parseGenericParams()
	if _, ok := p.expect(token.Eq, "type alias"); !ok {
		return &ast.TypeAlias{Visibility: vis, Name: name, Generics: generics, Span: span.Combine(start, p.view.HereSpan())}
	}
	value := p.parseType()
	return &ast.TypeAlias{Visibility: vis, Name: name, Generics: generics, Value: value, Span: span.Combine(start, p.view.HereSpan())}
}

// parseStructFields consumes an optional `(name: Type [= default], ...)`
// clause; a nil return (clause omitted) is distinct from a
// present-but-empty clause, which the at-least-one-field invariant
// rejects.
func (p *Parser) parseStructFields() []ast.StructField {
	if !p.view.Check(token.LParen) {
		return nil
	}
	p.view.Advance()
	fields := []ast.StructField{}
	for !p.view.Check(token.RParen) && !p.view.AtEnd() {
		start := p.view.HereSpan()
		name := p.parseIdentifier("struct field")
		p.expect(token.Colon, "struct field")
		typ := p.parseType()
		var dflt ast.Expression
		if p.view.Check(token.Eq) {
			p.view.Advance()
			dflt = p.parseExpr()
		}
		fields = append(fields, ast.StructField{Name: name, Type: typ, Default: dflt, Span: span.Combine(start, p.view.HereSpan())})
		if !p.view.Check(token.Comma) {
			break
		}
		p.view.Advance()
	}
	p.expect(token.RParen, "struct field list")
	if len(fields) == 0 {
		got := p.view.HereSpan()
		p.addError(newError(got, "struct field list", "a struct's field clause must name at least one field"))
	}
	return fields
}

// parseStruct is `struct Name[<G>][(fields)] [{ members }]`.
func (p *Parser) parseStruct(vis ast.Visibility) ast.Declaration {
	start := p.view.HereSpan()
	p.view.Advance() // struct
	name := p.parseIdentifier("struct declaration")
	generics := p.parseGenericParams()
	fields := p.parseStructFields()
	members := p.parseOptionalMemberBody(true)
	return &ast.Struct{Visibility: vis, Name: name, Generics: generics, Fields: fields, Members: members, Span: span.Combine(start, p.view.HereSpan())}
}

// parseEnum is `enum Name[<G>] { Variant[(fields)], ... [members] }`.
func (p *Parser) parseEnum(vis ast.Visibility) ast.Declaration {
	start := p.view.HereSpan()
	p.view.Advance() // enum
	name := p.parseIdentifier("enum declaration")
	generics := p.parseGenericParams()
	p.expect(token.LBrace, "enum declaration")
	var variants []ast.EnumVariant
	var members []ast.Member
	for !p.view.Check(token.RBrace) && !p.view.AtEnd() {
		if p.isMemberStart() {
			members = append(members, p.parseMember(true))
			continue
		}
		vstart := p.view.HereSpan()
		vname := p.parseIdentifier("enum variant")
		vfields := p.parseStructFields()
		variants = append(variants, ast.EnumVariant{Name: vname, Fields: vfields, Span: span.Combine(vstart, p.view.HereSpan())})
		if !p.view.Check(token.Comma) {
			break
		}
		p.view.Advance()
	}
	p.expect(token.RBrace, "enum declaration")
	if len(variants) == 0 {
		p.addError(newError(start, "enum declaration", "an enum must declare at least one variant"))
	}
	return &ast.Enum{Visibility: vis, Name: name, Generics: generics, Variants: variants, Members: members, Span: span.Combine(start, p.view.HereSpan())}
}

// parseNamespace is the top-level `namespace Name { members }` form.
func (p *Parser) parseNamespace(vis ast.Visibility) ast.Declaration {
	start := p.view.HereSpan()
	p.view.Advance() // namespace
	name := p.parseIdentifier("namespace declaration")
	members := p.parseMemberBody(true)
	return &ast.Namespace{Visibility: vis, Name: name, Members: members, Span: span.Combine(start, p.view.HereSpan())}
}

// parseInterface is `interface [mut] Name[<G>] [: Super, ...] { members }`,
// whose function/let members may leave the body/value abstract.
func (p *Parser) parseInterface(vis ast.Visibility) ast.Declaration {
	start := p.view.HereSpan()
	p.view.Advance() // interface
	mutable := false
	if p.view.Check(token.KwMut) {
		p.view.Advance()
		mutable = true
	}
	name := p.parseIdentifier("interface declaration")
	generics := p.parseGenericParams()
	var supers []ast.Type
	if p.view.Check(token.Colon) {
		p.view.Advance()
		for {
			supers = append(supers, p.parseType())
			if !p.view.Check(token.Comma) {
				break
			}
			p.view.Advance()
		}
	}
	members := p.parseMemberBody(false)
	return &ast.Interface{Visibility: vis, Mutable: mutable, Name: name, Generics: generics, SuperInterfaces: supers, Members: members, Span: span.Combine(start, p.view.HereSpan())}
}

// parseImpl disambiguates `impl ... Ident for Type { ... }` (ImplFor)
// from `impl ... Type { ... }` (Impl) by speculatively parsing a type
// reference and checking whether `for` follows.
func (p *Parser) parseImpl() ast.Declaration {
	start := p.view.HereSpan()
	p.view.Advance() // impl
	generics := p.parseGenericParams()
	mutable := false
	if p.view.Check(token.KwMut) {
		p.view.Advance()
		mutable = true
	}
	typ := p.parseType()
	if p.view.Check(token.KwFor) {
		p.view.Advance()
		ref, ok := typ.(*ast.ReferenceType)
		var name ast.Identifier
		var args []ast.Type
		if ok {
			name = ref.Name
			args = ref.GenericArgs
		} else {
			got := p.view.HereSpan()
			p.addError(newError(got, "impl-for declaration", "expected an interface name before 'for'"))
		}
		target := p.parseType()
		members := p.parseMemberBody(true)
		return &ast.ImplFor{Generics: generics, Mutable: mutable, Type: target, ForInterfaceName: name, ForInterfaceArgs: args, Members: members, Span: span.Combine(start, p.view.HereSpan())}
	}
	members := p.parseMemberBody(true)
	return &ast.Impl{Generics: generics, Mutable: mutable, Type: typ, Members: members, Span: span.Combine(start, p.view.HereSpan())}
}

// parseMemberBody expects and parses a `{ member* }` body where every
// member's func/let must be complete (requireBody true) or may be left
// abstract (requireBody false, interfaces only).
func (p *Parser) parseMemberBody(requireBody bool) []ast.Member {
	p.expect(token.LBrace, "member body")
	var members []ast.Member
	for !p.view.Check(token.RBrace) && !p.view.AtEnd() {
		before := p.view.pos
		members = append(members, p.parseMember(requireBody))
		if p.view.pos == before {
			p.view.Advance()
		}
	}
	p.expect(token.RBrace, "member body")
	return members
}

// parseOptionalMemberBody is like parseMemberBody but the `{ ... }` clause
// itself may be entirely omitted (structs with no members).
func (p *Parser) parseOptionalMemberBody(requireBody bool) []ast.Member {
	if !p.view.Check(token.LBrace) {
		return nil
	}
	return p.parseMemberBody(requireBody)
}

// isMemberStart reports whether the current token begins a member form,
// used by parseEnum to tell a variant name apart from a trailing member
// section mixed into the same braces.
func (p *Parser) isMemberStart() bool {
	switch p.view.Peek().Kind {
	case token.KwPublic, token.KwInternal, token.KwPrivate,
		token.KwLet, token.KwExternal, token.KwFunc, token.KwNamespace, token.KwImpl:
		return true
	default:
		return false
	}
}

// parseMember parses one struct/enum/interface body element: a regular
// declaration (let/func/external let/external func) or one of the three
// special forms.
func (p *Parser) parseMember(requireBody bool) ast.Member {
	switch p.view.Peek().Kind {
	case token.KwNamespace:
		start := p.view.HereSpan()
		p.view.Advance()
		members := p.parseMemberBody(requireBody)
		return &ast.NamespaceMember{Members: members, Span: span.Combine(start, p.view.HereSpan())}
	case token.KwImpl:
		return p.parseImplMember(requireBody)
	default:
		vis := p.parseVisibility()
		return p.parseRegularMember(vis, requireBody)
	}
}

// parseImplMember distinguishes `impl mut { members }` from
// `impl [<G>] IName[<args>] { members }`: `mut` is a
// keyword and can never start an interface name, so a single token of
// lookahead after any generic parameter list suffices.
func (p *Parser) parseImplMember(requireBody bool) ast.Member {
	start := p.view.HereSpan()
	p.view.Advance() // impl
	generics := p.parseGenericParams()
	if p.view.Check(token.KwMut) {
		p.view.Advance()
		members := p.parseMemberBody(requireBody)
		return &ast.ImplMutMember{Members: members, Span: span.Combine(start, p.view.HereSpan())}
	}
	name := p.parseIdentifier("inline interface implementation")
	var args []ast.Type
	if p.view.Check(token.Lt) {
		p.view.Advance()
		args = p.parseTypeList(token.Gt)
		p.expect(token.Gt, "inline interface implementation generic arguments")
	}
	members := p.parseMemberBody(requireBody)
	return &ast.ImplInterfaceMember{Generics: generics, InterfaceName: name, GenericArgs: args, Members: members, Span: span.Combine(start, p.view.HereSpan())}
}

// parseRegularMember parses a let/external let/func/external func member,
// allowing an abstract func (no body) or abstract let (no value) only
// when requireBody is false (interface bodies only).
func (p *Parser) parseRegularMember(vis ast.Visibility, requireBody bool) ast.Member {
	start := p.view.HereSpan()
	switch p.view.Peek().Kind {
	case token.KwLet:
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
		if p.view.Check(token.Eq) {
			p.view.Advance()
			value := p.parseExpr()
			return &ast.Let{Visibility: vis, Mutable: mutable, Pattern: pat, Type: typ, Value: value, Span: span.Combine(start, p.view.HereSpan())}
		}
		if requireBody {
			got := p.view.HereSpan()
			p.addError(newError(got, "let member", "expected '=' introducing the let value, found %s", p.view.Peek().Kind))
		}
		return &ast.ExternalLet{Visibility: vis, Mutable: mutable, Pattern: pat, Type: typ, Span: span.Combine(start, p.view.HereSpan())}
	case token.KwExternal:
		return p.parseExternal(vis)
	case token.KwFunc:
		fn, _ := p.parseFuncHeadAndOptionalBody(start, requireBody)
		fn.Visibility = vis
		return fn
	default:
		got := p.view.Peek()
		p.addError(newError(got.Span, "member", "expected a member declaration, found %s", got.Kind))
		p.view.Advance()
		return &ast.ExternalLet{Visibility: vis, Span: span.Combine(start, p.view.HereSpan())}
	}
}
