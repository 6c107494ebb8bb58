package parser

import (
	"kiri/internal/ast"
	"kiri/token"
)

// parseType parses an application-level type, optionally followed by an
// arrow. Arrows associate to the right.
func (p *Parser) parseType() ast.SpannedType {
	start := p.start()
	lhs := p.parseAppType()
	if !p.match(token.ARROW) {
		return lhs
	}
	ret := p.parseType()
	return ast.Spanning[ast.Type](p.spanFrom(start), &ast.FunctionType{Args: []ast.SpannedType{lhs}, Ret: ret})
}

func (p *Parser) parseAppType() ast.SpannedType {
	start := p.start()
	head := p.parseAtomicType()

	var args []ast.SpannedType
	for p.startsAtomicType() {
		args = append(args, p.parseAtomicType())
	}
	if len(args) == 0 {
		return head
	}
	return ast.Spanning[ast.Type](p.spanFrom(start), &ast.AppType{Head: head, Args: args})
}

func (p *Parser) startsAtomicType() bool {
	switch p.peek().Type {
	case token.IDENT, token.LPAREN, token.LBRACE:
		return true
	}
	return false
}

func (p *Parser) parseAtomicType() ast.SpannedType {
	switch p.peek().Type {
	case token.LPAREN:
		if p.peekAt(1).Type == token.ARROW && p.peekAt(2).Type == token.RPAREN {
			start := p.start()
			p.current += 3
			return ast.Spanning[ast.Type](p.spanFrom(start), &ast.BuiltinType{Builtin: ast.BuiltinFunction})
		}
		return p.parseParenType()

	case token.IDENT:
		tok := p.advance()
		span := tokenSpan(tok)
		if b, ok := ast.LookupBuiltin(tok.Text); ok {
			return ast.Spanning[ast.Type](span, &ast.BuiltinType{Builtin: b})
		}
		if tok.Text == ast.HoleName {
			return ast.Spanning[ast.Type](span, &ast.HoleType{})
		}
		name := p.env.Intern(tok.Text)
		if ast.IsConstructorName(tok.Text) {
			return ast.Spanning[ast.Type](span, &ast.IdentType{Name: name})
		}
		return ast.Spanning[ast.Type](span, &ast.GenericType{Name: name, Kind: &ast.HoleKind{}})

	case token.LBRACE:
		return p.parseRecordType()
	}

	return ast.Spanning[ast.Type](p.skipUnexpected("type"), &ast.ErrorType{})
}

// parseParenType handles `()` (unit), `(t)` and the unsupported tuple types.
func (p *Parser) parseParenType() ast.SpannedType {
	start := p.start()
	p.advance()

	var elems []ast.SpannedType
	for !p.check(token.RPAREN) && !p.isAtEnd() {
		elems = append(elems, p.parseType())
		if !p.match(token.COMMA) {
			break
		}
	}
	p.closeDelim(token.RPAREN)
	span := p.spanFrom(start)

	switch len(elems) {
	case 0:
		return ast.Spanning[ast.Type](span, &ast.RecordType{})
	case 1:
		return elems[0]
	}
	p.unsupported(span, "tuple types")
	return ast.Spanning[ast.Type](span, &ast.ErrorType{})
}

func (p *Parser) parseRecordType() ast.SpannedType {
	start := p.start()
	p.advance()

	var fields []ast.Field
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		name, ok := p.consumeIdent("field name")
		if !ok || !p.expect(token.COLON) {
			break
		}
		fields = append(fields, ast.Field{Name: name, Type: p.parseType()})
		if !p.match(token.COMMA) {
			break
		}
	}
	p.closeDelim(token.RBRACE)

	return ast.Spanning[ast.Type](p.spanFrom(start), &ast.RecordType{Fields: fields})
}

// parseTypeBinding parses `Name params = body` after `type` or `and`.
func (p *Parser) parseTypeBinding(comment *ast.Comment) *ast.TypeBinding {
	name, _ := p.consumeIdent("type name")
	binding := &ast.TypeBinding{Comment: comment, Name: name, Params: p.parseTypeParams()}

	if !p.expect(token.EQUALS) {
		binding.Alias = ast.Spanning[ast.Type](p.emptySpan(), &ast.ErrorType{})
		return binding
	}

	wrapped := p.match(token.OPEN_BLOCK)
	if p.check(token.PIPE) {
		binding.Alias = p.parseVariant(name, binding.Params)
	} else {
		binding.Alias = p.parseType()
	}
	if wrapped {
		p.closeDelim(token.CLOSE_BLOCK)
	}
	return binding
}

// parseTypeParams parses generic parameters, either bare `a` or kinded
// `(f : Type -> Type)`.
func (p *Parser) parseTypeParams() []ast.Spanned[*ast.GenericType] {
	var params []ast.Spanned[*ast.GenericType]
	for {
		switch {
		case p.check(token.IDENT):
			tok := p.advance()
			params = append(params, ast.Spanning(tokenSpan(tok), &ast.GenericType{
				Name: p.env.Intern(tok.Text),
				Kind: &ast.HoleKind{},
			}))

		case p.check(token.LPAREN) && p.peekAt(1).Type == token.IDENT && p.peekAt(2).Type == token.COLON:
			start := p.start()
			p.advance()
			name := p.env.Intern(p.advance().Text)
			p.advance()
			kind := p.parseKind()
			p.closeDelim(token.RPAREN)
			params = append(params, ast.Spanning(p.spanFrom(start), &ast.GenericType{Name: name, Kind: kind}))

		default:
			return params
		}
	}
}

// parseVariant desugars `| Ctor args...` alternatives. Each constructor
// becomes a field whose type is the function from its arguments to the
// declared type applied to its parameters.
func (p *Parser) parseVariant(name ast.SpannedIdent, params []ast.Spanned[*ast.GenericType]) ast.SpannedType {
	start := p.start()

	var fields []ast.Field
	for p.match(token.PIPE) {
		ctorStart := p.start()
		ctor, _ := p.consumeIdent("constructor name")

		var args []ast.SpannedType
		for p.startsAtomicType() {
			args = append(args, p.parseAtomicType())
		}

		span := p.spanFrom(ctorStart)
		fields = append(fields, ast.Field{
			Name: ctor,
			Type: ast.NewFunctionType(span, args, selfType(span, name, params)),
		})
	}

	return ast.Spanning[ast.Type](p.spanFrom(start), &ast.VariantType{Fields: fields})
}

// selfType is the declared type applied to its own parameters. The nodes
// are synthesized, so they all take span, the span of the constructor they
// belong to. Every call builds fresh nodes so no subtree is shared.
func selfType(span ast.Span, name ast.SpannedIdent, params []ast.Spanned[*ast.GenericType]) ast.SpannedType {
	head := ast.Spanning[ast.Type](span, &ast.IdentType{Name: name.Value})
	if len(params) == 0 {
		return head
	}

	args := make([]ast.SpannedType, len(params))
	for i, param := range params {
		args[i] = ast.Spanning[ast.Type](span, &ast.GenericType{Name: param.Value.Name, Kind: cloneKind(param.Value.Kind)})
	}
	return ast.Spanning[ast.Type](span, &ast.AppType{Head: head, Args: args})
}
