package parser

import (
	"kiri/internal/ast"
	"kiri/token"
)

// parsePattern parses an atomic pattern or a constructor applied to plain
// identifiers, as in `Some x`.
func (p *Parser) parsePattern() ast.SpannedPattern {
	if p.check(token.IDENT) && p.peekAt(1).Type == token.IDENT {
		start := p.start()
		name := p.ident(p.advance())
		var args []ast.SpannedIdent
		for p.check(token.IDENT) {
			args = append(args, p.ident(p.advance()))
		}
		return ast.Spanning[ast.Pattern](p.spanFrom(start), &ast.ConstructorPattern{Name: name, Args: args})
	}
	return p.parseAtomicPattern()
}

func (p *Parser) parseAtomicPattern() ast.SpannedPattern {
	switch p.peek().Type {
	case token.IDENT:
		name := p.ident(p.advance())
		if p.isConstructor(name) {
			return ast.Spanning[ast.Pattern](name.Span, &ast.ConstructorPattern{Name: name})
		}
		return ast.Spanning[ast.Pattern](name.Span, &ast.IdentPattern{Name: name.Value})

	case token.LPAREN:
		return p.parseParenPattern()

	case token.LBRACE:
		return p.parseRecordPattern()
	}

	return ast.Spanning[ast.Pattern](p.skipUnexpected("pattern"), &ast.ErrorPattern{})
}

// parseParenPattern unwraps `(p)`. Unit and tuple patterns are rejected.
func (p *Parser) parseParenPattern() ast.SpannedPattern {
	start := p.start()
	p.advance()

	var elems []ast.SpannedPattern
	for !p.check(token.RPAREN) && !p.isAtEnd() {
		elems = append(elems, p.parsePattern())
		if !p.match(token.COMMA) {
			break
		}
	}
	p.closeDelim(token.RPAREN)
	span := p.spanFrom(start)

	switch len(elems) {
	case 0:
		p.unsupported(span, "unit patterns")
	case 1:
		return elems[0]
	default:
		p.unsupported(span, "tuple patterns")
	}
	return ast.Spanning[ast.Pattern](span, &ast.ErrorPattern{})
}

// parseRecordPattern splits fields by case: a bare uppercase name selects a
// type component, anything else binds a value component.
func (p *Parser) parseRecordPattern() ast.SpannedPattern {
	start := p.start()
	p.advance()

	record := &ast.RecordPattern{}
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		name, ok := p.consumeIdent("field name")
		if !ok {
			break
		}

		field := ast.PatternField{Name: name}
		if p.match(token.EQUALS) {
			if binder, ok := p.consumeIdent("binding name"); ok {
				field.Value = &binder
			}
		}

		if field.Value == nil && p.isConstructor(name) {
			record.Types = append(record.Types, field)
		} else {
			record.Fields = append(record.Fields, field)
		}

		if !p.match(token.COMMA) {
			break
		}
	}
	p.closeDelim(token.RBRACE)

	return ast.Spanning[ast.Pattern](p.spanFrom(start), record)
}
