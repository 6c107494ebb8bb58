package parser

import (
	"strings"

	"kiri/internal/ast"
	"kiri/token"
)

// parseDeclarations parses a `let` or `type` block with its leading doc
// comment. A doc comment in front of anything else is dropped.
func (p *Parser) parseDeclarations() ast.SpannedExpr {
	start := p.start()
	comment := p.parseDocComment()

	switch p.peek().Type {
	case token.LET:
		return p.parseLetBindings(start, comment)
	case token.TYPE:
		return p.parseTypeBindings(start, comment)
	}
	return p.parseExpr()
}

// parseDocComment joins consecutive doc comment lines. It returns nil when
// there are none.
func (p *Parser) parseDocComment() *ast.Comment {
	if !p.check(token.DOC_COMMENT) {
		return nil
	}

	start := p.start()
	var lines []string
	for p.check(token.DOC_COMMENT) {
		lines = append(lines, p.advance().Text)
	}
	return &ast.Comment{
		Type:    ast.LineComment,
		Content: strings.Join(lines, "\n"),
		Span:    p.spanFrom(start),
	}
}

// continuation consumes `and` with its own doc comment. Doc comments not
// followed by `and` are left for the next production.
func (p *Parser) continuation() (*ast.Comment, bool) {
	mark := p.current
	comment := p.parseDocComment()
	if p.match(token.AND) {
		return comment, true
	}
	p.current = mark
	return nil, false
}

// declarationBody parses `in body` after a binding chain, skipping and
// reporting anything malformed in front of the `in`.
func (p *Parser) declarationBody() ast.SpannedExpr {
	skipped := p.skipExtra(token.IN)
	if p.match(token.IN) {
		return p.parseExpr()
	}
	if !skipped {
		p.unexpected(token.IN.String())
	}
	return ast.Spanning[ast.Expr](p.emptySpan(), &ast.ErrorExpr{})
}

func (p *Parser) parseLetBindings(start int, comment *ast.Comment) ast.SpannedExpr {
	p.advance()

	bindings := []*ast.ValueBinding{p.parseValueBinding(comment)}
	for {
		comment, ok := p.continuation()
		if !ok {
			break
		}
		bindings = append(bindings, p.parseValueBinding(comment))
	}
	body := p.declarationBody()

	return ast.Spanning[ast.Expr](p.spanFrom(start), &ast.LetBindingsExpr{Bindings: bindings, Body: body})
}

func (p *Parser) parseTypeBindings(start int, comment *ast.Comment) ast.SpannedExpr {
	p.advance()

	bindings := []*ast.TypeBinding{p.parseTypeBinding(comment)}
	for {
		comment, ok := p.continuation()
		if !ok {
			break
		}
		bindings = append(bindings, p.parseTypeBinding(comment))
	}
	body := p.declarationBody()

	return ast.Spanning[ast.Expr](p.spanFrom(start), &ast.TypeBindingsExpr{Bindings: bindings, Body: body})
}

// parseValueBinding parses `name args... (: type)? = body`. A lowercase name
// followed by identifiers is a curried function; an uppercase name, a record
// or a parenthesized pattern destructures the value instead.
func (p *Parser) parseValueBinding(comment *ast.Comment) *ast.ValueBinding {
	binding := &ast.ValueBinding{Comment: comment}

	switch {
	case p.check(token.IDENT) && !ast.IsConstructorName(p.peek().Text):
		name := p.ident(p.advance())
		binding.Name = ast.Spanning[ast.Pattern](name.Span, &ast.IdentPattern{Name: name.Value})
		for p.check(token.IDENT) {
			binding.Args = append(binding.Args, p.ident(p.advance()))
		}
	case p.check(token.IDENT), p.check(token.LPAREN), p.check(token.LBRACE):
		binding.Name = p.parsePattern()
	default:
		binding.Name = ast.Spanning[ast.Pattern](p.skipUnexpected("binding name"), &ast.ErrorPattern{})
	}

	if p.match(token.COLON) {
		binding.Type = p.parseType()
	} else {
		binding.Type = ast.Spanning[ast.Type](p.emptySpan(), &ast.HoleType{})
	}

	if p.expect(token.EQUALS) {
		binding.Body = p.parseExpr()
	} else {
		binding.Body = ast.Spanning[ast.Expr](p.emptySpan(), &ast.ErrorExpr{})
	}
	return binding
}
