package parser

import (
	"kiri/internal/ast"
	"kiri/token"
)

// parseKind parses a right-associative arrow chain of atomic kinds.
func (p *Parser) parseKind() ast.Kind {
	lhs := p.parseAtomicKind()
	if p.match(token.ARROW) {
		return &ast.FunctionKind{Arg: lhs, Ret: p.parseKind()}
	}
	return lhs
}

func (p *Parser) parseAtomicKind() ast.Kind {
	switch p.peek().Type {
	case token.IDENT:
		tok := p.advance()
		switch tok.Text {
		case ast.HoleName:
			return &ast.HoleKind{}
		case "Type":
			return &ast.TypeKind{}
		case "Row":
			return &ast.RowKind{}
		}
		p.unexpectedAt(p.current-1, "Type", "Row", ast.HoleName)
		return &ast.HoleKind{}

	case token.LPAREN:
		p.advance()
		kind := p.parseKind()
		p.closeDelim(token.RPAREN)
		return kind
	}

	p.skipUnexpected("kind")
	return &ast.HoleKind{}
}

func cloneKind(k ast.Kind) ast.Kind {
	switch k := k.(type) {
	case *ast.TypeKind:
		return &ast.TypeKind{}
	case *ast.RowKind:
		return &ast.RowKind{}
	case *ast.FunctionKind:
		return &ast.FunctionKind{Arg: cloneKind(k.Arg), Ret: cloneKind(k.Ret)}
	}
	return &ast.HoleKind{}
}
