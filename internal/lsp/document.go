package lsp

import (
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"kiri/internal/ast"
	"kiri/internal/lexer"
	"kiri/internal/parser"
	"kiri/internal/symbol"
	"kiri/token"
)

// document is one parsed version of an open file.
type document struct {
	uri     string
	content string
	index   *ast.LineIndex
	tokens  []token.Token // raw lexer output, before layout
	env     *symbol.Table
	tree    ast.SpannedExpr
	errs    *parser.Errors
}

func parseDocument(uri, content string) *document {
	doc := &document{
		uri:     uri,
		content: content,
		index:   ast.NewLineIndex(uri, content),
		env:     symbol.NewTable(),
		errs:    &parser.Errors{},
	}
	doc.tokens, _ = lexer.Scan(uri, content)
	doc.tree = parser.ParseSource(uri, content, doc.env, doc.errs)
	return doc
}

// boundNames lists every name introduced by a let or type binding, in
// source order.
func (d *document) boundNames() []string {
	var names []string
	seen := map[string]bool{}
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	ast.Inspect(d.tree, func(_ ast.Span, node ast.Node) bool {
		switch n := node.(type) {
		case *ast.LetBindingsExpr:
			for _, b := range n.Bindings {
				for _, id := range bindingIdents(b) {
					add(d.env.Name(id.Value))
				}
			}
		case *ast.TypeBindingsExpr:
			for _, b := range n.Bindings {
				add(d.env.Name(b.Name.Value))
				if variant, ok := b.Alias.Value.(*ast.VariantType); ok {
					for _, f := range variant.Fields {
						add(d.env.Name(f.Name.Value))
					}
				}
			}
		}
		return true
	})
	return names
}

// bindingIdents returns the identifiers a value binding introduces into
// the enclosing scope.
func bindingIdents(b *ast.ValueBinding) []ast.SpannedIdent {
	switch p := b.Name.Value.(type) {
	case *ast.IdentPattern:
		return []ast.SpannedIdent{{Span: b.Name.Span, Value: p.Name}}
	case *ast.ConstructorPattern:
		return p.Args
	case *ast.RecordPattern:
		var ids []ast.SpannedIdent
		for _, f := range p.Fields {
			if f.Value != nil {
				ids = append(ids, *f.Value)
			} else {
				ids = append(ids, f.Name)
			}
		}
		return ids
	}
	return nil
}

func (d *document) lspRange(span ast.Span) protocol.Range {
	return protocol.Range{
		Start: d.lspPosition(span.Start),
		End:   d.lspPosition(span.End),
	}
}

// lspPosition converts a byte offset into a 0-based line and a column in
// UTF-16 code units.
func (d *document) lspPosition(offset int) protocol.Position {
	pos := d.index.Position(offset)
	lineStart := pos.Offset - (pos.Column - 1)
	return protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: utf16Len(d.content[lineStart:pos.Offset]),
	}
}

func utf16Len(s string) uint32 {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return uint32(n)
}
