package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"kiri/internal/ast"
)

// documentSymbols lists let and type bindings in source order. Variant
// constructors and record fields become children of their type.
func documentSymbols(doc *document) []protocol.DocumentSymbol {
	symbols := []protocol.DocumentSymbol{}

	ast.Inspect(doc.tree, func(_ ast.Span, node ast.Node) bool {
		switch n := node.(type) {
		case *ast.LetBindingsExpr:
			for _, b := range n.Bindings {
				symbols = append(symbols, valueSymbols(doc, b)...)
			}
		case *ast.TypeBindingsExpr:
			for _, b := range n.Bindings {
				symbols = append(symbols, typeSymbol(doc, b))
			}
		}
		return true
	})

	return symbols
}

func valueSymbols(doc *document, b *ast.ValueBinding) []protocol.DocumentSymbol {
	kind := protocol.SymbolKindVariable
	if b.IsFunction() {
		kind = protocol.SymbolKindFunction
	}
	full := b.Name.Span.Merge(b.Body.Span)

	var symbols []protocol.DocumentSymbol
	for _, id := range bindingIdents(b) {
		name := doc.env.Name(id.Value)
		if name == "" {
			continue
		}
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:           name,
			Detail:         detail(b.Type),
			Kind:           kind,
			Range:          doc.lspRange(full),
			SelectionRange: doc.lspRange(id.Span),
		})
	}
	return symbols
}

func typeSymbol(doc *document, b *ast.TypeBinding) protocol.DocumentSymbol {
	sym := protocol.DocumentSymbol{
		Name:           doc.env.Name(b.Name.Value),
		Kind:           protocol.SymbolKindClass,
		Range:          doc.lspRange(b.Name.Span.Merge(b.Alias.Span)),
		SelectionRange: doc.lspRange(b.Name.Span),
	}

	var fields []ast.Field
	childKind := protocol.SymbolKindField
	switch alias := b.Alias.Value.(type) {
	case *ast.VariantType:
		sym.Kind = protocol.SymbolKindEnum
		childKind = protocol.SymbolKindEnumMember
		fields = alias.Fields
	case *ast.RecordType:
		sym.Kind = protocol.SymbolKindStruct
		fields = alias.Fields
	}

	for _, f := range fields {
		sym.Children = append(sym.Children, protocol.DocumentSymbol{
			Name:           doc.env.Name(f.Name.Value),
			Detail:         detail(f.Type),
			Kind:           childKind,
			Range:          doc.lspRange(f.Name.Span.Merge(f.Type.Span)),
			SelectionRange: doc.lspRange(f.Name.Span),
		})
	}
	return sym
}

// detail renders a written type annotation. Holes and missing types have
// nothing worth showing.
func detail(t ast.SpannedType) *string {
	switch t.Value.(type) {
	case nil, *ast.HoleType, *ast.ErrorType:
		return nil
	}
	return ptrString(t.Value.String())
}
