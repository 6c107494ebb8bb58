package lsp

import (
	"kiri/internal/ast"
	"kiri/token"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into the semanticTokenTypes array
// TokenModifiers is a bitmask based on semanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into semanticTokenTypes
	TokenModifiers int // bitmask
}

// collectSemanticTokens classifies the raw lexer tokens. Identifiers bound
// by a let or type declaration carry the declaration modifier.
func collectSemanticTokens(doc *document) []SemanticToken {
	var tokens []SemanticToken

	declared := declarationOffsets(doc)
	for _, tok := range doc.tokens {
		tokenType := classify(tok)
		if tokenType == "" {
			continue
		}

		modifiers := 0
		if declared[tok.Pos.Offset] {
			modifiers = 1 << indexOf("declaration", SemanticTokenModifiers)
		}
		tokens = append(tokens, makeToken(doc, tok, tokenType, modifiers)...)
	}

	return tokens
}

func classify(tok token.Token) string {
	switch {
	case tok.Type.IsKeyword():
		return "keyword"
	case tok.Type == token.IDENT:
		if ast.IsConstructorName(tok.Text) {
			return "type"
		}
		return "variable"
	case tok.Type == token.INT, tok.Type == token.BYTE, tok.Type == token.FLOAT:
		return "number"
	case tok.Type == token.STRING, tok.Type == token.CHAR:
		return "string"
	case tok.Type == token.DOC_COMMENT:
		return "comment"
	case tok.Type == token.OPERATOR, tok.Type == token.EQUALS, tok.Type == token.ARROW,
		tok.Type == token.PIPE, tok.Type == token.LAMBDA, tok.Type == token.COLON, tok.Type == token.DOT:
		return "operator"
	}
	return ""
}

func declarationOffsets(doc *document) map[int]bool {
	declared := map[int]bool{}
	ast.Inspect(doc.tree, func(_ ast.Span, node ast.Node) bool {
		switch n := node.(type) {
		case *ast.LetBindingsExpr:
			for _, b := range n.Bindings {
				for _, id := range bindingIdents(b) {
					declared[id.Span.Start] = true
				}
			}
		case *ast.TypeBindingsExpr:
			for _, b := range n.Bindings {
				declared[b.Name.Span.Start] = true
			}
		}
		return true
	})
	return declared
}

// makeToken creates a semantic token for a lexer token. Columns and
// lengths are in UTF-16 code units.
func makeToken(doc *document, tok token.Token, tokenType string, modifiers int) []SemanticToken {
	if tok.End <= tok.Pos.Offset {
		return nil
	}

	start := doc.lspPosition(tok.Pos.Offset)
	return []SemanticToken{{
		Line:           start.Line,
		StartChar:      start.Character,
		Length:         utf16Len(doc.content[tok.Pos.Offset:tok.End]),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: modifiers,
	}}
}

// encodeSemanticTokens packs tokens into the LSP wire format (using
// delta-line, delta-start compression).
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := []uint32{}
	var prevLine, prevStart uint32

	for _, st := range tokens {
		deltaLine := st.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = st.StartChar - prevStart
		} else {
			deltaStart = st.StartChar
		}

		data = append(data, deltaLine, deltaStart, st.Length, uint32(st.TokenType), uint32(st.TokenModifiers))

		prevLine = st.Line
		prevStart = st.StartChar
	}

	return data
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0 // Default to first token type if not found
}
