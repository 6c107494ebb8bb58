package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	kirierrors "kiri/internal/errors"
)

// ConvertErrors transforms every entry of the document's error sink into an
// LSP diagnostic. Lexical and layout problems arrive through the same sink,
// so the source tag comes from the diagnostic code's category.
func ConvertErrors(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	for _, err := range doc.errs.List() {
		compiled := kirierrors.FromParseError(err, doc.index)

		rng := doc.lspRange(err.Span)
		if err.Span.Len() == 0 {
			// Give zero-width errors something the editor can underline.
			rng.End.Character++
		}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    rng,
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Code:     &protocol.IntegerOrString{Value: compiled.Code},
			Source:   ptrString(diagnosticSource(compiled.Code)),
			Message:  compiled.Message,
		})
	}

	return diagnostics
}

func diagnosticSource(code string) string {
	switch kirierrors.GetErrorCategory(code) {
	case "Lexer":
		return "kiri-lexer"
	case "Layout":
		return "kiri-layout"
	default:
		return "kiri-parser"
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
