package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"kiri/internal/ast"
	"kiri/token"
)

var log = commonlog.GetLogger("kiri.lsp")

// Define the set of supported semantic token types (as required by the protocol)
var SemanticTokenTypes = []string{
	"type",
	"variable",
	"keyword",
	"number",
	"string",
	"operator",
	"comment",
}

// Define the set of supported semantic token modifiers (for extra tagging like declaration, readonly, etc.)
var SemanticTokenModifiers = []string{
	"declaration",
}

// KiriHandler implements the LSP server handlers for Kiri
type KiriHandler struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// NewKiriHandler creates and returns a new KiriHandler instance
func NewKiriHandler() *KiriHandler {
	return &KiriHandler{
		docs: make(map[string]*document),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *KiriHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true), // notify on open/close events
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			DocumentSymbolProvider: true,
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true), // support full-document semantic token requests
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *KiriHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("Kiri LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *KiriHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("Kiri LSP Shutdown")
	return nil
}

func (h *KiriHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *KiriHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Infof("Opened file: %s", params.TextDocument.URI)

	doc := h.update(params.TextDocument.URI, params.TextDocument.Text)
	publishDiagnostics(ctx, doc)
	return nil
}

// TextDocumentDidChange handles file change notifications from the editor.
// Only full-document sync is advertised, so the last whole-text change wins.
func (h *KiriHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Debugf("Changed file: %s", params.TextDocument.URI)

	var text *string
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = &c.Text
		case protocol.TextDocumentContentChangeEvent:
			return fmt.Errorf("incremental change to %s not supported", params.TextDocument.URI)
		}
	}
	if text == nil {
		return nil
	}

	doc := h.update(params.TextDocument.URI, *text)
	publishDiagnostics(ctx, doc)
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *KiriHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Infof("Closed file: %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.docs, params.TextDocument.URI)
	h.mu.Unlock()

	// Clear stale diagnostics for the closed file.
	if ctx.Notify != nil {
		ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         params.TextDocument.URI,
			Diagnostics: []protocol.Diagnostic{},
		})
	}
	return nil
}

// TextDocumentCompletion offers keywords, builtin type names and the names
// bound anywhere in the document.
func (h *KiriHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	doc, err := h.getOrLoad(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	items := []protocol.CompletionItem{}
	for _, kw := range token.Keywords() {
		items = append(items, completionItem(kw, protocol.CompletionItemKindKeyword))
	}
	for _, name := range ast.BuiltinNames() {
		items = append(items, completionItem(name, protocol.CompletionItemKindClass))
	}
	for _, name := range doc.boundNames() {
		kind := protocol.CompletionItemKindVariable
		if ast.IsConstructorName(name) {
			kind = protocol.CompletionItemKindClass
		}
		items = append(items, completionItem(name, kind))
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentDocumentSymbol lists the let and type bindings of a document
func (h *KiriHandler) TextDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	doc, err := h.getOrLoad(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	return documentSymbols(doc), nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *KiriHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Debugf("TextDocumentSemanticTokensFull called for: %s", params.TextDocument.URI)

	doc, err := h.getOrLoad(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(doc)),
	}, nil
}

func (h *KiriHandler) update(uri, content string) *document {
	doc := parseDocument(uri, content)
	log.Debugf("parsed %s: %d errors", uri, doc.errs.Len())

	h.mu.Lock()
	h.docs[uri] = doc
	h.mu.Unlock()
	return doc
}

// getOrLoad returns the open document for uri, reading it from disk when
// the client asks about a file it never opened.
func (h *KiriHandler) getOrLoad(ctx *glsp.Context, rawURI protocol.DocumentUri) (*document, error) {
	h.mu.RLock()
	doc, ok := h.docs[rawURI]
	h.mu.RUnlock()
	if ok {
		return doc, nil
	}

	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	doc = h.update(rawURI, string(content))
	publishDiagnostics(ctx, doc)
	return doc, nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	// Normalize to platform-specific separators
	return filepath.FromSlash(path), nil
}

func publishDiagnostics(ctx *glsp.Context, doc *document) {
	if ctx == nil || ctx.Notify == nil {
		return
	}

	diagnostics := ConvertErrors(doc)
	log.Debugf("Sending %d diagnostics for %s", len(diagnostics), doc.uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         doc.uri,
		Diagnostics: diagnostics,
	})
}

func completionItem(label string, kind protocol.CompletionItemKind) protocol.CompletionItem {
	return protocol.CompletionItem{Label: label, Kind: &kind}
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
