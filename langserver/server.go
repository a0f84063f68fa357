// Package langserver exposes the parser over the Language Server Protocol:
// documents are parsed on open and on change, and the first parse error (if
// any) is published as a diagnostic with its exact source range.
package langserver

import (
	"errors"

	"github.com/dhamidi/treelang/source"
	"github.com/dhamidi/treelang/tree"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "treelang"

var log = commonlog.GetLogger("treelang.langserver")

type Server struct {
	handler   protocol.Handler
	server    *server.Server
	version   string
	indent    tree.Indent
	documents map[protocol.DocumentUri]string
}

func NewServer(version string) *Server {
	s := &Server{
		version:   version,
		indent:    tree.MustSpaces(2),
		documents: make(map[protocol.DocumentUri]string),
	}

	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		SetTrace:              s.setTrace,
		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,
	}

	s.server = server.NewServer(&s.handler, lsName, false)

	return s
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	s.indent = indentFromOptions(params.InitializationOptions)
	log.Infof("initialize: indent unit %s", s.indent)

	capabilities := s.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    intPtr(int(protocol.TextDocumentSyncKindFull)),
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

// indentFromOptions reads {"indent": "tabs"} or {"indent": <spaces>} from
// the client's initializationOptions, defaulting to two spaces.
func indentFromOptions(options any) tree.Indent {
	fields, ok := options.(map[string]any)
	if !ok {
		return tree.MustSpaces(2)
	}
	switch value := fields["indent"].(type) {
	case string:
		if value == "tabs" {
			return tree.Tabs()
		}
	case float64:
		if indent, err := tree.Spaces(int(value)); err == nil {
			return indent
		}
	}
	return tree.MustSpaces(2)
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.documents[uri] = params.TextDocument.Text
	s.publishDiagnostics(ctx, uri)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		s.documents[uri] = whole.Text
		s.publishDiagnostics(ctx, uri)
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	delete(s.documents, params.TextDocument.URI)
	return nil
}

func (s *Server) publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri) {
	content := s.documents[uri]

	diagnostics := []protocol.Diagnostic{}
	if _, err := tree.Parse(content, s.indent); err != nil {
		var parseErr *tree.Error
		if errors.As(err, &parseErr) {
			log.Debugf("diagnostic for %s: %s", uri, parseErr)
			diagnostics = append(diagnostics, diagnosticFor(content, parseErr))
		}
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func diagnosticFor(content string, err *tree.Error) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	src := lsName
	return protocol.Diagnostic{
		Range:    rangeFor(content, err),
		Severity: &severity,
		Source:   &src,
		Message:  err.Error(),
	}
}

// rangeFor converts an error's location to a protocol range. Offset errors
// cover one character; span errors cover the span's codepoints.
func rangeFor(content string, err *tree.Error) protocol.Range {
	start := err.Location()
	length := 1
	switch err.Kind {
	case tree.ErrIndentChars, tree.ErrInvalidInt, tree.ErrInvalidFloat:
		length = len([]rune(source.SpanText(content, err.Span)))
	}
	column := runeColumn(content, start)
	line := protocol.UInteger(start.Line - 1)
	return protocol.Range{
		Start: protocol.Position{Line: line, Character: protocol.UInteger(column)},
		End:   protocol.Position{Line: line, Character: protocol.UInteger(column + length)},
	}
}

// runeColumn is the codepoint column of offset within its line.
func runeColumn(content string, offset source.Offset) int {
	byteColumn := source.ByteOffsetOnLine(content, offset)
	return len([]rune(source.LineText(content, offset)[:byteColumn]))
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *protocol.TextDocumentSyncKind {
	kind := protocol.TextDocumentSyncKind(i)
	return &kind
}
