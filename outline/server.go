// Package outline is a language server that shows the structure of .class
// documents: document symbols for fields and methods, and a hover summary.
package outline

import (
	"fmt"
	"strings"

	"github.com/dhamidi/classread/classfile"
	"github.com/dhamidi/classread/source"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "classread"

var log = commonlog.GetLogger("classread.outline")

type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string
}

func NewServer(version string) *Server {
	s := &Server{version: version}

	s.handler = protocol.Handler{
		Initialize:                 s.initialize,
		Initialized:                s.initialized,
		Shutdown:                   s.shutdown,
		SetTrace:                   s.setTrace,
		TextDocumentDocumentSymbol: s.documentSymbol,
		TextDocumentHover:          s.hover,
	}
	s.server = server.NewServer(&s.handler, lsName, false)

	return s
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("outline server ready")
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) documentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	cf, err := Load(string(params.TextDocument.URI))
	if err != nil {
		return nil, err
	}
	return []protocol.DocumentSymbol{Symbols(cf)}, nil
}

func (s *Server) hover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	cf, err := Load(string(params.TextDocument.URI))
	if err != nil {
		return nil, err
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: Summary(cf),
		},
	}, nil
}

// Load decodes the class a document URI points at. Editors do not send
// binary documents as text, so the file is read from disk.
func Load(uri string) (*classfile.ClassFile, error) {
	if !strings.HasPrefix(uri, "jar:") {
		cf, err := classfile.ParseURL(uri)
		if err != nil {
			log.Errorf("decode %s: %s", uri, err)
			return nil, err
		}
		return cf, nil
	}

	classes, err := source.Open(uri)
	if err != nil {
		return nil, err
	}
	if len(classes) != 1 {
		return nil, fmt.Errorf("%s names %d classes, expected one", uri, len(classes))
	}
	cf, err := classfile.Decode(classes[0].Data)
	if err != nil {
		log.Errorf("decode %s: %s", uri, err)
		return nil, fmt.Errorf("%s: %w", classes[0].Name, err)
	}
	return cf, nil
}
