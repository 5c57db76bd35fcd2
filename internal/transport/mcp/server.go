// Package mcp exposes the archive operations as tools over the Model
// Context Protocol, on stdio or as a streamable HTTP handler.
package mcp

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/dealey-labs/jfkdex/internal/domain/search/request"
	"github.com/dealey-labs/jfkdex/internal/version"
)

// Searcher is the search use case surface the tools consume.
type Searcher interface {
	Text(ctx context.Context, req request.Text) (json.RawMessage, error)
	Vector(ctx context.Context, req request.Vector) (json.RawMessage, error)
	Metadata(ctx context.Context, req request.Metadata) (json.RawMessage, error)
}

// PageReader is the page retrieval use case surface the tools consume.
type PageReader interface {
	Text(ctx context.Context, req request.Pages) (json.RawMessage, error)
	PNG(ctx context.Context, req request.Pages) (json.RawMessage, error)
}

// Server owns the MCP server and the tool registrations.
type Server struct {
	search Searcher
	pages  PageReader
	logger *zap.Logger
	server *mcp.Server
}

// NewServer creates the MCP tool server with all five tools registered.
func NewServer(search Searcher, pages PageReader, logger *zap.Logger) *Server {
	s := &Server{
		search: search,
		pages:  pages,
		logger: logger,
	}
	s.server = mcp.NewServer(&mcp.Implementation{
		Name:    "jfkdex",
		Version: version.Version,
	}, nil)
	s.registerTools()
	return s
}

// ServeStdio serves on stdin/stdout until the context is cancelled or
// the client disconnects.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the streamable HTTP handler for this MCP server.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)
}
