package mcp

import (
	"context"
	"io"
	"log/slog"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"blinkdeploys/tokenscope/pkg/catalog"
	"blinkdeploys/tokenscope/pkg/processing"
)

// Deps are the collaborators the MCP tools call into.
type Deps struct {
	Processor *processing.Processor
	Catalog   *catalog.Catalog
}

// Server wraps an MCP server with the tokenscope tools registered.
type Server struct {
	mcpServer *mcpserver.MCPServer
	deps      Deps
	logger    *slog.Logger
}

// NewServer creates a server advertising name and version to clients.
func NewServer(name, version string, deps Deps) *Server {
	s := &Server{
		mcpServer: mcpserver.NewMCPServer(name, version,
			mcpserver.WithToolCapabilities(false),
			mcpserver.WithRecovery(),
		),
		deps:   deps,
		logger: slog.Default().With("component", "mcp"),
	}
	s.registerTools()
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcpServer
}

// ServeStdio serves the protocol on in and out until ctx is cancelled or
// in is closed.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := mcpserver.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))

	s.logger.Info("serving MCP over stdio")
	err := stdio.Listen(ctx, in, out)
	if ctx.Err() != nil {
		return nil
	}
	return err
}
