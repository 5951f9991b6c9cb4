package mcp

import (
	"context"
	"encoding/json"
	"errors"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"blinkdeploys/tokenscope/pkg/processing"
)

func (s *Server) registerTools() {
	s.mcpServer.AddTools(
		s.analyzeTool(),
		s.compressTool(),
		s.listModelsTool(),
	)
}

func (s *Server) analyzeTool() mcpserver.ServerTool {
	tool := mcplib.NewTool("analyze_text",
		mcplib.WithDescription("Estimate what a text costs to send to every supported LLM, before and after compression"),
		mcplib.WithString("text",
			mcplib.Required(),
			mcplib.Description("The text to analyze"),
		),
	)
	return mcpserver.ServerTool{Tool: tool, Handler: s.handleAnalyze}
}

func (s *Server) compressTool() mcpserver.ServerTool {
	tool := mcplib.NewTool("compress_text",
		mcplib.WithDescription("Compress a text losslessly enough for prompting and report the token reduction"),
		mcplib.WithString("text",
			mcplib.Required(),
			mcplib.Description("The text to compress"),
		),
	)
	return mcpserver.ServerTool{Tool: tool, Handler: s.handleCompress}
}

func (s *Server) listModelsTool() mcpserver.ServerTool {
	tool := mcplib.NewTool("list_models",
		mcplib.WithDescription("List supported models with their per-million-token prices and context windows"),
	)
	return mcpserver.ServerTool{Tool: tool, Handler: s.handleListModels}
}

func (s *Server) handleAnalyze(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}

	report, err := s.deps.Processor.Analyze(ctx, text)
	if err != nil {
		return s.toolError("analysis failed", err), nil
	}
	return jsonResult(report)
}

func (s *Server) handleCompress(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}

	result, err := s.deps.Processor.Compress(ctx, text)
	if err != nil {
		return s.toolError("compression failed", err), nil
	}
	return jsonResult(result)
}

func (s *Server) handleListModels(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	if s.deps.Catalog == nil {
		return mcplib.NewToolResultError("pricing catalog not configured"), nil
	}
	return jsonResult(map[string]any{
		"as_of":  s.deps.Catalog.AsOf().Format("2006-01-02"),
		"models": s.deps.Catalog.Tree(),
	})
}

// toolError turns an analysis error into a tool result. Unexpected errors
// are logged; expected ones only reach the client.
func (s *Server) toolError(msg string, err error) *mcplib.CallToolResult {
	switch {
	case errors.Is(err, processing.ErrEmptyInput),
		errors.Is(err, processing.ErrNoModelFits),
		errors.Is(err, processing.ErrTokenizer):
	default:
		s.logger.Error(msg, "error", err)
	}
	return mcplib.NewToolResultErrorFromErr(msg, err)
}

func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcplib.NewToolResultErrorFromErr("failed to encode result", err), nil
	}
	return mcplib.NewToolResultText(string(data)), nil
}
