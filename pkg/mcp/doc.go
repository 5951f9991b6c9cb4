// Package mcp exposes tokenscope analysis to MCP clients over stdio.
//
// Three tools are registered:
//
//   - analyze_text: full cost report for the "text" argument
//   - compress_text: compression result for the "text" argument
//   - list_models: the pricing catalog grouped by provider
//
// Tool results are JSON text. Analysis failures such as empty input or a
// text too large for every model are returned as tool errors so the
// client sees the message instead of a protocol failure.
package mcp
