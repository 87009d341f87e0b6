package interfaces

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTool is a single callable tool exposed over the MCP protocol.
type MCPTool interface {
	Definition() mcp.Tool
	Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
}
