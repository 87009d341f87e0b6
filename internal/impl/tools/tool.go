// Package tools exposes the Apollo.io API as MCP tools. Each tool is a
// small struct pairing an mcp.Tool definition with a handler; the server
// composition root registers them all.
package tools

import (
	"encoding/json"
	goerrors "errors"
	"fmt"

	"apollomcp/internal/domain/errors"

	"github.com/mark3labs/mcp-go/mcp"
)

// jsonResult serializes v as the tool's text result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// errorResult converts a client error into a tool error result. The
// message prefix tells callers apart what went wrong without parsing
// free text: validation problems are fixable by the caller, unauthorized
// usually means the API key is not a master key.
func errorResult(err error) (*mcp.CallToolResult, error) {
	var validationErr *errors.ValidationError
	var unauthorizedErr *errors.UnauthorizedError
	var notFoundErr *errors.NotFoundError

	switch {
	case goerrors.As(err, &validationErr):
		return mcp.NewToolResultError("validation: " + err.Error()), nil
	case goerrors.As(err, &unauthorizedErr):
		return mcp.NewToolResultError("unauthorized: " + err.Error()), nil
	case goerrors.As(err, &notFoundErr):
		return mcp.NewToolResultError("not found: " + err.Error()), nil
	default:
		return mcp.NewToolResultError("apollo api error: " + err.Error()), nil
	}
}

// decodeArgs unmarshals the raw tool arguments into a typed query or
// request struct.
func decodeArgs(request mcp.CallToolRequest, out any) error {
	data, err := json.Marshal(request.GetArguments())
	if err != nil {
		return fmt.Errorf("failed to read arguments: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// stringArg returns the named argument as a string, or "" when absent.
func stringArg(request mcp.CallToolRequest, key string) string {
	value, _ := request.GetArguments()[key].(string)
	return value
}

// intArg returns the named argument as an int, or fallback when absent.
func intArg(request mcp.CallToolRequest, key string, fallback int) int {
	if value, ok := request.GetArguments()[key].(float64); ok {
		return int(value)
	}
	return fallback
}

// stringSliceArg returns the named argument as a []string. JSON arrays
// arrive as []any; non-string elements are skipped.
func stringSliceArg(request mcp.CallToolRequest, key string) []string {
	raw, ok := request.GetArguments()[key].([]any)
	if !ok {
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			values = append(values, s)
		}
	}
	return values
}

// mapSliceArg returns the named argument as a []map[string]any, the
// shape bulk create/update tools take their records in.
func mapSliceArg(request mcp.CallToolRequest, key string) []map[string]any {
	raw, ok := request.GetArguments()[key].([]any)
	if !ok {
		return nil
	}
	values := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			values = append(values, m)
		}
	}
	return values
}

func stringItems() mcp.PropertyOption {
	return mcp.Items(map[string]any{"type": "string"})
}

func objectItems() mcp.PropertyOption {
	return mcp.Items(map[string]any{"type": "object"})
}
