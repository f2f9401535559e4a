package gcs

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// WrapToolResult offloads a large successful JSON tool result. The stored
// copy is the result text compacted, not re-encoded, so backend payloads keep
// their key order. Error results, non-JSON text and anything that cannot be
// stored come back unchanged, so the caller still gets the backend payload.
func WrapToolResult(ctx context.Context, result *mcp.CallToolResult, toolName string) *mcp.CallToolResult {
	mgr := GetGCSManager(ctx)
	if mgr == nil || result == nil || result.IsError || len(result.Content) == 0 {
		return result
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		return result
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, []byte(text.Text)); err != nil {
		return result
	}

	tokens := estimateTokens(compact.Bytes())
	if tokens <= mgr.config.TokenThreshold {
		return result
	}

	ref, err := mgr.offload(ctx, compact.Bytes(), toolName, tokens)
	if err != nil {
		mgr.logger.Warn("Returning large result inline", "tool", toolName, "error", err)
		return result
	}

	encoded, err := json.Marshal(ref)
	if err != nil {
		return result
	}
	return mcp.NewToolResultText(string(encoded))
}
