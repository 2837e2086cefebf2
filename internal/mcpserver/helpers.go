package mcpserver

import (
	"encoding/json"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// reportResult encodes v as the JSON text of a tool result. An encoding
// failure becomes a tool error rather than an empty payload.
func reportResult(v any) *mcpsdk.CallToolResult {
	b, err := json.Marshal(v)
	if err != nil {
		return failure(fmt.Errorf("encode result: %w", err))
	}
	return textResult(string(b), false)
}

func failure(err error) *mcpsdk.CallToolResult {
	return textResult("error: "+err.Error(), true)
}

func textResult(text string, isErr bool) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
		IsError: isErr,
	}
}
