package mcp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dealey-labs/jfkdex/internal/domain"
)

// successResult wraps the backend's JSON payload as a single
// pretty-printed text content item.
func successResult(payload json.RawMessage) *mcp.CallToolResult {
	text := string(payload)
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, payload, "", "  "); err == nil {
		text = pretty.String()
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// failureResult renders a backend failure in-band. The operation
// description is carried in the error value and stringified only here,
// at the response boundary.
func failureResult(err error) *mcp.CallToolResult {
	msg := err.Error()
	var opErr *domain.OpError
	if errors.As(err, &opErr) {
		msg = fmt.Sprintf("Error performing %s: %v", opErr.Op, opErr.Err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
		IsError: true,
	}
}
