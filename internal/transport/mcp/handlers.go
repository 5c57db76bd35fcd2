package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/dealey-labs/jfkdex/internal/logger"
	"github.com/dealey-labs/jfkdex/internal/metrics"
)

// Tool names exposed to MCP clients.
const (
	ToolTextSearch     = "text-search"
	ToolVectorSearch   = "vector-search"
	ToolMetadataSearch = "metadata-search"
	ToolGetPageText    = "get-page-text"
	ToolGetPagePNG     = "get-page-png"
)

// filterDoc documents the metadata filter grammar. The metadata input is
// open-shaped in the tool schema, so the grammar lives in the tool
// descriptions.
const filterDoc = `Metadata filters map a field name to {"operator": ..., "value": ...}. ` +
	`Keyword fields (link, link_id, page_id, document_type, file_name, file_number, ` +
	`formerly_withheld, from_name, originator, to_name, record_number) take eq or isNull. ` +
	`Date fields (document_date, nara_release_date, review_date) take eq, gt, gte, lt, lte ` +
	`with a YYYY-MM-DD value, between with [start, end], or isNull. ` +
	`Number fields (pages_released, page_count) take eq, gt, gte, lt, lte, between, or isNull. ` +
	`isNull takes no value.`

const commentsDoc = `The text field (comments) takes contains or isNull. `

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: ToolTextSearch,
		Description: "Full-text search over the JFK assassination records archive. " +
			"Matches the query against document and page text and returns results as JSON. " +
			filterDoc + " " + commentsDoc,
	}, s.handleTextSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: ToolVectorSearch,
		Description: "Semantic similarity search over the JFK assassination records archive. " +
			"Finds documents related to the query by meaning rather than exact wording. " +
			filterDoc + " The comments field cannot be filtered in this mode.",
	}, s.handleVectorSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: ToolMetadataSearch,
		Description: "Search the JFK assassination records archive by metadata alone, " +
			"with no query text. " + filterDoc + " " + commentsDoc,
	}, s.handleMetadataSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: ToolGetPageText,
		Description: "Retrieve the extracted text of archive pages by page identifier " +
			`(e.g. "104-10004-10213_page_9").`,
	}, s.handlePageText)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolGetPagePNG,
		Description: "Retrieve rendered PNG images of archive pages by page identifier.",
	}, s.handlePagePNG)
}

func (s *Server) handleTextSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, any, error) {
	req, err := textRequest(input)
	if err != nil {
		return s.reject(ToolTextSearch, err)
	}
	return s.invoke(ctx, ToolTextSearch, func(ctx context.Context) (json.RawMessage, error) {
		return s.search.Text(ctx, req)
	})
}

func (s *Server) handleVectorSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, any, error) {
	req, err := vectorRequest(input)
	if err != nil {
		return s.reject(ToolVectorSearch, err)
	}
	return s.invoke(ctx, ToolVectorSearch, func(ctx context.Context) (json.RawMessage, error) {
		return s.search.Vector(ctx, req)
	})
}

func (s *Server) handleMetadataSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MetadataSearchInput,
) (*mcp.CallToolResult, any, error) {
	req, err := metadataRequest(input)
	if err != nil {
		return s.reject(ToolMetadataSearch, err)
	}
	return s.invoke(ctx, ToolMetadataSearch, func(ctx context.Context) (json.RawMessage, error) {
		return s.search.Metadata(ctx, req)
	})
}

func (s *Server) handlePageText(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PagesInput,
) (*mcp.CallToolResult, any, error) {
	req, err := pagesRequest(input)
	if err != nil {
		return s.reject(ToolGetPageText, err)
	}
	return s.invoke(ctx, ToolGetPageText, func(ctx context.Context) (json.RawMessage, error) {
		return s.pages.Text(ctx, req)
	})
}

func (s *Server) handlePagePNG(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PagesInput,
) (*mcp.CallToolResult, any, error) {
	req, err := pagesRequest(input)
	if err != nil {
		return s.reject(ToolGetPagePNG, err)
	}
	return s.invoke(ctx, ToolGetPagePNG, func(ctx context.Context) (json.RawMessage, error) {
		return s.pages.PNG(ctx, req)
	})
}

// reject reports a validation failure. The raw error propagates to the
// SDK, which surfaces it to the caller; no backend call is made.
func (s *Server) reject(tool string, err error) (*mcp.CallToolResult, any, error) {
	s.logger.Debug("tool input rejected", zap.String("tool", tool), zap.Error(err))
	metrics.ToolCallsTotal.WithLabelValues(tool, "invalid").Inc()
	return nil, nil, err
}

// invoke runs one validated tool call: scopes the logger, times the
// backend call, and normalizes the outcome. A backend failure becomes an
// in-band error result with a nil Go error, so it never surfaces as a
// transport fault.
func (s *Server) invoke(
	ctx context.Context,
	tool string,
	call func(context.Context) (json.RawMessage, error),
) (*mcp.CallToolResult, any, error) {
	start := time.Now()
	lg := s.logger.With(zap.String("tool", tool))
	ctx = logger.ContextWithLogger(ctx, lg)

	res, err := call(ctx)
	if err != nil {
		metrics.RecordToolCall(tool, "error", time.Since(start).Seconds())
		return failureResult(err), nil, nil
	}

	lg.Debug("tool call completed", zap.Duration("duration", time.Since(start)))
	metrics.RecordToolCall(tool, "success", time.Since(start).Seconds())
	return successResult(res), nil, nil
}
