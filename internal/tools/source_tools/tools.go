package source_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/curator/internal/curation"
	"github.com/teemow/curator/internal/server"
	"github.com/teemow/curator/internal/tools/common"
)

// Argument limits.
const (
	maxIdentifierLength = 500
	maxTitleLength      = 200
)

// RegisterSourceTools registers the source management tools with the MCP server
func RegisterSourceTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	addSourceTool := mcp.NewTool("addSource",
		mcp.WithDescription("Add a new content source (blog URL, single article URL, or newsletter sender email) to the tracked sources list"),
		mcp.WithString("type",
			mcp.Required(),
			mcp.Description("Type of source: 'blog', 'article', or 'newsletter'"),
		),
		mcp.WithString("identifier",
			mcp.Required(),
			mcp.Description("URL for blog/article, or sender email for newsletter"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Human-readable name for this source"),
		),
	)

	s.AddTool(addSourceTool, common.InstrumentedToolHandlerWithCollection("addSource", "sources", "add", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleAddSource(ctx, request, sc)
		}))

	listSourcesTool := mcp.NewTool("listSources",
		mcp.WithDescription("List all tracked content sources with optional type filter"),
		mcp.WithString("type",
			mcp.Description("Filter by source type ('blog', 'article', 'newsletter'). Omit to list all."),
		),
	)

	s.AddTool(listSourcesTool, common.InstrumentedToolHandlerWithCollection("listSources", "sources", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListSources(ctx, request, sc)
		}))

	removeSourceTool := mcp.NewTool("removeSource",
		mcp.WithDescription("Remove a tracked content source by ID"),
		mcp.WithString("sourceId",
			mcp.Required(),
			mcp.Description("ID of the source to remove"),
		),
	)

	s.AddTool(removeSourceTool, common.InstrumentedToolHandlerWithCollection("removeSource", "sources", "remove", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleRemoveSource(ctx, request, sc)
		}))

	return nil
}

func handleAddSource(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	typeArg, err := common.RequiredString(args, "type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sourceType := curation.SourceType(typeArg)
	if !sourceType.IsValid() {
		return mcp.NewToolResultError(fmt.Sprintf("invalid source type %q, must be one of: blog, article, newsletter", typeArg)), nil
	}

	identifier, err := common.RequiredString(args, "identifier")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := common.ValidateMaxLength("identifier", identifier, maxIdentifierLength); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	title, err := common.RequiredString(args, "title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := common.ValidateMaxLength("title", title, maxTitleLength); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	source, status, err := sc.Collections().AddSource(ctx, curation.NewSource{
		Type:       sourceType,
		Identifier: identifier,
		Title:      title,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to add source: %v", err)), nil
	}

	result, err := json.Marshal(map[string]interface{}{
		"id":         source.ID,
		"type":       source.Type,
		"identifier": source.Identifier,
		"title":      source.Title,
		"status":     status,
		"addedAt":    source.AddedAt,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(result)), nil
}

func handleListSources(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	filterType := common.OptionalString(args, "type")
	if filterType != "" && !curation.SourceType(filterType).IsValid() {
		return mcp.NewToolResultError(fmt.Sprintf("invalid source type %q, must be one of: blog, article, newsletter", filterType)), nil
	}

	sources, err := sc.Collections().Sources(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list sources: %v", err)), nil
	}

	filtered := sources
	if filterType != "" {
		filtered = make([]curation.Source, 0, len(sources))
		for _, s := range sources {
			if s.Type == curation.SourceType(filterType) {
				filtered = append(filtered, s)
			}
		}
	}

	reportedFilter := filterType
	if reportedFilter == "" {
		reportedFilter = "all"
	}

	summaries := make([]map[string]interface{}, 0, len(filtered))
	for _, s := range filtered {
		summary := map[string]interface{}{
			"id":         s.ID,
			"type":       s.Type,
			"identifier": s.Identifier,
			"title":      s.Title,
			"addedAt":    s.AddedAt,
		}
		if s.LastScannedAt != "" {
			summary["lastScannedAt"] = s.LastScannedAt
		}
		summaries = append(summaries, summary)
	}

	result, err := json.Marshal(map[string]interface{}{
		"filterType":  reportedFilter,
		"resultCount": len(summaries),
		"sources":     summaries,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(result)), nil
}

func handleRemoveSource(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	sourceID, err := common.RequiredString(args, "sourceId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	source, status, err := sc.Collections().RemoveSource(ctx, sourceID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to remove source: %v", err)), nil
	}

	title := "unknown"
	if source != nil {
		title = source.Title
	}

	result, err := json.Marshal(map[string]interface{}{
		"sourceId": sourceID,
		"title":    title,
		"status":   status,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(result)), nil
}
