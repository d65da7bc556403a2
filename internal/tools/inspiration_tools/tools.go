package inspiration_tools

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
	maxTitleLength       = 300
	maxDescriptionLength = 1000
	maxURLLength         = 500
	minScore             = 1
	maxScore             = 10
	maxListLimit         = 100
)

// RegisterInspirationTools registers the inspiration tools with the MCP server
func RegisterInspirationTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	addInspirationTool := mcp.NewTool("addInspiration",
		mcp.WithDescription("Store a new inspiration entry with title, description, URL, score, and source reference"),
		mcp.WithString("sourceId",
			mcp.Required(),
			mcp.Description("ID of the parent source"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Title of the inspiration"),
		),
		mcp.WithString("description",
			mcp.Required(),
			mcp.Description("Brief summary of the content"),
		),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("URL to the original content"),
		),
		mcp.WithNumber("score",
			mcp.Required(),
			mcp.Description("Relevance score 1-10 based on user interests"),
		),
	)

	s.AddTool(addInspirationTool, common.InstrumentedToolHandlerWithCollection("addInspiration", "inspirations", "add", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleAddInspiration(ctx, request, sc)
		}))

	listInspirationsTool := mcp.NewTool("listInspirations",
		mcp.WithDescription("Search and filter inspirations by query text, score range, date range, source, with sorting and limits"),
		mcp.WithString("query",
			mcp.Description("Search text to match against title and description"),
		),
		mcp.WithNumber("minScore",
			mcp.Description("Minimum score filter (1-10)"),
		),
		mcp.WithNumber("maxScore",
			mcp.Description("Maximum score filter (1-10)"),
		),
		mcp.WithString("dateFrom",
			mcp.Description("ISO date string - only include inspirations added after this date"),
		),
		mcp.WithString("dateTo",
			mcp.Description("ISO date string - only include inspirations added before this date"),
		),
		mcp.WithString("sourceId",
			mcp.Description("Filter by source ID"),
		),
		mcp.WithString("sortBy",
			mcp.Description("Sort results by 'score' (highest first) or 'date' (newest first). Default: date"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Max number of results to return (1-100). Default: 20"),
		),
	)

	s.AddTool(listInspirationsTool, common.InstrumentedToolHandlerWithCollection("listInspirations", "inspirations", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListInspirations(ctx, request, sc)
		}))

	getInspirationTool := mcp.NewTool("getInspiration",
		mcp.WithDescription("Get full details of a specific inspiration by ID"),
		mcp.WithString("inspirationId",
			mcp.Required(),
			mcp.Description("ID of the inspiration to retrieve"),
		),
	)

	s.AddTool(getInspirationTool, common.InstrumentedToolHandlerWithCollection("getInspiration", "inspirations", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetInspiration(ctx, request, sc)
		}))

	return nil
}

func handleAddInspiration(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	sourceID, err := common.RequiredString(args, "sourceId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	title, err := common.RequiredString(args, "title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := common.ValidateMaxLength("title", title, maxTitleLength); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	description, err := common.RequiredString(args, "description")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := common.ValidateMaxLength("description", description, maxDescriptionLength); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	url, err := common.RequiredString(args, "url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := common.ValidateMaxLength("url", url, maxURLLength); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := common.ValidateURL("url", url); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	score, err := common.RequiredInt(args, "score")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := common.ValidateIntRange("score", score, minScore, maxScore); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	inspiration, status, err := sc.Collections().AddInspiration(ctx, curation.NewInspiration{
		SourceID:    sourceID,
		Title:       title,
		Description: description,
		URL:         url,
		Score:       score,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to add inspiration: %v", err)), nil
	}

	result, err := json.Marshal(map[string]interface{}{
		"id":      inspiration.ID,
		"title":   inspiration.Title,
		"score":   inspiration.Score,
		"url":     inspiration.URL,
		"status":  status,
		"addedAt": inspiration.AddedAt,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(result)), nil
}

func handleListInspirations(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	filters := curation.InspirationFilters{
		Query:    common.OptionalString(args, "query"),
		MinScore: common.OptionalInt(args, "minScore", 0),
		MaxScore: common.OptionalInt(args, "maxScore", 0),
		DateFrom: common.OptionalString(args, "dateFrom"),
		DateTo:   common.OptionalString(args, "dateTo"),
		SourceID: common.OptionalString(args, "sourceId"),
		SortBy:   common.OptionalString(args, "sortBy"),
		Limit:    common.OptionalInt(args, "limit", curation.DefaultListLimit),
	}

	if filters.MinScore != 0 {
		if err := common.ValidateIntRange("minScore", filters.MinScore, minScore, maxScore); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}
	if filters.MaxScore != 0 {
		if err := common.ValidateIntRange("maxScore", filters.MaxScore, minScore, maxScore); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}
	if err := common.ValidateIntRange("limit", filters.Limit, 1, maxListLimit); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if filters.SortBy != "" && filters.SortBy != curation.SortByScore && filters.SortBy != curation.SortByDate {
		return mcp.NewToolResultError(fmt.Sprintf("invalid sortBy %q, must be 'score' or 'date'", filters.SortBy)), nil
	}

	inspirations, err := sc.Collections().Inspirations(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list inspirations: %v", err)), nil
	}

	results := curation.FilterInspirations(inspirations, filters)

	summaries := make([]map[string]interface{}, 0, len(results))
	for _, i := range results {
		summaries = append(summaries, map[string]interface{}{
			"id":          i.ID,
			"title":       i.Title,
			"description": i.Description,
			"url":         i.URL,
			"score":       i.Score,
			"addedAt":     i.AddedAt,
			"sourceId":    i.SourceID,
		})
	}

	result, err := json.Marshal(map[string]interface{}{
		"filterType":   filters.FilterKind(),
		"resultCount":  len(summaries),
		"inspirations": summaries,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(result)), nil
}

func handleGetInspiration(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	inspirationID, err := common.RequiredString(args, "inspirationId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	inspiration, err := sc.Collections().InspirationByID(ctx, inspirationID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get inspiration: %v", err)), nil
	}

	if inspiration == nil {
		result, merr := json.Marshal(map[string]interface{}{
			"error":         "Inspiration not found",
			"inspirationId": inspirationID,
		})
		if merr != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", merr)), nil
		}
		return mcp.NewToolResultText(string(result)), nil
	}

	result, err := json.Marshal(inspiration)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(result)), nil
}
