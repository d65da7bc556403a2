package content_tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/curator/internal/curation"
	"github.com/teemow/curator/internal/server"
	"github.com/teemow/curator/internal/tools/common"
)

// Argument limits.
const maxTitleLength = 300

// RegisterContentTools registers the content lifecycle tools with the MCP server
func RegisterContentTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	createContentTool := mcp.NewTool("createContent",
		mcp.WithDescription("Store a newly generated piece of content (article, LinkedIn post, or X post) as a draft"),
		mcp.WithString("type",
			mcp.Required(),
			mcp.Description("Type of content to create: 'article', 'linkedin', or 'x_post'"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Title of the content"),
		),
		mcp.WithString("body",
			mcp.Required(),
			mcp.Description("The full generated content body"),
		),
		mcp.WithString("inspirationIds",
			mcp.Description("Comma-separated IDs of inspirations this content is based on"),
		),
		mcp.WithString("userPrompt",
			mcp.Description("The original user request that prompted this content"),
		),
	)

	s.AddTool(createContentTool, common.InstrumentedToolHandlerWithCollection("createContent", "content", "add", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateContent(ctx, request, sc)
		}))

	listContentTool := mcp.NewTool("listContent",
		mcp.WithDescription("List created content filtered by status (draft/done) and/or content type"),
		mcp.WithString("status",
			mcp.Description("Filter by content status ('draft' or 'done')"),
		),
		mcp.WithString("type",
			mcp.Description("Filter by content type ('article', 'linkedin', 'x_post')"),
		),
	)

	s.AddTool(listContentTool, common.InstrumentedToolHandlerWithCollection("listContent", "content", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListContent(ctx, request, sc)
		}))

	getContentTool := mcp.NewTool("getContent",
		mcp.WithDescription("Get full content details including body text by content ID"),
		mcp.WithString("contentId",
			mcp.Required(),
			mcp.Description("ID of the content to retrieve"),
		),
	)

	s.AddTool(getContentTool, common.InstrumentedToolHandlerWithCollection("getContent", "content", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetContent(ctx, request, sc)
		}))

	updateContentTool := mcp.NewTool("updateContent",
		mcp.WithDescription("Update content body text (iteration) or status (mark as done)"),
		mcp.WithString("contentId",
			mcp.Required(),
			mcp.Description("ID of the content to update"),
		),
		mcp.WithString("body",
			mcp.Description("New body text (for iteration/refinement)"),
		),
		mcp.WithString("status",
			mcp.Description("New status (use 'done' to mark as complete)"),
		),
	)

	s.AddTool(updateContentTool, common.InstrumentedToolHandlerWithCollection("updateContent", "content", "update", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleUpdateContent(ctx, request, sc)
		}))

	return nil
}

// splitInspirationIDs parses the comma-separated inspirationIds argument.
func splitInspirationIDs(raw string) []string {
	ids := []string{}
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func handleCreateContent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	typeArg, err := common.RequiredString(args, "type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	contentType := curation.ContentType(typeArg)
	if !contentType.IsValid() {
		return mcp.NewToolResultError(fmt.Sprintf("invalid content type %q, must be one of: article, linkedin, x_post", typeArg)), nil
	}

	title, err := common.RequiredString(args, "title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := common.ValidateMaxLength("title", title, maxTitleLength); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	body, err := common.RequiredString(args, "body")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	content, err := sc.Collections().AddContent(ctx, curation.NewContent{
		Type:           contentType,
		Title:          title,
		Body:           body,
		InspirationIDs: splitInspirationIDs(common.OptionalString(args, "inspirationIds")),
		UserPrompt:     common.OptionalString(args, "userPrompt"),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create content: %v", err)), nil
	}

	result, err := json.Marshal(map[string]interface{}{
		"id":             content.ID,
		"type":           content.Type,
		"title":          content.Title,
		"status":         content.Status,
		"inspirationIds": content.InspirationIDs,
		"createdAt":      content.CreatedAt,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(result)), nil
}

func handleListContent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	filters := curation.ContentFilters{}

	if status := common.OptionalString(args, "status"); status != "" {
		contentStatus := curation.ContentStatus(status)
		if !contentStatus.IsValid() {
			return mcp.NewToolResultError(fmt.Sprintf("invalid status %q, must be 'draft' or 'done'", status)), nil
		}
		filters.Status = contentStatus
	}
	if typeArg := common.OptionalString(args, "type"); typeArg != "" {
		contentType := curation.ContentType(typeArg)
		if !contentType.IsValid() {
			return mcp.NewToolResultError(fmt.Sprintf("invalid content type %q, must be one of: article, linkedin, x_post", typeArg)), nil
		}
		filters.Type = contentType
	}

	content, err := sc.Collections().ContentList(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list content: %v", err)), nil
	}

	results := curation.FilterContent(content, filters)

	summaries := make([]map[string]interface{}, 0, len(results))
	for _, c := range results {
		summaries = append(summaries, map[string]interface{}{
			"id":             c.ID,
			"type":           c.Type,
			"title":          c.Title,
			"status":         c.Status,
			"inspirationIds": c.InspirationIDs,
			"createdAt":      c.CreatedAt,
			"updatedAt":      c.UpdatedAt,
		})
	}

	result, err := json.Marshal(map[string]interface{}{
		"resultCount": len(summaries),
		"content":     summaries,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(result)), nil
}

func handleGetContent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	contentID, err := common.RequiredString(args, "contentId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	content, err := sc.Collections().ContentByID(ctx, contentID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get content: %v", err)), nil
	}

	if content == nil {
		result, merr := json.Marshal(map[string]interface{}{
			"error":     "Content not found",
			"contentId": contentID,
		})
		if merr != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", merr)), nil
		}
		return mcp.NewToolResultText(string(result)), nil
	}

	result, err := json.Marshal(content)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(result)), nil
}

func handleUpdateContent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	contentID, err := common.RequiredString(args, "contentId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Presence of an argument decides what gets updated, so an explicit
	// empty body clears the stored body instead of reporting no_op.
	update := curation.ContentUpdate{}
	if raw, present := args["body"]; present {
		body, ok := raw.(string)
		if !ok {
			return mcp.NewToolResultError("body must be a string"), nil
		}
		update.Body = &body
	}
	if raw, present := args["status"]; present {
		status, ok := raw.(string)
		if !ok {
			return mcp.NewToolResultError("status must be a string"), nil
		}
		contentStatus := curation.ContentStatus(status)
		if !contentStatus.IsValid() {
			return mcp.NewToolResultError(fmt.Sprintf("invalid status %q, must be 'draft' or 'done'", status)), nil
		}
		update.Status = &contentStatus
	}

	content, action, err := sc.Collections().UpdateContent(ctx, contentID, update)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update content: %v", err)), nil
	}

	if action == curation.ActionNotFound {
		result, merr := json.Marshal(map[string]interface{}{
			"error":     "Content not found",
			"contentId": contentID,
		})
		if merr != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", merr)), nil
		}
		return mcp.NewToolResultText(string(result)), nil
	}

	result, err := json.Marshal(map[string]interface{}{
		"id":        content.ID,
		"title":     content.Title,
		"status":    content.Status,
		"action":    action,
		"updatedAt": content.UpdatedAt,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(result)), nil
}
