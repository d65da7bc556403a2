package gmail_tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/curator/internal/curation"
	"github.com/teemow/curator/internal/gmail"
	"github.com/teemow/curator/internal/server"
	"github.com/teemow/curator/internal/tools/common"
)

// Fetch result statuses reported to the caller.
const (
	statusSuccess   = "success"
	statusError     = "error"
	statusAuthError = "auth_error"
	statusNoEmails  = "no_emails"
)

// RegisterGmailTools registers the newsletter ingestion tools with the MCP server
func RegisterGmailTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	fetchTool := mcp.NewTool("fetchNewsletterEmails",
		mcp.WithDescription("Fetch recent emails from a newsletter sender via Gmail API using OAuth2 credentials"),
		mcp.WithString("sourceId",
			mcp.Required(),
			mcp.Description("ID of the newsletter source to fetch emails for"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Max emails to fetch (1-50). Default: 10"),
		),
		mcp.WithString("sinceDate",
			mcp.Description("ISO date string - only fetch emails after this date"),
		),
	)

	s.AddTool(fetchTool, common.InstrumentedToolHandlerWithCollection("fetchNewsletterEmails", "sources", "fetch", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleFetchNewsletterEmails(ctx, request, sc)
		}))

	return nil
}

func handleFetchNewsletterEmails(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	sourceID, err := common.RequiredString(args, "sourceId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	maxResults := common.OptionalInt(args, "maxResults", int(gmail.DefaultMaxResults))
	if err := common.ValidateIntRange("maxResults", maxResults, 1, int(gmail.MaxResultsCap)); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sinceDate := common.OptionalString(args, "sinceDate")

	source, err := sc.Collections().SourceByID(ctx, sourceID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to look up source: %v", err)), nil
	}
	if source == nil {
		return marshalResult(map[string]interface{}{
			"error":    "Source not found",
			"sourceId": sourceID,
		})
	}
	if source.Type != curation.SourceTypeNewsletter {
		return marshalResult(map[string]interface{}{
			"error":    fmt.Sprintf("Source is of type %q, only newsletter sources can be fetched", source.Type),
			"sourceId": sourceID,
			"status":   statusError,
		})
	}

	client, err := sc.MailClient()
	if err != nil {
		if errors.Is(err, gmail.ErrMissingCredentials) {
			return marshalResult(map[string]interface{}{
				"sourceId":    sourceID,
				"senderEmail": source.Identifier,
				"status":      statusAuthError,
				"error":       "Gmail credentials not configured. Set GMAIL_CLIENT_ID, GMAIL_CLIENT_SECRET and GMAIL_REFRESH_TOKEN.",
			})
		}
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create Gmail client: %v", err)), nil
	}

	emails, err := client.FetchFromSender(source.Identifier, gmail.FetchOptions{
		SinceDate:  sinceDate,
		MaxResults: int64(maxResults),
	})
	if err != nil {
		return marshalResult(map[string]interface{}{
			"sourceId":    sourceID,
			"senderEmail": source.Identifier,
			"status":      statusError,
			"error":       fmt.Sprintf("Failed to fetch emails: %v", err),
		})
	}

	if len(emails) == 0 {
		return marshalResult(map[string]interface{}{
			"sourceId":    sourceID,
			"senderEmail": source.Identifier,
			"emailCount":  0,
			"status":      statusNoEmails,
		})
	}

	// A successful fetch stamps the source's scan time.
	if err := sc.Collections().TouchScanTime(ctx, sourceID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to record scan time: %v", err)), nil
	}

	return marshalResult(map[string]interface{}{
		"sourceId":    sourceID,
		"senderEmail": source.Identifier,
		"emailCount":  len(emails),
		"status":      statusSuccess,
		"emails":      emails,
	})
}

func marshalResult(payload map[string]interface{}) (*mcp.CallToolResult, error) {
	result, err := json.Marshal(payload)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(result)), nil
}
