package gmail_tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/curator/internal/config"
	"github.com/teemow/curator/internal/curation"
	"github.com/teemow/curator/internal/server"
	"github.com/teemow/curator/internal/store"
)

func newTestServerContext(t *testing.T) *server.ServerContext {
	t.Helper()
	sc, err := server.NewServerContext(context.Background(), store.NewMemoryStore(), config.MapConfig{})
	require.NoError(t, err)
	return sc
}

func newRequest(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultJSON(t *testing.T, result *mcp.CallToolResult) map[string]interface{} {
	t.Helper()
	require.False(t, result.IsError)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(text.Text), &payload))
	return payload
}

func addSource(t *testing.T, sc *server.ServerContext, sourceType curation.SourceType, identifier string) string {
	t.Helper()
	source, _, err := sc.Collections().AddSource(context.Background(), curation.NewSource{
		Type:       sourceType,
		Identifier: identifier,
		Title:      "Test Source",
	})
	require.NoError(t, err)
	return source.ID
}

func TestGmailToolsRegistration(t *testing.T) {
	assert.NotNil(t, RegisterGmailTools)
}

func TestHandleFetchMissingSourceID(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleFetchNewsletterEmails(context.Background(), newRequest(nil), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleFetchInvalidMaxResults(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleFetchNewsletterEmails(context.Background(), newRequest(map[string]interface{}{
		"sourceId":   "src-1",
		"maxResults": float64(51),
	}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleFetchSourceNotFound(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleFetchNewsletterEmails(context.Background(), newRequest(map[string]interface{}{
		"sourceId": "missing",
	}), sc)
	require.NoError(t, err)

	payload := resultJSON(t, result)
	assert.Equal(t, "Source not found", payload["error"])
	assert.Equal(t, "missing", payload["sourceId"])
}

func TestHandleFetchNonNewsletterSource(t *testing.T) {
	sc := newTestServerContext(t)
	id := addSource(t, sc, curation.SourceTypeBlog, "https://blog.example.com")

	result, err := handleFetchNewsletterEmails(context.Background(), newRequest(map[string]interface{}{
		"sourceId": id,
	}), sc)
	require.NoError(t, err)

	payload := resultJSON(t, result)
	assert.Equal(t, statusError, payload["status"])
	assert.Contains(t, payload["error"], "only newsletter sources")
}

func TestHandleFetchMissingCredentials(t *testing.T) {
	sc := newTestServerContext(t)
	id := addSource(t, sc, curation.SourceTypeNewsletter, "news@example.com")

	result, err := handleFetchNewsletterEmails(context.Background(), newRequest(map[string]interface{}{
		"sourceId": id,
	}), sc)
	require.NoError(t, err)

	payload := resultJSON(t, result)
	assert.Equal(t, statusAuthError, payload["status"])
	assert.Equal(t, "news@example.com", payload["senderEmail"])
	assert.Contains(t, payload["error"], "Gmail credentials not configured")
}
