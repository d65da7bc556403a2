package resources

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/curator/internal/server"
	"github.com/teemow/curator/internal/store"
)

// Resource URIs for the writing profile.
const (
	VoiceURI     = "curator://profile/voice"
	InterestsURI = "curator://profile/interests"
)

// RegisterProfileResources registers the writing profile resources.
// Both are plain text documents the user maintains out of band; the
// assistant reads them to match tone and to score new inspirations.
func RegisterProfileResources(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	voiceResource := mcp.NewResource(
		VoiceURI,
		"Writing Voice",
		mcp.WithResourceDescription("Description of the user's writing voice and tone"),
		mcp.WithMIMEType("text/plain"),
	)

	s.AddResource(voiceResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleProfileValue(ctx, request, sc, store.KeyVoice)
	})

	interestsResource := mcp.NewResource(
		InterestsURI,
		"Topic Interests",
		mcp.WithResourceDescription("Topics the user cares about, used to score inspirations"),
		mcp.WithMIMEType("text/plain"),
	)

	s.AddResource(interestsResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleProfileValue(ctx, request, sc, store.KeyInterests)
	})

	return nil
}

// handleProfileValue reads a single profile key from the store. A missing
// key yields an empty document rather than an error so clients can probe
// for an unconfigured profile.
func handleProfileValue(ctx context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext, key string) ([]mcp.ResourceContents, error) {
	value, _, err := sc.Store().Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile key %s: %w", key, err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/plain",
			Text:     string(value),
		},
	}, nil
}
