package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/curator/internal/server"
	"github.com/teemow/curator/internal/store"
)

// PromptName is the MCP prompt clients request to bootstrap a curation session.
const PromptName = "curator_system"

const basePrompt = `You are a content curation assistant. You help the user track
content sources, collect inspirations from them, and turn inspirations into
drafts for articles, LinkedIn posts, and X posts.

Workflow:
1. Track sources with addSource and listSources. Newsletter sources are
   fetched from Gmail with fetchNewsletterEmails.
2. When reviewing fetched emails or articles, store promising ideas with
   addInspiration. Score each 1-10 against the user's interests.
3. When asked to write, search prior ideas with listInspirations, draft with
   createContent, and iterate with updateContent. Mark finished pieces done.

Always reference the inspirations a draft is based on, and match the user's
writing voice.`

// Build composes the system prompt from the base instructions plus the
// stored voice and interests profile. Unset profile keys are left out.
func Build(ctx context.Context, st store.Store) (string, error) {
	sections := []string{basePrompt}

	voice, _, err := st.Get(ctx, store.KeyVoice)
	if err != nil {
		return "", fmt.Errorf("failed to read voice profile: %w", err)
	}
	if len(voice) > 0 {
		sections = append(sections, "## Writing voice\n\n"+string(voice))
	}

	interests, _, err := st.Get(ctx, store.KeyInterests)
	if err != nil {
		return "", fmt.Errorf("failed to read interests profile: %w", err)
	}
	if len(interests) > 0 {
		sections = append(sections, "## Interests\n\n"+string(interests))
	}

	return strings.Join(sections, "\n\n"), nil
}

// Register registers the curator system prompt with the MCP server.
func Register(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	systemPrompt := mcp.NewPrompt(PromptName,
		mcp.WithPromptDescription("System prompt for the content curation assistant, including the stored writing profile"),
	)

	s.AddPrompt(systemPrompt, func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		text, err := Build(ctx, sc.Store())
		if err != nil {
			return nil, err
		}
		return mcp.NewGetPromptResult(
			"Content curation assistant",
			[]mcp.PromptMessage{
				mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
			},
		), nil
	})

	return nil
}
