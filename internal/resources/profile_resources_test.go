package resources

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/curator/internal/config"
	"github.com/teemow/curator/internal/server"
	"github.com/teemow/curator/internal/store"
)

func TestProfileResourcesRegistration(t *testing.T) {
	assert.NotNil(t, RegisterProfileResources)
}

func TestHandleProfileValue(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	require.NoError(t, st.Set(ctx, store.KeyVoice, []byte("direct, no filler")))

	sc, err := server.NewServerContext(ctx, st, config.MapConfig{})
	require.NoError(t, err)

	request := mcp.ReadResourceRequest{}
	request.Params.URI = VoiceURI

	contents, err := handleProfileValue(ctx, request, sc, store.KeyVoice)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(*mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, VoiceURI, text.URI)
	assert.Equal(t, "direct, no filler", text.Text)
}

func TestHandleProfileValueMissingKey(t *testing.T) {
	ctx := context.Background()
	sc, err := server.NewServerContext(ctx, store.NewMemoryStore(), config.MapConfig{})
	require.NoError(t, err)

	request := mcp.ReadResourceRequest{}
	request.Params.URI = InterestsURI

	contents, err := handleProfileValue(ctx, request, sc, store.KeyInterests)
	require.NoError(t, err)
	require.Len(t, contents, 1)
	assert.Empty(t, contents[0].(*mcp.TextResourceContents).Text)
}
