package curation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/curator/internal/store"
)

func newTestCollections() *Collections {
	return New(store.NewMemoryStore())
}

func TestAddSource(t *testing.T) {
	ctx := context.Background()
	c := newTestCollections()

	added, status, err := c.AddSource(ctx, NewSource{
		Type:       SourceTypeNewsletter,
		Identifier: "news@example.com",
		Title:      "Example Weekly",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusAdded, status)
	assert.NotEmpty(t, added.ID)
	assert.NotEmpty(t, added.AddedAt)
	assert.Empty(t, added.LastScannedAt)

	sources, err := c.Sources(ctx)
	require.NoError(t, err)
	require.Len(t, sources, 1)
}

func TestAddSourceDuplicate(t *testing.T) {
	ctx := context.Background()
	c := newTestCollections()

	first, _, err := c.AddSource(ctx, NewSource{
		Type:       SourceTypeBlog,
		Identifier: "https://blog.example.com",
		Title:      "Example Blog",
	})
	require.NoError(t, err)

	dup, status, err := c.AddSource(ctx, NewSource{
		Type:       SourceTypeBlog,
		Identifier: "https://blog.example.com",
		Title:      "Different Title",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusDuplicate, status)
	assert.Equal(t, first.ID, dup.ID)
	assert.Equal(t, "Example Blog", dup.Title, "duplicate must return the existing record unchanged")

	sources, err := c.Sources(ctx)
	require.NoError(t, err)
	assert.Len(t, sources, 1, "duplicate add must not grow the collection")
}

func TestAddSourceSameIdentifierDifferentType(t *testing.T) {
	ctx := context.Background()
	c := newTestCollections()

	_, status, err := c.AddSource(ctx, NewSource{
		Type:       SourceTypeBlog,
		Identifier: "https://example.com/post",
		Title:      "As Blog",
	})
	require.NoError(t, err)
	require.Equal(t, StatusAdded, status)

	_, status, err = c.AddSource(ctx, NewSource{
		Type:       SourceTypeArticle,
		Identifier: "https://example.com/post",
		Title:      "As Article",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusAdded, status, "uniqueness is on the identifier and type pair")
}

func TestRemoveSource(t *testing.T) {
	ctx := context.Background()
	c := newTestCollections()

	added, _, err := c.AddSource(ctx, NewSource{
		Type:       SourceTypeNewsletter,
		Identifier: "news@example.com",
		Title:      "Example Weekly",
	})
	require.NoError(t, err)

	removed, status, err := c.RemoveSource(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusRemoved, status)
	require.NotNil(t, removed)
	assert.Equal(t, added.ID, removed.ID)

	sources, err := c.Sources(ctx)
	require.NoError(t, err)
	assert.Empty(t, sources)

	// Removing again reports not_found and leaves the collection alone.
	removed, status, err = c.RemoveSource(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, status)
	assert.Nil(t, removed)
}

func TestRemoveSourceThenReAdd(t *testing.T) {
	ctx := context.Background()
	c := newTestCollections()

	spec := NewSource{
		Type:       SourceTypeNewsletter,
		Identifier: "news@example.com",
		Title:      "Example Weekly",
	}
	added, _, err := c.AddSource(ctx, spec)
	require.NoError(t, err)

	_, _, err = c.RemoveSource(ctx, added.ID)
	require.NoError(t, err)

	readded, status, err := c.AddSource(ctx, spec)
	require.NoError(t, err)
	assert.Equal(t, StatusAdded, status)
	assert.NotEqual(t, added.ID, readded.ID, "re-adding mints a new id")
}

func TestTouchScanTime(t *testing.T) {
	ctx := context.Background()
	c := newTestCollections()

	added, _, err := c.AddSource(ctx, NewSource{
		Type:       SourceTypeNewsletter,
		Identifier: "news@example.com",
		Title:      "Example Weekly",
	})
	require.NoError(t, err)

	require.NoError(t, c.TouchScanTime(ctx, added.ID))

	got, err := c.SourceByID(ctx, added.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.NotEmpty(t, got.LastScannedAt)

	// Unknown id is a silent no-op.
	assert.NoError(t, c.TouchScanTime(ctx, "missing"))
}

func TestAddInspirationDuplicateURL(t *testing.T) {
	ctx := context.Background()
	c := newTestCollections()

	first, status, err := c.AddInspiration(ctx, NewInspiration{
		SourceID: "src-1",
		Title:    "Original",
		URL:      "https://example.com/idea",
		Score:    7,
	})
	require.NoError(t, err)
	require.Equal(t, StatusAdded, status)

	dup, status, err := c.AddInspiration(ctx, NewInspiration{
		SourceID: "src-2",
		Title:    "Rediscovered",
		URL:      "https://example.com/idea",
		Score:    3,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusDuplicate, status)
	assert.Equal(t, first.ID, dup.ID)
	assert.Equal(t, 7, dup.Score, "duplicate must return the existing record unchanged")

	inspirations, err := c.Inspirations(ctx)
	require.NoError(t, err)
	assert.Len(t, inspirations, 1)
}

func TestInspirationByID(t *testing.T) {
	ctx := context.Background()
	c := newTestCollections()

	added, _, err := c.AddInspiration(ctx, NewInspiration{
		Title: "Idea",
		URL:   "https://example.com/idea",
		Score: 5,
	})
	require.NoError(t, err)

	got, err := c.InspirationByID(ctx, added.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Idea", got.Title)

	got, err = c.InspirationByID(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAddContent(t *testing.T) {
	ctx := context.Background()
	c := newTestCollections()

	added, err := c.AddContent(ctx, NewContent{
		Type:           ContentTypeLinkedIn,
		Title:          "Launch Post",
		Body:           "We shipped.",
		InspirationIDs: []string{"insp-1"},
		UserPrompt:     "write a launch post",
	})
	require.NoError(t, err)
	assert.Equal(t, ContentStatusDraft, added.Status)
	assert.Equal(t, added.CreatedAt, added.UpdatedAt)

	// No duplicate check: a second identical call creates a second record.
	again, err := c.AddContent(ctx, NewContent{
		Type:  ContentTypeLinkedIn,
		Title: "Launch Post",
		Body:  "We shipped.",
	})
	require.NoError(t, err)
	assert.NotEqual(t, added.ID, again.ID)

	content, err := c.ContentList(ctx)
	require.NoError(t, err)
	assert.Len(t, content, 2)
}

func TestUpdateContent(t *testing.T) {
	ctx := context.Background()
	c := newTestCollections()

	added, err := c.AddContent(ctx, NewContent{
		Type:  ContentTypeArticle,
		Title: "Draft",
		Body:  "v1",
	})
	require.NoError(t, err)

	body := "v2"
	status := ContentStatusDone

	tests := []struct {
		name       string
		id         string
		update     ContentUpdate
		wantAction UpdateAction
	}{
		{
			name:       "body only",
			id:         added.ID,
			update:     ContentUpdate{Body: &body},
			wantAction: ActionBodyUpdated,
		},
		{
			name:       "status only",
			id:         added.ID,
			update:     ContentUpdate{Status: &status},
			wantAction: ActionStatusChanged,
		},
		{
			name:       "both",
			id:         added.ID,
			update:     ContentUpdate{Body: &body, Status: &status},
			wantAction: ActionBoth,
		},
		{
			name:       "neither",
			id:         added.ID,
			update:     ContentUpdate{},
			wantAction: ActionNoOp,
		},
		{
			name:       "unknown id",
			id:         "missing",
			update:     ContentUpdate{Body: &body},
			wantAction: ActionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, action, err := c.UpdateContent(ctx, tt.id, tt.update)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAction, action)
		})
	}
}

func TestUpdateContentNoOpLeavesTimestamp(t *testing.T) {
	ctx := context.Background()
	c := newTestCollections()

	added, err := c.AddContent(ctx, NewContent{Type: ContentTypeXPost, Title: "t", Body: "b"})
	require.NoError(t, err)

	updated, action, err := c.UpdateContent(ctx, added.ID, ContentUpdate{})
	require.NoError(t, err)
	assert.Equal(t, ActionNoOp, action)
	require.NotNil(t, updated)
	assert.Equal(t, added.UpdatedAt, updated.UpdatedAt, "no-op must not refresh updatedAt")
}

func TestUpdateContentAppliesFields(t *testing.T) {
	ctx := context.Background()
	c := newTestCollections()

	added, err := c.AddContent(ctx, NewContent{Type: ContentTypeArticle, Title: "t", Body: "v1"})
	require.NoError(t, err)

	body := "v2"
	status := ContentStatusDone
	updated, action, err := c.UpdateContent(ctx, added.ID, ContentUpdate{Body: &body, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, ActionBoth, action)
	assert.Equal(t, "v2", updated.Body)
	assert.Equal(t, ContentStatusDone, updated.Status)

	got, err := c.ContentByID(ctx, added.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "v2", got.Body)
	assert.Equal(t, ContentStatusDone, got.Status)
}
