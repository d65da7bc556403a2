package curation

import (
	"context"

	"github.com/teemow/curator/internal/store"
)

// NewContent holds the caller-provided fields of a content record to create.
type NewContent struct {
	Type           ContentType
	Title          string
	Body           string
	InspirationIDs []string
	UserPrompt     string
}

// ContentUpdate carries the optional fields of a content update. Nil means
// "leave unchanged".
type ContentUpdate struct {
	Body   *string
	Status *ContentStatus
}

// ContentList returns all stored content records.
func (c *Collections) ContentList(ctx context.Context) ([]Content, error) {
	var content []Content
	if err := c.readCollection(ctx, store.KeyContent, &content); err != nil {
		return nil, err
	}
	return content, nil
}

// AddContent creates a new content record in draft status. There is no
// duplicate check; every call creates a record.
func (c *Collections) AddContent(ctx context.Context, candidate NewContent) (Content, error) {
	content, err := c.ContentList(ctx)
	if err != nil {
		return Content{}, err
	}

	ts := now()
	added := Content{
		ID:             generateID(),
		Type:           candidate.Type,
		Title:          candidate.Title,
		Body:           candidate.Body,
		Status:         ContentStatusDraft,
		InspirationIDs: candidate.InspirationIDs,
		UserPrompt:     candidate.UserPrompt,
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}
	content = append(content, added)

	if err := c.writeCollection(ctx, store.KeyContent, content); err != nil {
		return Content{}, err
	}
	return added, nil
}

// ContentByID returns the content record with the given id, or nil if absent.
func (c *Collections) ContentByID(ctx context.Context, id string) (*Content, error) {
	content, err := c.ContentList(ctx)
	if err != nil {
		return nil, err
	}
	for i := range content {
		if content[i].ID == id {
			return &content[i], nil
		}
	}
	return nil, nil
}

// UpdateContent applies whichever of body and status are set and refreshes
// updatedAt. The returned action reports exactly what changed. An unknown id
// yields ActionNotFound without mutation; an update carrying neither field
// yields ActionNoOp without mutation.
func (c *Collections) UpdateContent(ctx context.Context, id string, update ContentUpdate) (*Content, UpdateAction, error) {
	content, err := c.ContentList(ctx)
	if err != nil {
		return nil, "", err
	}

	idx := -1
	for i := range content {
		if content[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ActionNotFound, nil
	}

	hasBody := update.Body != nil
	hasStatus := update.Status != nil

	var action UpdateAction
	switch {
	case hasBody && hasStatus:
		action = ActionBoth
	case hasBody:
		action = ActionBodyUpdated
	case hasStatus:
		action = ActionStatusChanged
	default:
		return &content[idx], ActionNoOp, nil
	}

	if hasBody {
		content[idx].Body = *update.Body
	}
	if hasStatus {
		content[idx].Status = *update.Status
	}
	content[idx].UpdatedAt = now()

	if err := c.writeCollection(ctx, store.KeyContent, content); err != nil {
		return nil, "", err
	}
	return &content[idx], action, nil
}
