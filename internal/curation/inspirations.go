package curation

import (
	"context"

	"github.com/teemow/curator/internal/store"
)

// NewInspiration holds the caller-provided fields of an inspiration to add.
type NewInspiration struct {
	SourceID    string
	Title       string
	Description string
	URL         string
	Score       int
}

// Inspirations returns all stored inspirations.
func (c *Collections) Inspirations(ctx context.Context) ([]Inspiration, error) {
	var inspirations []Inspiration
	if err := c.readCollection(ctx, store.KeyInspirations, &inspirations); err != nil {
		return nil, err
	}
	return inspirations, nil
}

// AddInspiration appends a new inspiration unless one with the same URL
// already exists, regardless of source. On a duplicate the existing record is
// returned unchanged with StatusDuplicate.
func (c *Collections) AddInspiration(ctx context.Context, candidate NewInspiration) (Inspiration, AddStatus, error) {
	inspirations, err := c.Inspirations(ctx)
	if err != nil {
		return Inspiration{}, "", err
	}

	for _, i := range inspirations {
		if i.URL == candidate.URL {
			return i, StatusDuplicate, nil
		}
	}

	added := Inspiration{
		ID:          generateID(),
		SourceID:    candidate.SourceID,
		Title:       candidate.Title,
		Description: candidate.Description,
		URL:         candidate.URL,
		Score:       candidate.Score,
		AddedAt:     now(),
	}
	inspirations = append(inspirations, added)

	if err := c.writeCollection(ctx, store.KeyInspirations, inspirations); err != nil {
		return Inspiration{}, "", err
	}
	return added, StatusAdded, nil
}

// InspirationByID returns the inspiration with the given id, or nil if absent.
func (c *Collections) InspirationByID(ctx context.Context, id string) (*Inspiration, error) {
	inspirations, err := c.Inspirations(ctx)
	if err != nil {
		return nil, err
	}
	for i := range inspirations {
		if inspirations[i].ID == id {
			return &inspirations[i], nil
		}
	}
	return nil, nil
}
