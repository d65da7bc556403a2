package curation

import (
	"context"

	"github.com/teemow/curator/internal/store"
)

// NewSource holds the caller-provided fields of a source to add.
type NewSource struct {
	Type       SourceType
	Identifier string
	Title      string
}

// Sources returns all tracked sources.
func (c *Collections) Sources(ctx context.Context) ([]Source, error) {
	var sources []Source
	if err := c.readCollection(ctx, store.KeySources, &sources); err != nil {
		return nil, err
	}
	return sources, nil
}

// AddSource appends a new source unless one with the same (identifier, type)
// pair already exists. On a duplicate the existing record is returned
// unchanged with StatusDuplicate.
func (c *Collections) AddSource(ctx context.Context, candidate NewSource) (Source, AddStatus, error) {
	sources, err := c.Sources(ctx)
	if err != nil {
		return Source{}, "", err
	}

	for _, s := range sources {
		if s.Identifier == candidate.Identifier && s.Type == candidate.Type {
			return s, StatusDuplicate, nil
		}
	}

	added := Source{
		ID:         generateID(),
		Type:       candidate.Type,
		Identifier: candidate.Identifier,
		Title:      candidate.Title,
		AddedAt:    now(),
	}
	sources = append(sources, added)

	if err := c.writeCollection(ctx, store.KeySources, sources); err != nil {
		return Source{}, "", err
	}
	return added, StatusAdded, nil
}

// RemoveSource removes the source with the given id. If no such source
// exists the collection is left untouched and StatusNotFound is returned.
func (c *Collections) RemoveSource(ctx context.Context, id string) (*Source, RemoveStatus, error) {
	sources, err := c.Sources(ctx)
	if err != nil {
		return nil, "", err
	}

	for i, s := range sources {
		if s.ID == id {
			removed := s
			sources = append(sources[:i], sources[i+1:]...)
			if err := c.writeCollection(ctx, store.KeySources, sources); err != nil {
				return nil, "", err
			}
			return &removed, StatusRemoved, nil
		}
	}
	return nil, StatusNotFound, nil
}

// TouchScanTime stamps the source's lastScannedAt with the current time.
// A missing source is a silent no-op.
func (c *Collections) TouchScanTime(ctx context.Context, id string) error {
	sources, err := c.Sources(ctx)
	if err != nil {
		return err
	}

	for i := range sources {
		if sources[i].ID == id {
			sources[i].LastScannedAt = now()
			return c.writeCollection(ctx, store.KeySources, sources)
		}
	}
	return nil
}

// SourceByID returns the source with the given id, or nil if absent.
func (c *Collections) SourceByID(ctx context.Context, id string) (*Source, error) {
	sources, err := c.Sources(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sources {
		if sources[i].ID == id {
			return &sources[i], nil
		}
	}
	return nil, nil
}
