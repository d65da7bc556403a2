package curation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/teemow/curator/internal/store"
)

// Collections provides the typed operations over the store-backed
// collections. Construct one per session and pass it explicitly; there is no
// ambient singleton.
type Collections struct {
	store store.Store
}

// New creates a Collections handle over the given store.
func New(st store.Store) *Collections {
	return &Collections{store: st}
}

// generateID returns a fresh unique record identifier.
func generateID() string {
	return uuid.NewString()
}

// now returns the current time as an RFC 3339 UTC timestamp. Collection
// timestamps are compared lexicographically, which RFC 3339 preserves.
func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// readCollection unmarshals the collection under key into out.
// An absent key yields an empty collection.
func (c *Collections) readCollection(ctx context.Context, key string, out any) error {
	data, found, err := c.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to read collection %s: %w", key, err)
	}
	if !found {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode collection %s: %w", key, err)
	}
	return nil
}

// writeCollection marshals in and replaces the collection under key.
func (c *Collections) writeCollection(ctx context.Context, key string, in any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", key, err)
	}
	if err := c.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", key, err)
	}
	return nil
}
