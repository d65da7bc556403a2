package store

import "context"

// Reserved keys for the collections and profile values held in the store.
const (
	KeySources      = "sources"
	KeyInspirations = "inspirations"
	KeyContent      = "content"
	KeyVoice        = "voice"
	KeyInterests    = "interests"
)

// Store is the key-value storage boundary. Get returns the stored value and
// whether the key exists. Set replaces the full value under the key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Pinger is implemented by backends that can verify connectivity.
// The health checker uses it for readiness probes.
type Pinger interface {
	Ping(ctx context.Context) error
}
