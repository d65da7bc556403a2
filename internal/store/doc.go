// Package store defines the key-value storage boundary used by the curation
// layer and provides the available backends.
//
// The store holds whole-collection snapshots under reserved keys: every write
// replaces the full value, there is no partial update and no versioning.
// Concurrent writers to the same key can lose updates; the server assumes a
// single-agent, single-session usage model.
//
// Backends:
//   - MemoryStore: in-process map, used by tests and ephemeral runs
//   - FileStore: one file per key under a state directory (STDIO default)
//   - RedisStore: redis-backed storage for deployed instances
package store
