// Package curation implements the typed collection operations and the pure
// filter/sort logic for the curation data model.
//
// Three collections live in the key-value store: sources (tracked blogs,
// articles and newsletter senders), inspirations (candidate ideas harvested
// from sources) and content (drafted articles and social posts). Each
// collection is stored as one JSON array under one key; every operation reads
// the full collection, mutates an in-memory copy and writes it back.
//
// Expected conditions (duplicate, not found) are reported through tagged
// status values, never through errors. Only storage failures return errors.
package curation
