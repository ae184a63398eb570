// Package storage provides the persistent key-value store the vault is built
// on: string keys mapped to string values (JSON documents, in practice).
//
// The interface is deliberately narrow (explicit load/save semantics, no
// transactions) so a backend can later be substituted without touching
// callers. Four backends are provided: an in-memory map, a single JSON file
// (the default), an embedded SQLite database, and Redis.
package storage

import "context"

// Store is a synchronous string-to-string key-value store.
//
// Contract: Get returns ("", nil) for a missing key; callers treat the empty
// string as absent. Delete is idempotent.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error

	// Clear removes every key in the store's namespace.
	Clear(ctx context.Context) error

	Close() error
}
