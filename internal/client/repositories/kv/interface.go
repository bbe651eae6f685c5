// Package kv provides the key/value stores backing the client session:
// a process-local in-memory store and a durable SQLite store.
package kv

import "context"

// Repository is a string-keyed byte store.
//
// Get returns (nil, nil) for an absent key. Delete accepts several keys and
// removes them together; deleting absent keys is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
