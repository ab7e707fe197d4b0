// Package storage provides the durable key/value persistence primitive the
// local cache stores are built on: one opaque blob per string key, plus a
// JSON codec for whole-collection reads and writes.
package storage

import "context"

// Adapter is the persistence primitive. Get returns (nil, nil) when the key
// is absent; Set replaces the whole blob atomically; Remove deletes the key
// and is a no-op when it does not exist.
type Adapter interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
