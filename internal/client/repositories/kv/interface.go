// Package kv implements the local key/value store every piece of client
// state lives in: the user collection, the current session, and the
// configured public key, each under a fixed slot name.
package kv

import (
	"context"
)

// Repository is a durable byte-valued key/value store.
//
// Get returns (nil, nil) when the key is absent and a non-nil slice, possibly
// empty, when it is present. Delete is idempotent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
