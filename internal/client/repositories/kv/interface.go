// Package kv provides the client's generic key-value persistence: a single
// table of opaque values keyed by well-known names. Both the settings store
// and the journal index live here.
package kv

import "context"

// Repository describes the key-value operations used by the client stores.
type Repository interface {
	// Get returns the value for key, or nil if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
