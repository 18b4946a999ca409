package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/kv_store_mock.go -package=mock

// KeyValueRepository is the device-local string key-value store every feature
// persists through. Values are opaque strings; structured values are JSON.
type KeyValueRepository interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// SetMany writes all pairs in a single transaction.
	SetMany(ctx context.Context, values map[string]string) error
	// Delete is idempotent.
	Delete(ctx context.Context, key string) error
	// List returns every pair whose key starts with prefix. An empty prefix
	// lists the whole store.
	List(ctx context.Context, prefix string) (map[string]string, error)
}
