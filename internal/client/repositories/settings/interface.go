// Package settings persists small client settings as key-value pairs in
// the local database. The session token is the only value stored today.
package settings

import "context"

// Repository is a key-value store for client settings.
// Get returns (nil, nil) when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
