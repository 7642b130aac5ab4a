// Package metadata stores small key/value blobs in the local client database.
// The session token lives here between calls.
package metadata

import (
	"context"
)

// Repository is a flat key/value table. Get reports common.ErrorNotFound for
// missing keys.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	PutAll(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
