// Package state persists the client's durable key/value slots. In practice
// there is exactly one: the session token.
package state

import "context"

// Repository is the single-slot key/value store.
//
// Get returns ("", nil) when the key does not exist.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
