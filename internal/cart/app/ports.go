package app

import "context"

// Storage is the durable key/value mirror the cart writes through to.
// Implementations live in pkg/localstore.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
