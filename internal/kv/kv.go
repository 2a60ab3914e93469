// Package kv is the durable key-value slot that outlives the in-memory
// record store: session tokens and the settings record live here.
package kv

import (
	"context"
	"errors"
)

// ErrMissing is returned by Get when the key has no value.
var ErrMissing = errors.New("kv: key not found")

// Store is a string-to-string map with explicit persistence semantics
// chosen by the backend.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
