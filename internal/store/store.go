// Package store provides key/value persistence for saved games.
//
// Values are opaque strings, the same model as browser local storage, so the
// saved JSON written by one backend can be copied verbatim into another.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when a key has never been written or was deleted
var ErrNotFound = errors.New("key not found")

// Store is a small key/value store.
// SetMany must apply every pair or none of them.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	SetMany(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
	Close() error
}

// Set writes a single key
func Set(ctx context.Context, s Store, key, value string) error {
	return s.SetMany(ctx, map[string]string{key: value})
}

// Backend names accepted by configuration
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)
