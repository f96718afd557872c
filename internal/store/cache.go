package store

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cachedEntry wraps a value with version metadata for cache invalidation
type cachedEntry struct {
	Version  string
	Value    string
	CachedAt time.Time
}

// CachedStore is a read-through, write-through LRU in front of another store.
// Entries expire after ttl so edits made by another process become visible.
type CachedStore struct {
	inner Store
	lru   *expirable.LRU[string, *cachedEntry]
}

// NewCachedStore decorates inner with an LRU of the given size and TTL
func NewCachedStore(inner Store, size int, ttl time.Duration) *CachedStore {
	return &CachedStore{
		inner: inner,
		lru:   expirable.NewLRU[string, *cachedEntry](size, nil, ttl),
	}
}

func (c *CachedStore) Get(ctx context.Context, key string) (string, error) {
	if entry, ok := c.lru.Get(key); ok {
		if entry.Version == CacheSchemaVersion {
			return entry.Value, nil
		}
		c.lru.Remove(key)
	}

	v, err := c.inner.Get(ctx, key)
	if err != nil {
		return "", err
	}
	c.put(key, v)
	return v, nil
}

func (c *CachedStore) SetMany(ctx context.Context, values map[string]string) error {
	if err := c.inner.SetMany(ctx, values); err != nil {
		for k := range values {
			c.lru.Remove(k)
		}
		return err
	}
	for k, v := range values {
		c.put(k, v)
	}
	return nil
}

func (c *CachedStore) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		c.lru.Remove(k)
	}
	return c.inner.Delete(ctx, keys...)
}

func (c *CachedStore) Ping(ctx context.Context) error {
	return c.inner.Ping(ctx)
}

func (c *CachedStore) Close() error {
	c.lru.Purge()
	return c.inner.Close()
}

// Len returns the number of cached keys
func (c *CachedStore) Len() int {
	return c.lru.Len()
}

func (c *CachedStore) put(key, value string) {
	c.lru.Add(key, &cachedEntry{
		Version:  CacheSchemaVersion,
		Value:    value,
		CachedAt: time.Now(),
	})
}
