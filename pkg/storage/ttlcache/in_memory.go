package ttlcache

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/samber/mo"
)

var _ TTLCache = (*InMemoryTTLCache)(nil)

type InMemoryTTLCache struct {
	cache *cache.Cache
}

func NewInMemoryTTLCache() *InMemoryTTLCache {
	return &InMemoryTTLCache{
		cache: cache.New(cache.NoExpiration, time.Minute),
	}
}

func (c *InMemoryTTLCache) Get(_ context.Context, key string) (mo.Option[string], error) {
	if value, found := c.cache.Get(key); found {
		return mo.Some(value.(string)), nil
	}

	return mo.None[string](), nil
}

func (c *InMemoryTTLCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	c.cache.Set(key, value, ttl)

	return nil
}
