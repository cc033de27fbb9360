package ttlcache

import (
	"context"
	"time"

	"github.com/redis/rueidis"
	"github.com/samber/mo"
)

var _ TTLCache = (*RueidisTTLCache)(nil)

type RueidisTTLCache struct {
	rueidis rueidis.Client
}

func NewRueidisTTLCache(client rueidis.Client) *RueidisTTLCache {
	return &RueidisTTLCache{
		rueidis: client,
	}
}

func (c *RueidisTTLCache) Get(ctx context.Context, key string) (mo.Option[string], error) {
	getCmd := c.rueidis.B().
		Get().
		Key(key).
		Build()

	str, err := c.rueidis.Do(ctx, getCmd).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return mo.None[string](), nil
		}

		return mo.None[string](), err
	}

	return mo.Some(str), nil
}

func (c *RueidisTTLCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	setCmd := c.rueidis.B().
		Set().
		Key(key).
		Value(value).
		ExSeconds(int64(ttl.Seconds())).
		Build()

	return c.rueidis.Do(ctx, setCmd).Error()
}
