package ttlcache

import (
	"context"
	"time"

	"github.com/samber/mo"
)

// TTLCache is the expiring key/value store behind the per-command rate
// limiter. Values absent or expired come back as mo.None.
type TTLCache interface {
	Get(context.Context, string) (mo.Option[string], error)
	Set(context.Context, string, string, time.Duration) error
}
