package appointment

import (
	"context"

	"github.com/BruksfildServices01/appointment-planner/internal/cache"
	"github.com/BruksfildServices01/appointment-planner/internal/logger"
)

func cacheOrNop(c cache.ListCache) cache.ListCache {
	if c == nil {
		return cache.Nop{}
	}
	return c
}

// readCached reports a hit only when the key was present and decoded.
// Cache errors are logged and treated as a miss.
func readCached(ctx context.Context, c cache.ListCache, key string, dest any) bool {
	hit, err := c.Get(ctx, key, dest)
	if err != nil {
		logger.WithError(err).WithField("key", key).Warn("list cache read failed")
		return false
	}
	return hit
}

func writeCached(ctx context.Context, c cache.ListCache, key string, value any) {
	if err := c.Set(ctx, key, value); err != nil {
		logger.WithError(err).WithField("key", key).Warn("list cache write failed")
	}
}

func invalidate(ctx context.Context, c cache.ListCache, keys ...string) {
	if err := c.Invalidate(ctx, keys...); err != nil {
		logger.WithError(err).WithField("keys", keys).Warn("list cache invalidation failed")
	}
}
