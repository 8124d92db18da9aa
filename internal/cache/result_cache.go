package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/JonnyWalker81/workwell/backend/internal/logger"
	"github.com/JonnyWalker81/workwell/backend/internal/metrics"
)

// TTL is the absolute lifetime of every cached result.
const TTL = 5 * time.Minute

// ResultCache caches computed results as JSON. Store failures never reach
// the caller: they are logged and the result is computed instead.
type ResultCache struct {
	store   Store
	ttl     time.Duration
	group   singleflight.Group
	metrics *metrics.Manager
}

// NewResultCache wraps store. m may be nil.
func NewResultCache(store Store, m *metrics.Manager) *ResultCache {
	return &ResultCache{store: store, ttl: TTL, metrics: m}
}

// Bypass records a request that chose not to use the cache.
func (c *ResultCache) Bypass() {
	if c != nil {
		c.metrics.RecordCache(metrics.CacheBypass)
	}
}

func (c *ResultCache) lookup(ctx context.Context, key string) ([]byte, bool) {
	data, found, err := c.store.Get(ctx, key)
	if err != nil {
		c.metrics.RecordCache(metrics.CacheError)
		logger.Ctx(ctx).Warn("cache read failed, computing result",
			logger.String("cache_key", key),
			logger.Err(err),
		)
		return nil, false
	}
	if !found {
		c.metrics.RecordCache(metrics.CacheMiss)
		return nil, false
	}
	c.metrics.RecordCache(metrics.CacheHit)
	return data, true
}

func (c *ResultCache) save(ctx context.Context, key string, data []byte) {
	if err := c.store.Set(ctx, key, data, c.ttl); err != nil {
		logger.Ctx(ctx).Warn("cache write failed",
			logger.String("cache_key", key),
			logger.Err(err),
		)
	}
}

// Fetch returns the cached value for key, or computes, stores and returns
// it. Concurrent misses for the same key share one computation, but each
// caller waits on its own context. A nil cache always computes.
func Fetch[T any](ctx context.Context, c *ResultCache, key Key, compute func(context.Context) (T, error)) (T, error) {
	if c == nil {
		return compute(ctx)
	}

	k := key.String()
	if data, ok := c.lookup(ctx, k); ok {
		var v T
		err := json.Unmarshal(data, &v)
		if err == nil {
			return v, nil
		}
		logger.Ctx(ctx).Warn("cache entry undecodable, recomputing",
			logger.String("cache_key", k),
			logger.Err(err),
		)
	}

	ch := c.group.DoChan(k, func() (any, error) {
		return computeAndStore(ctx, c, k, compute)
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			// The shared run ended with its caller's context. This caller's
			// context is still live, so compute on it instead.
			if isContextErr(r.Err) && ctx.Err() == nil {
				return computeAndStore(ctx, c, k, compute)
			}
			return zero, r.Err
		}
		v, ok := r.Val.(T)
		if !ok {
			return zero, fmt.Errorf("cache: unexpected result type %T for %s", r.Val, k)
		}
		return v, nil
	}
}

func computeAndStore[T any](ctx context.Context, c *ResultCache, k string, compute func(context.Context) (T, error)) (T, error) {
	v, err := compute(ctx)
	if err != nil {
		return v, err
	}
	data, err := json.Marshal(v)
	if err != nil {
		logger.Ctx(ctx).Warn("cache entry unencodable",
			logger.String("cache_key", k),
			logger.Err(err),
		)
		return v, nil
	}
	c.save(ctx, k, data)
	return v, nil
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
