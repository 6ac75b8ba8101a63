package catalogapi

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"storefront.GO/core/cache"
	"storefront.GO/model/payload"
)

const metaTag = "catalog-meta"

// metaCache keeps category and brand lists in memory, then redis. Concurrent
// misses for one key share a single upstream call.
type metaCache struct {
	l1     *cache.Cache
	rdb    *redis.Client
	ttl    time.Duration
	group  singleflight.Group
	logger *log.Logger
}

func cached[T any](ctx context.Context, m *metaCache, key string, fetch func(context.Context) (T, error)) (T, error) {
	if v, ok := m.l1.Get(key); ok {
		if t, ok := v.(T); ok {
			return t, nil
		}
	}
	if m.rdb != nil {
		if data, err := m.rdb.Get(ctx, key).Bytes(); err == nil {
			var t T
			if err := json.Unmarshal(data, &t); err == nil {
				m.l1.Set(key, t, m.ttl, []string{metaTag})
				return t, nil
			}
		} else if err != redis.Nil {
			m.logf("catalogapi: redis get %s: %v", key, err)
		}
	}

	v, err, _ := m.group.Do(key, func() (interface{}, error) {
		t, err := fetch(ctx)
		if err != nil {
			return t, err
		}
		m.l1.Set(key, t, m.ttl, []string{metaTag})
		if m.rdb != nil {
			if data, err := json.Marshal(t); err == nil {
				if err := m.rdb.Set(ctx, key, data, m.ttl).Err(); err != nil {
					m.logf("catalogapi: redis set %s: %v", key, err)
				}
			}
		}
		return t, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func (m *metaCache) invalidate(ctx context.Context, keys ...string) {
	m.l1.DeleteByTag(metaTag)
	if m.rdb != nil && len(keys) > 0 {
		if err := m.rdb.Del(ctx, keys...).Err(); err != nil {
			m.logf("catalogapi: redis del: %v", err)
		}
	}
}

func (m *metaCache) logf(format string, args ...interface{}) {
	if m.logger != nil {
		m.logger.Printf(format, args...)
	}
}

// InvalidateMeta drops cached category and brand lists.
func (c *Client) InvalidateMeta(ctx context.Context) {
	c.meta.invalidate(ctx, c.metaKey("categories"), c.metaKey("brands"))
}

// MetaResult holds both metadata lists.
type MetaResult struct {
	Categories []payload.Category
	Brands     []payload.Brand
}

// FetchMeta loads categories and brands from src in parallel.
func FetchMeta(ctx context.Context, src Source) (MetaResult, error) {
	var res MetaResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cats, err := src.Categories(gctx)
		res.Categories = cats
		return err
	})
	g.Go(func() error {
		brands, err := src.Brands(gctx)
		res.Brands = brands
		return err
	})
	err := g.Wait()
	return res, err
}

// WarmMeta refreshes the cached category and brand lists.
func (c *Client) WarmMeta(ctx context.Context) (MetaResult, error) {
	c.InvalidateMeta(ctx)
	return FetchMeta(ctx, c)
}
