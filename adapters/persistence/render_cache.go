package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/namvu-dev/folioforge/internal/application/service"
	"github.com/namvu-dev/folioforge/internal/domain/theme"
)

type redisRenderCache struct {
	client *redis.Client
}

func NewRedisRenderCache(client *redis.Client) service.RenderCache {
	return &redisRenderCache{client: client}
}

func (c *redisRenderCache) Get(ctx context.Context, key string) (*theme.RenderedPage, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("render cache get: %w", err)
	}

	var page theme.RenderedPage
	if err := json.Unmarshal(data, &page); err != nil {
		// Treat a corrupt entry as a miss and let it be overwritten.
		return nil, nil
	}
	return &page, nil
}

func (c *redisRenderCache) Set(ctx context.Context, key string, page *theme.RenderedPage, ttl time.Duration) error {
	data, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("render cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("render cache set: %w", err)
	}
	return nil
}

func (c *redisRenderCache) Invalidate(ctx context.Context, pattern string) error {
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("render cache del %q: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("render cache scan: %w", err)
	}
	return nil
}

// ViewCounter tracks per-portfolio view totals. Written by the worker,
// read by the dashboard.
type ViewCounter struct {
	client *redis.Client
}

func NewViewCounter(client *redis.Client) *ViewCounter {
	return &ViewCounter{client: client}
}

func viewCountKey(portfolioID string) string {
	return "portfolio:views:" + portfolioID
}

func (v *ViewCounter) Increment(ctx context.Context, portfolioID string) error {
	return v.client.Incr(ctx, viewCountKey(portfolioID)).Err()
}

func (v *ViewCounter) Get(ctx context.Context, portfolioID string) (int64, error) {
	n, err := v.client.Get(ctx, viewCountKey(portfolioID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}
