package service

import (
	"context"
	"time"

	"github.com/namvu-dev/folioforge/internal/domain/theme"
)

// RenderCache caches rendered public pages. A miss is (nil, nil); cache
// errors never fail a view, callers log and move on.
type RenderCache interface {
	Get(ctx context.Context, key string) (*theme.RenderedPage, error)
	Set(ctx context.Context, key string, page *theme.RenderedPage, ttl time.Duration) error
	Invalidate(ctx context.Context, pattern string) error
}
