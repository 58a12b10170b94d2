package theme

import (
	"context"
	"fmt"

	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
)

// RenderWithFallback renders the aggregate with the requested theme. An
// empty themeID defers to the portfolio's own options. If the resolved
// theme's renderer fails, the default theme gets one attempt with the same
// data; a failure of the default itself is the only error this returns.
func RenderWithFallback(ctx context.Context, reg *Registry, p *portfolio.Portfolio, themeID string) (*RenderedPage, error) {
	if themeID == "" {
		themeID = p.Options.Theme
	}

	resolved := reg.GetByID(themeID)
	if resolved.Renderer == nil {
		return nil, fmt.Errorf("%w: no default theme registered", ErrRenderFailed)
	}

	page, err := resolved.Renderer.Render(ctx, p)
	if err == nil {
		return page, nil
	}

	fallback := reg.Default()
	if fallback.Renderer == nil || fallback.ID == resolved.ID {
		return nil, fmt.Errorf("%w: theme %q: %v", ErrRenderFailed, resolved.ID, err)
	}

	page, fbErr := fallback.Renderer.Render(ctx, p)
	if fbErr != nil {
		return nil, fmt.Errorf("%w: theme %q and default %q: %v", ErrRenderFailed, resolved.ID, fallback.ID, fbErr)
	}
	return page, nil
}
