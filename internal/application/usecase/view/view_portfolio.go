package view

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/namvu-dev/folioforge/internal/application/service"
	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
	"github.com/namvu-dev/folioforge/internal/domain/theme"
	"github.com/namvu-dev/folioforge/pkg/apperror"
	"github.com/namvu-dev/folioforge/pkg/logger"
)

var tracer = otel.Tracer("view_usecase")

// ViewPortfolioUseCase runs the public render pipeline: cache lookup, fetch,
// assemble, themed render with fallback, cache fill, view event.
type ViewPortfolioUseCase struct {
	portfolioRepo portfolio.Repository
	registry      *theme.Registry
	cache         service.RenderCache
	events        service.EventPublisher
	cacheTTL      time.Duration
	logger        logger.Logger
}

func NewViewPortfolioUseCase(
	repo portfolio.Repository,
	registry *theme.Registry,
	cache service.RenderCache,
	events service.EventPublisher,
	cacheTTL time.Duration,
	log logger.Logger,
) *ViewPortfolioUseCase {
	return &ViewPortfolioUseCase{
		portfolioRepo: repo,
		registry:      registry,
		cache:         cache,
		events:        events,
		cacheTTL:      cacheTTL,
		logger:        log,
	}
}

type ViewPortfolioInput struct {
	Key     portfolio.LookupKey
	ThemeID string
}

type ViewPortfolioOutput struct {
	Page *theme.RenderedPage
}

func (uc *ViewPortfolioUseCase) Execute(ctx context.Context, input ViewPortfolioInput) (*ViewPortfolioOutput, error) {
	ctx, span := tracer.Start(ctx, "ViewPortfolio")
	defer span.End()
	span.SetAttributes(
		attribute.String("lookup.kind", string(input.Key.Kind)),
		attribute.String("lookup.value", input.Key.Value),
	)

	cacheKey := "portfolio:page:" + input.Key.String() + ":" + input.ThemeID
	if uc.cache != nil {
		page, err := uc.cache.Get(ctx, cacheKey)
		if err != nil {
			uc.logger.Warn("render cache get failed", zap.String("key", cacheKey), zap.Error(err))
		}
		if page != nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return &ViewPortfolioOutput{Page: page}, nil
		}
	}

	raw, err := uc.portfolioRepo.FetchFull(ctx, input.Key)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	model, err := portfolio.Assemble(raw, uc.logger)
	if err != nil {
		if errors.Is(err, portfolio.ErrPortfolioNotFound) {
			return nil, apperror.NewNotFound("portfolio", input.Key.Value)
		}
		return nil, apperror.NewInternal("failed to assemble portfolio", err)
	}

	if !model.Published {
		return nil, apperror.NewNotFound("portfolio", input.Key.Value)
	}

	page, err := theme.RenderWithFallback(ctx, uc.registry, model, input.ThemeID)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewInternal("failed to render portfolio", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, cacheKey, page, uc.cacheTTL); err != nil {
			uc.logger.Warn("render cache set failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	if uc.events != nil {
		ev := service.ViewEvent{
			PortfolioID: model.ID,
			LookupKind:  string(input.Key.Kind),
			LookupValue: input.Key.Value,
			ThemeID:     input.ThemeID,
			ViewedAt:    time.Now().UTC(),
		}
		if err := uc.events.PublishView(ctx, ev); err != nil {
			uc.logger.Warn("failed to publish view event", zap.String("portfolio_id", model.ID.String()), zap.Error(err))
		}
	}

	return &ViewPortfolioOutput{Page: page}, nil
}
