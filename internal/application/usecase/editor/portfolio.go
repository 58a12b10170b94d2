package editor

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/namvu-dev/folioforge/internal/application/service"
	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
	"github.com/namvu-dev/folioforge/pkg/apperror"
	"github.com/namvu-dev/folioforge/pkg/logger"
)

// invalidatePages drops every cached rendered page addressing the portfolio,
// across all three lookup keys. Cache failures are logged, never surfaced.
func invalidatePages(ctx context.Context, cache service.RenderCache, log logger.Logger, pf *portfolio.Portfolio) {
	if cache == nil {
		return
	}
	patterns := []string{
		"portfolio:page:" + portfolio.ByUsername(pf.Username).String() + ":*",
		"portfolio:page:" + portfolio.ByID(pf.ID).String() + ":*",
		"portfolio:page:" + portfolio.ByTenant(pf.TenantID).String() + ":*",
	}
	for _, pattern := range patterns {
		if err := cache.Invalidate(ctx, pattern); err != nil {
			log.Warn("failed to invalidate rendered pages", zap.String("pattern", pattern), zap.Error(err))
		}
	}
}

type PortfolioUseCase struct {
	portfolioRepo portfolio.Repository
	cache         service.RenderCache
	events        service.EventPublisher
	logger        logger.Logger
}

func NewPortfolioUseCase(
	repo portfolio.Repository,
	cache service.RenderCache,
	events service.EventPublisher,
	log logger.Logger,
) *PortfolioUseCase {
	return &PortfolioUseCase{portfolioRepo: repo, cache: cache, events: events, logger: log}
}

type CreatePortfolioInput struct {
	OwnerID  uuid.UUID
	Username string
	TenantID string
}

type CreatePortfolioOutput struct {
	Portfolio *portfolio.Portfolio
}

func (uc *PortfolioUseCase) ExecuteCreate(ctx context.Context, input CreatePortfolioInput) (*CreatePortfolioOutput, error) {
	p := &portfolio.Portfolio{
		ID:        uuid.New(),
		OwnerID:   input.OwnerID,
		Username:  input.Username,
		TenantID:  input.TenantID,
		Published: false,
		CreatedAt: time.Now().UTC(),
	}
	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := uc.portfolioRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return &CreatePortfolioOutput{Portfolio: p}, nil
}

type GetMyPortfolioInput struct {
	OwnerID uuid.UUID
}

type GetMyPortfolioOutput struct {
	Portfolio *portfolio.Portfolio
}

// ExecuteGet assembles the owner's full portfolio, published or not, for the
// dashboard preview.
func (uc *PortfolioUseCase) ExecuteGet(ctx context.Context, input GetMyPortfolioInput) (*GetMyPortfolioOutput, error) {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	raw, err := uc.portfolioRepo.FetchFull(ctx, portfolio.ByID(root.ID))
	if err != nil {
		return nil, err
	}
	model, err := portfolio.Assemble(raw, uc.logger)
	if err != nil {
		return nil, apperror.NewNotFound("portfolio", root.ID.String())
	}
	return &GetMyPortfolioOutput{Portfolio: model}, nil
}

type SetPublishedInput struct {
	OwnerID   uuid.UUID
	Published bool
}

type SetPublishedOutput struct {
	Portfolio *portfolio.Portfolio
}

func (uc *PortfolioUseCase) ExecuteSetPublished(ctx context.Context, input SetPublishedInput) (*SetPublishedOutput, error) {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	if err := uc.portfolioRepo.SetPublished(ctx, root.ID, input.OwnerID, input.Published); err != nil {
		return nil, err
	}
	root.Published = input.Published

	invalidatePages(ctx, uc.cache, uc.logger, root)

	if uc.events != nil {
		ev := service.PublishEvent{
			PortfolioID: root.ID,
			OwnerID:     input.OwnerID,
			Published:   input.Published,
			ChangedAt:   time.Now().UTC(),
		}
		if err := uc.events.PublishPublish(ctx, ev); err != nil {
			uc.logger.Warn("failed to publish publish event", zap.String("portfolio_id", root.ID.String()), zap.Error(err))
		}
	}

	return &SetPublishedOutput{Portfolio: root}, nil
}
