package editor

import (
	"context"

	"github.com/google/uuid"

	"github.com/namvu-dev/folioforge/internal/application/service"
	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
	"github.com/namvu-dev/folioforge/pkg/logger"
)

type ContentUseCase struct {
	portfolioRepo portfolio.Repository
	contentRepo   portfolio.ContentRepository
	cache         service.RenderCache
	logger        logger.Logger
}

func NewContentUseCase(
	pRepo portfolio.Repository,
	cRepo portfolio.ContentRepository,
	cache service.RenderCache,
	log logger.Logger,
) *ContentUseCase {
	return &ContentUseCase{portfolioRepo: pRepo, contentRepo: cRepo, cache: cache, logger: log}
}

type UpsertContentInput struct {
	OwnerID uuid.UUID
	Content portfolio.Content
}

type UpsertContentOutput struct {
	Content *portfolio.Content
}

func (uc *ContentUseCase) ExecuteUpsert(ctx context.Context, input UpsertContentInput) (*UpsertContentOutput, error) {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	if err := uc.contentRepo.Upsert(ctx, root.ID, &input.Content); err != nil {
		return nil, err
	}
	invalidatePages(ctx, uc.cache, uc.logger, root)
	return &UpsertContentOutput{Content: &input.Content}, nil
}

type GetContentInput struct {
	OwnerID uuid.UUID
}

type GetContentOutput struct {
	Content *portfolio.Content
}

func (uc *ContentUseCase) ExecuteGet(ctx context.Context, input GetContentInput) (*GetContentOutput, error) {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	c, err := uc.contentRepo.GetByPortfolio(ctx, root.ID)
	if err != nil {
		return nil, err
	}
	return &GetContentOutput{Content: c}, nil
}
