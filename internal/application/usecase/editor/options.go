package editor

import (
	"context"

	"github.com/google/uuid"

	"github.com/namvu-dev/folioforge/internal/application/service"
	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
	"github.com/namvu-dev/folioforge/internal/domain/theme"
	"github.com/namvu-dev/folioforge/pkg/apperror"
	"github.com/namvu-dev/folioforge/pkg/logger"
)

// OptionsUseCase is the single write path for theme options. The theme id
// is checked against the registry so the dashboard can't persist an id that
// would silently fall back at render time.
type OptionsUseCase struct {
	portfolioRepo portfolio.Repository
	optionsRepo   portfolio.OptionsRepository
	registry      *theme.Registry
	cache         service.RenderCache
	logger        logger.Logger
}

func NewOptionsUseCase(
	pRepo portfolio.Repository,
	oRepo portfolio.OptionsRepository,
	registry *theme.Registry,
	cache service.RenderCache,
	log logger.Logger,
) *OptionsUseCase {
	return &OptionsUseCase{portfolioRepo: pRepo, optionsRepo: oRepo, registry: registry, cache: cache, logger: log}
}

type UpdateOptionsInput struct {
	OwnerID uuid.UUID
	Options portfolio.Options
}

type UpdateOptionsOutput struct {
	Options portfolio.Options
}

func (uc *OptionsUseCase) ExecuteUpdate(ctx context.Context, input UpdateOptionsInput) (*UpdateOptionsOutput, error) {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	opts := portfolio.DecodeOptions(input.Options)
	if resolved := uc.registry.GetByID(opts.Theme); resolved.ID != opts.Theme {
		return nil, apperror.NewInvalidInput("unknown theme id: "+opts.Theme, nil)
	}

	if err := uc.optionsRepo.Upsert(ctx, root.ID, opts); err != nil {
		return nil, err
	}
	invalidatePages(ctx, uc.cache, uc.logger, root)
	return &UpdateOptionsOutput{Options: opts}, nil
}

type GetOptionsInput struct {
	OwnerID uuid.UUID
}

type GetOptionsOutput struct {
	Options portfolio.Options
}

func (uc *OptionsUseCase) ExecuteGet(ctx context.Context, input GetOptionsInput) (*GetOptionsOutput, error) {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	opts, err := uc.optionsRepo.GetByPortfolio(ctx, root.ID)
	if err != nil {
		return nil, err
	}
	return &GetOptionsOutput{Options: opts}, nil
}
