package editor

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/namvu-dev/folioforge/internal/application/service"
	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
	"github.com/namvu-dev/folioforge/pkg/logger"
)

type StatsUseCase struct {
	portfolioRepo portfolio.Repository
	views         service.ViewStats
	logger        logger.Logger
}

func NewStatsUseCase(repo portfolio.Repository, views service.ViewStats, log logger.Logger) *StatsUseCase {
	return &StatsUseCase{portfolioRepo: repo, views: views, logger: log}
}

type GetStatsInput struct {
	OwnerID uuid.UUID
}

type GetStatsOutput struct {
	PortfolioID uuid.UUID
	Views       int64
}

func (uc *StatsUseCase) ExecuteGet(ctx context.Context, input GetStatsInput) (*GetStatsOutput, error) {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	views, err := uc.views.Get(ctx, root.ID.String())
	if err != nil {
		// A missing or unreachable counter should not break the dashboard.
		uc.logger.Warn("failed to read view counter", zap.String("portfolio_id", root.ID.String()), zap.Error(err))
		views = 0
	}

	return &GetStatsOutput{PortfolioID: root.ID, Views: views}, nil
}
