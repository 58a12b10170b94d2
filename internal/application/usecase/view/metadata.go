package view

import (
	"context"

	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
	"github.com/namvu-dev/folioforge/pkg/logger"
)

// PortfolioMetadataUseCase serves the lightweight title/description read
// used for page head generation, independent of full assembly.
type PortfolioMetadataUseCase struct {
	portfolioRepo portfolio.Repository
	logger        logger.Logger
}

func NewPortfolioMetadataUseCase(repo portfolio.Repository, log logger.Logger) *PortfolioMetadataUseCase {
	return &PortfolioMetadataUseCase{portfolioRepo: repo, logger: log}
}

type PortfolioMetadataInput struct {
	Key portfolio.LookupKey
}

type PortfolioMetadataOutput struct {
	Metadata *portfolio.Metadata
}

func (uc *PortfolioMetadataUseCase) Execute(ctx context.Context, input PortfolioMetadataInput) (*PortfolioMetadataOutput, error) {
	meta, err := uc.portfolioRepo.FetchMetadata(ctx, input.Key)
	if err != nil {
		return nil, err
	}
	if meta.Title == "" {
		meta.Title = input.Key.Value
	}
	return &PortfolioMetadataOutput{Metadata: meta}, nil
}
