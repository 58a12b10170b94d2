package editor

import (
	"context"

	"github.com/google/uuid"

	"github.com/namvu-dev/folioforge/internal/application/service"
	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
	"github.com/namvu-dev/folioforge/pkg/logger"
)

type SocialUseCase struct {
	portfolioRepo portfolio.Repository
	socialRepo    portfolio.SocialRepository
	cache         service.RenderCache
	logger        logger.Logger
}

func NewSocialUseCase(
	pRepo portfolio.Repository,
	sRepo portfolio.SocialRepository,
	cache service.RenderCache,
	log logger.Logger,
) *SocialUseCase {
	return &SocialUseCase{portfolioRepo: pRepo, socialRepo: sRepo, cache: cache, logger: log}
}

type AddSocialInput struct {
	OwnerID  uuid.UUID
	Platform string
	URL      string
}

type AddSocialOutput struct {
	Social *portfolio.Social
}

func (uc *SocialUseCase) ExecuteAdd(ctx context.Context, input AddSocialInput) (*AddSocialOutput, error) {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	s := &portfolio.Social{
		ID:       uuid.New(),
		Platform: input.Platform,
		URL:      input.URL,
	}
	if err := uc.socialRepo.Save(ctx, root.ID, s); err != nil {
		return nil, err
	}
	invalidatePages(ctx, uc.cache, uc.logger, root)
	return &AddSocialOutput{Social: s}, nil
}

type UpdateSocialInput struct {
	OwnerID uuid.UUID
	Social  portfolio.Social
}

func (uc *SocialUseCase) ExecuteUpdate(ctx context.Context, input UpdateSocialInput) error {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return err
	}
	if err := uc.socialRepo.Update(ctx, root.ID, &input.Social); err != nil {
		return err
	}
	invalidatePages(ctx, uc.cache, uc.logger, root)
	return nil
}

type DeleteSocialInput struct {
	OwnerID  uuid.UUID
	SocialID uuid.UUID
}

func (uc *SocialUseCase) ExecuteDelete(ctx context.Context, input DeleteSocialInput) error {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return err
	}
	if err := uc.socialRepo.Delete(ctx, input.SocialID, root.ID); err != nil {
		return err
	}
	invalidatePages(ctx, uc.cache, uc.logger, root)
	return nil
}

type ListSocialsInput struct {
	OwnerID uuid.UUID
}

type ListSocialsOutput struct {
	Socials []portfolio.Social
}

func (uc *SocialUseCase) ExecuteList(ctx context.Context, input ListSocialsInput) (*ListSocialsOutput, error) {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	items, err := uc.socialRepo.ListByPortfolio(ctx, root.ID)
	if err != nil {
		return nil, err
	}
	return &ListSocialsOutput{Socials: items}, nil
}
