package editor

import (
	"context"

	"github.com/google/uuid"

	"github.com/namvu-dev/folioforge/internal/application/service"
	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
	"github.com/namvu-dev/folioforge/pkg/logger"
)

type SkillUseCase struct {
	portfolioRepo portfolio.Repository
	skillRepo     portfolio.SkillRepository
	cache         service.RenderCache
	logger        logger.Logger
}

func NewSkillUseCase(
	pRepo portfolio.Repository,
	sRepo portfolio.SkillRepository,
	cache service.RenderCache,
	log logger.Logger,
) *SkillUseCase {
	return &SkillUseCase{portfolioRepo: pRepo, skillRepo: sRepo, cache: cache, logger: log}
}

type AddSkillInput struct {
	OwnerID  uuid.UUID
	Name     string
	Category string
	Icon     string
	Color    string
}

type AddSkillOutput struct {
	Skill *portfolio.Skill
}

func (uc *SkillUseCase) ExecuteAdd(ctx context.Context, input AddSkillInput) (*AddSkillOutput, error) {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	s := &portfolio.Skill{
		ID:       uuid.New(),
		Name:     input.Name,
		Category: input.Category,
		Icon:     input.Icon,
		Color:    input.Color,
	}
	if err := uc.skillRepo.Save(ctx, root.ID, s); err != nil {
		return nil, err
	}
	invalidatePages(ctx, uc.cache, uc.logger, root)
	return &AddSkillOutput{Skill: s}, nil
}

type UpdateSkillInput struct {
	OwnerID uuid.UUID
	Skill   portfolio.Skill
}

func (uc *SkillUseCase) ExecuteUpdate(ctx context.Context, input UpdateSkillInput) error {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return err
	}
	if err := uc.skillRepo.Update(ctx, root.ID, &input.Skill); err != nil {
		return err
	}
	invalidatePages(ctx, uc.cache, uc.logger, root)
	return nil
}

type DeleteSkillInput struct {
	OwnerID uuid.UUID
	SkillID uuid.UUID
}

func (uc *SkillUseCase) ExecuteDelete(ctx context.Context, input DeleteSkillInput) error {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return err
	}
	if err := uc.skillRepo.Delete(ctx, input.SkillID, root.ID); err != nil {
		return err
	}
	invalidatePages(ctx, uc.cache, uc.logger, root)
	return nil
}

type ListSkillsInput struct {
	OwnerID uuid.UUID
}

type ListSkillsOutput struct {
	Skills []portfolio.Skill
}

func (uc *SkillUseCase) ExecuteList(ctx context.Context, input ListSkillsInput) (*ListSkillsOutput, error) {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	items, err := uc.skillRepo.ListByPortfolio(ctx, root.ID)
	if err != nil {
		return nil, err
	}
	return &ListSkillsOutput{Skills: items}, nil
}
