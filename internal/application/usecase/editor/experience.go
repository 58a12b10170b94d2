package editor

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/namvu-dev/folioforge/internal/application/service"
	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
	"github.com/namvu-dev/folioforge/pkg/logger"
)

type ExperienceUseCase struct {
	portfolioRepo  portfolio.Repository
	experienceRepo portfolio.ExperienceRepository
	cache          service.RenderCache
	logger         logger.Logger
}

func NewExperienceUseCase(
	pRepo portfolio.Repository,
	eRepo portfolio.ExperienceRepository,
	cache service.RenderCache,
	log logger.Logger,
) *ExperienceUseCase {
	return &ExperienceUseCase{portfolioRepo: pRepo, experienceRepo: eRepo, cache: cache, logger: log}
}

type AddExperienceInput struct {
	OwnerID        uuid.UUID
	Role           string
	Company        string
	EmploymentType *string
	StartDate      time.Time
	EndDate        *time.Time
	Description    string
	LogoURL        *string
}

type AddExperienceOutput struct {
	Experience *portfolio.Experience
}

func (uc *ExperienceUseCase) ExecuteAdd(ctx context.Context, input AddExperienceInput) (*AddExperienceOutput, error) {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	e := &portfolio.Experience{
		ID:             uuid.New(),
		Role:           input.Role,
		Company:        input.Company,
		EmploymentType: input.EmploymentType,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		Description:    input.Description,
		LogoURL:        input.LogoURL,
	}
	if err := uc.experienceRepo.Save(ctx, root.ID, e); err != nil {
		return nil, err
	}
	invalidatePages(ctx, uc.cache, uc.logger, root)
	return &AddExperienceOutput{Experience: e}, nil
}

type UpdateExperienceInput struct {
	OwnerID    uuid.UUID
	Experience portfolio.Experience
}

func (uc *ExperienceUseCase) ExecuteUpdate(ctx context.Context, input UpdateExperienceInput) error {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return err
	}
	if err := uc.experienceRepo.Update(ctx, root.ID, &input.Experience); err != nil {
		return err
	}
	invalidatePages(ctx, uc.cache, uc.logger, root)
	return nil
}

type DeleteExperienceInput struct {
	OwnerID      uuid.UUID
	ExperienceID uuid.UUID
}

func (uc *ExperienceUseCase) ExecuteDelete(ctx context.Context, input DeleteExperienceInput) error {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return err
	}
	if err := uc.experienceRepo.Delete(ctx, input.ExperienceID, root.ID); err != nil {
		return err
	}
	invalidatePages(ctx, uc.cache, uc.logger, root)
	return nil
}

type ListExperiencesInput struct {
	OwnerID uuid.UUID
}

type ListExperiencesOutput struct {
	Experiences []portfolio.Experience
}

func (uc *ExperienceUseCase) ExecuteList(ctx context.Context, input ListExperiencesInput) (*ListExperiencesOutput, error) {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	items, err := uc.experienceRepo.ListByPortfolio(ctx, root.ID)
	if err != nil {
		return nil, err
	}
	return &ListExperiencesOutput{Experiences: items}, nil
}
