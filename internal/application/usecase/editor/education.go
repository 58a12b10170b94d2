package editor

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/namvu-dev/folioforge/internal/application/service"
	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
	"github.com/namvu-dev/folioforge/pkg/logger"
)

type EducationUseCase struct {
	portfolioRepo portfolio.Repository
	educationRepo portfolio.EducationRepository
	cache         service.RenderCache
	logger        logger.Logger
}

func NewEducationUseCase(
	pRepo portfolio.Repository,
	eRepo portfolio.EducationRepository,
	cache service.RenderCache,
	log logger.Logger,
) *EducationUseCase {
	return &EducationUseCase{portfolioRepo: pRepo, educationRepo: eRepo, cache: cache, logger: log}
}

type AddEducationInput struct {
	OwnerID   uuid.UUID
	School    string
	Degree    string
	Field     string
	StartDate time.Time
	EndDate   *time.Time
}

type AddEducationOutput struct {
	Education *portfolio.Education
}

func (uc *EducationUseCase) ExecuteAdd(ctx context.Context, input AddEducationInput) (*AddEducationOutput, error) {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	e := &portfolio.Education{
		ID:        uuid.New(),
		School:    input.School,
		Degree:    input.Degree,
		Field:     input.Field,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}
	if err := uc.educationRepo.Save(ctx, root.ID, e); err != nil {
		return nil, err
	}
	invalidatePages(ctx, uc.cache, uc.logger, root)
	return &AddEducationOutput{Education: e}, nil
}

type UpdateEducationInput struct {
	OwnerID   uuid.UUID
	Education portfolio.Education
}

func (uc *EducationUseCase) ExecuteUpdate(ctx context.Context, input UpdateEducationInput) error {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return err
	}
	if err := uc.educationRepo.Update(ctx, root.ID, &input.Education); err != nil {
		return err
	}
	invalidatePages(ctx, uc.cache, uc.logger, root)
	return nil
}

type DeleteEducationInput struct {
	OwnerID     uuid.UUID
	EducationID uuid.UUID
}

func (uc *EducationUseCase) ExecuteDelete(ctx context.Context, input DeleteEducationInput) error {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return err
	}
	if err := uc.educationRepo.Delete(ctx, input.EducationID, root.ID); err != nil {
		return err
	}
	invalidatePages(ctx, uc.cache, uc.logger, root)
	return nil
}

type ListEducationsInput struct {
	OwnerID uuid.UUID
}

type ListEducationsOutput struct {
	Educations []portfolio.Education
}

func (uc *EducationUseCase) ExecuteList(ctx context.Context, input ListEducationsInput) (*ListEducationsOutput, error) {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	items, err := uc.educationRepo.ListByPortfolio(ctx, root.ID)
	if err != nil {
		return nil, err
	}
	return &ListEducationsOutput{Educations: items}, nil
}
