package editor

import (
	"context"

	"github.com/google/uuid"

	"github.com/namvu-dev/folioforge/internal/application/service"
	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
	"github.com/namvu-dev/folioforge/pkg/logger"
)

type ProjectUseCase struct {
	portfolioRepo portfolio.Repository
	projectRepo   portfolio.ProjectRepository
	cache         service.RenderCache
	logger        logger.Logger
}

func NewProjectUseCase(
	pRepo portfolio.Repository,
	prRepo portfolio.ProjectRepository,
	cache service.RenderCache,
	log logger.Logger,
) *ProjectUseCase {
	return &ProjectUseCase{portfolioRepo: pRepo, projectRepo: prRepo, cache: cache, logger: log}
}

type AddProjectInput struct {
	OwnerID       uuid.UUID
	Title         string
	Description   string
	RepositoryURL *string
	LiveURL       *string
	ImageURL      *string
}

type AddProjectOutput struct {
	Project *portfolio.Project
}

func (uc *ProjectUseCase) ExecuteAdd(ctx context.Context, input AddProjectInput) (*AddProjectOutput, error) {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	p := &portfolio.Project{
		ID:            uuid.New(),
		Title:         input.Title,
		Description:   input.Description,
		RepositoryURL: input.RepositoryURL,
		LiveURL:       input.LiveURL,
		ImageURL:      input.ImageURL,
	}
	if err := uc.projectRepo.Save(ctx, root.ID, p); err != nil {
		return nil, err
	}
	invalidatePages(ctx, uc.cache, uc.logger, root)
	return &AddProjectOutput{Project: p}, nil
}

type UpdateProjectInput struct {
	OwnerID uuid.UUID
	Project portfolio.Project
}

func (uc *ProjectUseCase) ExecuteUpdate(ctx context.Context, input UpdateProjectInput) error {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return err
	}
	if err := uc.projectRepo.Update(ctx, root.ID, &input.Project); err != nil {
		return err
	}
	invalidatePages(ctx, uc.cache, uc.logger, root)
	return nil
}

type DeleteProjectInput struct {
	OwnerID   uuid.UUID
	ProjectID uuid.UUID
}

func (uc *ProjectUseCase) ExecuteDelete(ctx context.Context, input DeleteProjectInput) error {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return err
	}
	if err := uc.projectRepo.Delete(ctx, input.ProjectID, root.ID); err != nil {
		return err
	}
	invalidatePages(ctx, uc.cache, uc.logger, root)
	return nil
}

type ListProjectsInput struct {
	OwnerID uuid.UUID
}

type ListProjectsOutput struct {
	Projects []portfolio.Project
}

func (uc *ProjectUseCase) ExecuteList(ctx context.Context, input ListProjectsInput) (*ListProjectsOutput, error) {
	root, err := uc.portfolioRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	items, err := uc.projectRepo.ListByPortfolio(ctx, root.ID)
	if err != nil {
		return nil, err
	}
	return &ListProjectsOutput{Projects: items}, nil
}
