package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	editorUC "github.com/namvu-dev/folioforge/internal/application/usecase/editor"
	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
	"github.com/namvu-dev/folioforge/pkg/apperror"
	"github.com/namvu-dev/folioforge/pkg/logger"
)

type ProjectHandler struct {
	projectUC *editorUC.ProjectUseCase
	logger    logger.Logger
}

func NewProjectHandler(uc *editorUC.ProjectUseCase, log logger.Logger) *ProjectHandler {
	return &ProjectHandler{projectUC: uc, logger: log}
}

func (h *ProjectHandler) List(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	output, err := h.projectUC.ExecuteList(c.Request.Context(), editorUC.ListProjectsInput{OwnerID: ownerID})
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]ProjectDTO, len(output.Projects))
	for i, p := range output.Projects {
		dtos[i] = ToProjectDTO(p)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *ProjectHandler) Add(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for project", err))
		return
	}

	input := editorUC.AddProjectInput{
		OwnerID:       ownerID,
		Title:         req.Title,
		Description:   req.Description,
		RepositoryURL: req.RepositoryURL,
		LiveURL:       req.LiveURL,
		ImageURL:      req.ImageURL,
	}
	output, err := h.projectUC.ExecuteAdd(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToProjectDTO(*output.Project))
}

func (h *ProjectHandler) Update(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project id", err))
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for project", err))
		return
	}

	input := editorUC.UpdateProjectInput{
		OwnerID: ownerID,
		Project: portfolio.Project{
			ID:            id,
			Title:         req.Title,
			Description:   req.Description,
			RepositoryURL: req.RepositoryURL,
			LiveURL:       req.LiveURL,
			ImageURL:      req.ImageURL,
		},
	}
	if err := h.projectUC.ExecuteUpdate(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project id", err))
		return
	}

	input := editorUC.DeleteProjectInput{OwnerID: ownerID, ProjectID: id}
	if err := h.projectUC.ExecuteDelete(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
