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

type ExperienceHandler struct {
	experienceUC *editorUC.ExperienceUseCase
	logger       logger.Logger
}

func NewExperienceHandler(uc *editorUC.ExperienceUseCase, log logger.Logger) *ExperienceHandler {
	return &ExperienceHandler{experienceUC: uc, logger: log}
}

func (h *ExperienceHandler) List(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	output, err := h.experienceUC.ExecuteList(c.Request.Context(), editorUC.ListExperiencesInput{OwnerID: ownerID})
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]ExperienceDTO, len(output.Experiences))
	for i, e := range output.Experiences {
		dtos[i] = ToExperienceDTO(e)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *ExperienceHandler) Add(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for experience", err))
		return
	}

	input := editorUC.AddExperienceInput{
		OwnerID:        ownerID,
		Role:           req.Role,
		Company:        req.Company,
		EmploymentType: req.EmploymentType,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Description:    req.Description,
		LogoURL:        req.LogoURL,
	}
	output, err := h.experienceUC.ExecuteAdd(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToExperienceDTO(*output.Experience))
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid experience id", err))
		return
	}

	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for experience", err))
		return
	}

	input := editorUC.UpdateExperienceInput{
		OwnerID: ownerID,
		Experience: portfolio.Experience{
			ID:             id,
			Role:           req.Role,
			Company:        req.Company,
			EmploymentType: req.EmploymentType,
			StartDate:      req.StartDate,
			EndDate:        req.EndDate,
			Description:    req.Description,
			LogoURL:        req.LogoURL,
		},
	}
	if err := h.experienceUC.ExecuteUpdate(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid experience id", err))
		return
	}

	input := editorUC.DeleteExperienceInput{OwnerID: ownerID, ExperienceID: id}
	if err := h.experienceUC.ExecuteDelete(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
