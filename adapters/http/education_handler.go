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

type EducationHandler struct {
	educationUC *editorUC.EducationUseCase
	logger      logger.Logger
}

func NewEducationHandler(uc *editorUC.EducationUseCase, log logger.Logger) *EducationHandler {
	return &EducationHandler{educationUC: uc, logger: log}
}

func (h *EducationHandler) List(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	output, err := h.educationUC.ExecuteList(c.Request.Context(), editorUC.ListEducationsInput{OwnerID: ownerID})
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]EducationDTO, len(output.Educations))
	for i, e := range output.Educations {
		dtos[i] = ToEducationDTO(e)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *EducationHandler) Add(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for education", err))
		return
	}

	input := editorUC.AddEducationInput{
		OwnerID:   ownerID,
		School:    req.School,
		Degree:    req.Degree,
		Field:     req.Field,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	output, err := h.educationUC.ExecuteAdd(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToEducationDTO(*output.Education))
}

func (h *EducationHandler) Update(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid education id", err))
		return
	}

	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for education", err))
		return
	}

	input := editorUC.UpdateEducationInput{
		OwnerID: ownerID,
		Education: portfolio.Education{
			ID:        id,
			School:    req.School,
			Degree:    req.Degree,
			Field:     req.Field,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		},
	}
	if err := h.educationUC.ExecuteUpdate(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *EducationHandler) Delete(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid education id", err))
		return
	}

	input := editorUC.DeleteEducationInput{OwnerID: ownerID, EducationID: id}
	if err := h.educationUC.ExecuteDelete(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
