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

type SkillHandler struct {
	skillUC *editorUC.SkillUseCase
	logger  logger.Logger
}

func NewSkillHandler(uc *editorUC.SkillUseCase, log logger.Logger) *SkillHandler {
	return &SkillHandler{skillUC: uc, logger: log}
}

func (h *SkillHandler) List(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	output, err := h.skillUC.ExecuteList(c.Request.Context(), editorUC.ListSkillsInput{OwnerID: ownerID})
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]SkillDTO, len(output.Skills))
	for i, s := range output.Skills {
		dtos[i] = ToSkillDTO(s)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *SkillHandler) Add(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for skill", err))
		return
	}

	input := editorUC.AddSkillInput{
		OwnerID:  ownerID,
		Name:     req.Name,
		Category: req.Category,
		Icon:     req.Icon,
		Color:    req.Color,
	}
	output, err := h.skillUC.ExecuteAdd(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToSkillDTO(*output.Skill))
}

func (h *SkillHandler) Update(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid skill id", err))
		return
	}

	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for skill", err))
		return
	}

	input := editorUC.UpdateSkillInput{
		OwnerID: ownerID,
		Skill: portfolio.Skill{
			ID:       id,
			Name:     req.Name,
			Category: req.Category,
			Icon:     req.Icon,
			Color:    req.Color,
		},
	}
	if err := h.skillUC.ExecuteUpdate(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SkillHandler) Delete(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid skill id", err))
		return
	}

	input := editorUC.DeleteSkillInput{OwnerID: ownerID, SkillID: id}
	if err := h.skillUC.ExecuteDelete(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
