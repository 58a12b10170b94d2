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

type SocialHandler struct {
	socialUC *editorUC.SocialUseCase
	logger   logger.Logger
}

func NewSocialHandler(uc *editorUC.SocialUseCase, log logger.Logger) *SocialHandler {
	return &SocialHandler{socialUC: uc, logger: log}
}

func (h *SocialHandler) List(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	output, err := h.socialUC.ExecuteList(c.Request.Context(), editorUC.ListSocialsInput{OwnerID: ownerID})
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]SocialDTO, len(output.Socials))
	for i, s := range output.Socials {
		dtos[i] = ToSocialDTO(s)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *SocialHandler) Add(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req SocialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for social link", err))
		return
	}

	input := editorUC.AddSocialInput{
		OwnerID:  ownerID,
		Platform: req.Platform,
		URL:      req.URL,
	}
	output, err := h.socialUC.ExecuteAdd(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToSocialDTO(*output.Social))
}

func (h *SocialHandler) Update(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid social link id", err))
		return
	}

	var req SocialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for social link", err))
		return
	}

	input := editorUC.UpdateSocialInput{
		OwnerID: ownerID,
		Social: portfolio.Social{
			ID:       id,
			Platform: req.Platform,
			URL:      req.URL,
		},
	}
	if err := h.socialUC.ExecuteUpdate(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SocialHandler) Delete(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid social link id", err))
		return
	}

	input := editorUC.DeleteSocialInput{OwnerID: ownerID, SocialID: id}
	if err := h.socialUC.ExecuteDelete(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
