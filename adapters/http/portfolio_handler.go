package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	editorUC "github.com/namvu-dev/folioforge/internal/application/usecase/editor"
	"github.com/namvu-dev/folioforge/pkg/apperror"
	"github.com/namvu-dev/folioforge/pkg/logger"
)

// PortfolioHandler serves the dashboard routes for the portfolio root:
// create, preview, publish toggle, and the content/options sub-resources.
type PortfolioHandler struct {
	portfolioUC *editorUC.PortfolioUseCase
	contentUC   *editorUC.ContentUseCase
	optionsUC   *editorUC.OptionsUseCase
	statsUC     *editorUC.StatsUseCase
	logger      logger.Logger
}

func NewPortfolioHandler(
	portfolioUC *editorUC.PortfolioUseCase,
	contentUC *editorUC.ContentUseCase,
	optionsUC *editorUC.OptionsUseCase,
	statsUC *editorUC.StatsUseCase,
	log logger.Logger,
) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioUC: portfolioUC,
		contentUC:   contentUC,
		optionsUC:   optionsUC,
		statsUC:     statsUC,
		logger:      log,
	}
}

func (h *PortfolioHandler) Create(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req CreatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for portfolio create", err))
		return
	}

	input := editorUC.CreatePortfolioInput{
		OwnerID:  ownerID,
		Username: req.Username,
		TenantID: req.TenantID,
	}
	output, err := h.portfolioUC.ExecuteCreate(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToPortfolioDTO(output.Portfolio))
}

func (h *PortfolioHandler) Get(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	output, err := h.portfolioUC.ExecuteGet(c.Request.Context(), editorUC.GetMyPortfolioInput{OwnerID: ownerID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPortfolioDTO(output.Portfolio))
}

func (h *PortfolioHandler) SetPublished(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req SetPublishedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for publish toggle", err))
		return
	}

	input := editorUC.SetPublishedInput{OwnerID: ownerID, Published: *req.Published}
	output, err := h.portfolioUC.ExecuteSetPublished(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        output.Portfolio.ID.String(),
		"published": output.Portfolio.Published,
	})
}

func (h *PortfolioHandler) Stats(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	output, err := h.statsUC.ExecuteGet(c.Request.Context(), editorUC.GetStatsInput{OwnerID: ownerID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"portfolio_id": output.PortfolioID.String(),
		"views":        output.Views,
	})
}

func (h *PortfolioHandler) GetContent(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	output, err := h.contentUC.ExecuteGet(c.Request.Context(), editorUC.GetContentInput{OwnerID: ownerID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToContentDTO(*output.Content))
}

func (h *PortfolioHandler) UpsertContent(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for content", err))
		return
	}

	input := editorUC.UpsertContentInput{OwnerID: ownerID, Content: req.ToDomain()}
	output, err := h.contentUC.ExecuteUpsert(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToContentDTO(*output.Content))
}

func (h *PortfolioHandler) GetOptions(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	output, err := h.optionsUC.ExecuteGet(c.Request.Context(), editorUC.GetOptionsInput{OwnerID: ownerID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToOptionsDTO(output.Options))
}

func (h *PortfolioHandler) UpdateOptions(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req OptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for options", err))
		return
	}

	input := editorUC.UpdateOptionsInput{OwnerID: ownerID, Options: req.ToDomain()}
	output, err := h.optionsUC.ExecuteUpdate(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToOptionsDTO(output.Options))
}
