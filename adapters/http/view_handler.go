package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	viewUC "github.com/namvu-dev/folioforge/internal/application/usecase/view"
	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
	"github.com/namvu-dev/folioforge/pkg/apperror"
	"github.com/namvu-dev/folioforge/pkg/logger"
)

// ViewHandler serves the public, unauthenticated portfolio pages. Each
// route resolves to a lookup key; a ?theme= query overrides the stored
// theme for previewing.
type ViewHandler struct {
	viewUC     *viewUC.ViewPortfolioUseCase
	metadataUC *viewUC.PortfolioMetadataUseCase
	logger     logger.Logger
}

func NewViewHandler(
	view *viewUC.ViewPortfolioUseCase,
	metadata *viewUC.PortfolioMetadataUseCase,
	log logger.Logger,
) *ViewHandler {
	return &ViewHandler{viewUC: view, metadataUC: metadata, logger: log}
}

func (h *ViewHandler) ByUsername(c *gin.Context) {
	h.render(c, portfolio.ByUsername(c.Param("username")))
}

func (h *ViewHandler) ByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewNotFound("portfolio", c.Param("id")))
		return
	}
	h.render(c, portfolio.ByID(id))
}

func (h *ViewHandler) ByTenant(c *gin.Context) {
	h.render(c, portfolio.ByTenant(c.Param("tenant")))
}

func (h *ViewHandler) MetaByUsername(c *gin.Context) {
	h.metadata(c, portfolio.ByUsername(c.Param("username")))
}

func (h *ViewHandler) MetaByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewNotFound("portfolio", c.Param("id")))
		return
	}
	h.metadata(c, portfolio.ByID(id))
}

func (h *ViewHandler) MetaByTenant(c *gin.Context) {
	h.metadata(c, portfolio.ByTenant(c.Param("tenant")))
}

func (h *ViewHandler) render(c *gin.Context, key portfolio.LookupKey) {
	input := viewUC.ViewPortfolioInput{
		Key:     key,
		ThemeID: c.Query("theme"),
	}
	output, err := h.viewUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", output.Page.HTML)
}

func (h *ViewHandler) metadata(c *gin.Context, key portfolio.LookupKey) {
	output, err := h.metadataUC.Execute(c.Request.Context(), viewUC.PortfolioMetadataInput{Key: key})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, MetadataDTO{
		Title:       output.Metadata.Title,
		Description: output.Metadata.Description,
	})
}
