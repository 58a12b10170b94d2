package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	themesUC "github.com/namvu-dev/folioforge/internal/application/usecase/themes"
)

type ThemeHandler struct {
	listUC *themesUC.ListThemesUseCase
}

func NewThemeHandler(uc *themesUC.ListThemesUseCase) *ThemeHandler {
	return &ThemeHandler{listUC: uc}
}

func (h *ThemeHandler) List(c *gin.Context) {
	output, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]ThemeDTO, len(output.Themes))
	for i, t := range output.Themes {
		dtos[i] = ToThemeDTO(t)
	}
	c.JSON(http.StatusOK, gin.H{
		"themes":  dtos,
		"default": output.Default,
	})
}
