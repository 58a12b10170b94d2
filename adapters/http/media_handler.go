package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mediaUC "github.com/namvu-dev/folioforge/internal/application/usecase/media"
	"github.com/namvu-dev/folioforge/pkg/apperror"
	"github.com/namvu-dev/folioforge/pkg/logger"
)

type MediaHandler struct {
	uploadUC *mediaUC.UploadMediaUseCase
	logger   logger.Logger
}

func NewMediaHandler(uc *mediaUC.UploadMediaUseCase, log logger.Logger) *MediaHandler {
	return &MediaHandler{uploadUC: uc, logger: log}
}

// Upload accepts a multipart form with a "file" part and a "purpose" field
// (logo, project_image or thumbnail) and returns the stored URL.
func (h *MediaHandler) Upload(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("missing file in multipart form", err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open uploaded file", err))
		return
	}
	defer file.Close()

	input := mediaUC.UploadMediaInput{
		OwnerID: ownerID,
		File:    file,
		Purpose: c.PostForm("purpose"),
	}
	output, err := h.uploadUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": output.URL})
}
