package media

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/namvu-dev/folioforge/internal/application/service"
	"github.com/namvu-dev/folioforge/pkg/apperror"
	"github.com/namvu-dev/folioforge/pkg/logger"
)

// Allowed upload purposes. The purpose picks the storage folder so company
// logos and project screenshots stay separated per user.
const (
	PurposeLogo         = "logo"
	PurposeProjectImage = "project_image"
	PurposeThumbnail    = "thumbnail"
)

type UploadMediaUseCase struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewUploadMediaUseCase(u service.Uploader, log logger.Logger) *UploadMediaUseCase {
	return &UploadMediaUseCase{uploader: u, logger: log}
}

type UploadMediaInput struct {
	OwnerID uuid.UUID
	File    io.Reader
	Purpose string
}

type UploadMediaOutput struct {
	URL string
}

func (uc *UploadMediaUseCase) Execute(ctx context.Context, input UploadMediaInput) (*UploadMediaOutput, error) {
	switch input.Purpose {
	case PurposeLogo, PurposeProjectImage, PurposeThumbnail:
	default:
		return nil, apperror.NewInvalidInput("unknown upload purpose: "+input.Purpose, nil)
	}

	folder := fmt.Sprintf("users/%s/%s", input.OwnerID.String(), input.Purpose)
	publicID := uuid.New().String()

	url, err := uc.uploader.Upload(ctx, input.File, folder, publicID)
	if err != nil {
		return nil, apperror.NewInternal("failed to upload media file", err)
	}

	return &UploadMediaOutput{URL: url}, nil
}
