package service

import (
	"context"
	"io"
)

// Uploader is the media-storage port. Implemented by the Cloudinary adapter.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
}
