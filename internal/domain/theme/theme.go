package theme

import (
	"context"
	"errors"

	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
)

// RenderedPage is the presentation output of a theme: escaped HTML plus the
// page metadata a caller needs for the response head.
type RenderedPage struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	HTML        []byte `json:"html"`
}

// Renderer is the capability every theme implements. It receives the full
// normalized aggregate and must not mutate it.
type Renderer interface {
	Render(ctx context.Context, p *portfolio.Portfolio) (*RenderedPage, error)
}

type Theme struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Premium     bool   `json:"premium"`

	Renderer Renderer `json:"-"`
}

var (
	ErrInvalidTheme = errors.New("theme needs an id and a renderer")
	ErrDuplicateID  = errors.New("theme id already registered")
	ErrRenderFailed = errors.New("theme render failed")
)

func (t Theme) validate() error {
	if t.ID == "" || t.Renderer == nil {
		return ErrInvalidTheme
	}
	return nil
}
