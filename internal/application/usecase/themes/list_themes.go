package themes

import (
	"context"

	"github.com/namvu-dev/folioforge/internal/domain/theme"
)

// ListThemesUseCase exposes the registry for theme selection UIs.
type ListThemesUseCase struct {
	registry *theme.Registry
}

func NewListThemesUseCase(registry *theme.Registry) *ListThemesUseCase {
	return &ListThemesUseCase{registry: registry}
}

type ListThemesOutput struct {
	Themes  []theme.Theme
	Default string
}

func (uc *ListThemesUseCase) Execute(_ context.Context) (*ListThemesOutput, error) {
	return &ListThemesOutput{
		Themes:  uc.registry.GetAll(),
		Default: uc.registry.Default().ID,
	}, nil
}
