package theme

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
)

type stubRenderer struct {
	page *RenderedPage
	err  error
}

func (s stubRenderer) Render(_ context.Context, _ *portfolio.Portfolio) (*RenderedPage, error) {
	return s.page, s.err
}

func okRenderer(body string) Renderer {
	return stubRenderer{page: &RenderedPage{Title: body, HTML: []byte(body)}}
}

func failingRenderer(msg string) Renderer {
	return stubRenderer{err: errors.New(msg)}
}

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry("minimal")

	assert.NoError(t, reg.Register(Theme{ID: "minimal", Renderer: okRenderer("minimal")}))

	err := reg.Register(Theme{ID: "minimal", Renderer: okRenderer("again")})
	assert.ErrorIs(t, err, ErrDuplicateID)

	assert.ErrorIs(t, reg.Register(Theme{ID: "", Renderer: okRenderer("x")}), ErrInvalidTheme)
	assert.ErrorIs(t, reg.Register(Theme{ID: "no-renderer"}), ErrInvalidTheme)
}

func TestRegistry_GetByID_FallsBackToDefault(t *testing.T) {
	reg := NewRegistry("minimal")
	assert.NoError(t, reg.Register(Theme{ID: "minimal", Renderer: okRenderer("minimal")}))
	assert.NoError(t, reg.Register(Theme{ID: "modern", Renderer: okRenderer("modern")}))

	assert.Equal(t, "modern", reg.GetByID("modern").ID)
	assert.Equal(t, "minimal", reg.GetByID("does-not-exist").ID)
	assert.Equal(t, "minimal", reg.GetByID("").ID)
}

func TestRegistry_GetAll_RegistrationOrder(t *testing.T) {
	reg := NewRegistry("b")
	assert.NoError(t, reg.Register(Theme{ID: "c", Renderer: okRenderer("c")}))
	assert.NoError(t, reg.Register(Theme{ID: "a", Renderer: okRenderer("a")}))
	assert.NoError(t, reg.Register(Theme{ID: "b", Renderer: okRenderer("b")}))

	all := reg.GetAll()
	ids := make([]string, len(all))
	for i, th := range all {
		ids[i] = th.ID
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}
