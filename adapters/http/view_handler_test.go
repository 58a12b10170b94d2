package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	viewUC "github.com/namvu-dev/folioforge/internal/application/usecase/view"
	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
	"github.com/namvu-dev/folioforge/internal/domain/theme"
	"github.com/namvu-dev/folioforge/pkg/apperror"
	"github.com/namvu-dev/folioforge/pkg/logger"
)

type stubPortfolioRepo struct {
	rows map[string]*portfolio.RawRow
}

func (s *stubPortfolioRepo) Create(context.Context, *portfolio.Portfolio) error { return nil }
func (s *stubPortfolioRepo) FindByOwner(context.Context, uuid.UUID) (*portfolio.Portfolio, error) {
	return nil, nil
}
func (s *stubPortfolioRepo) SetPublished(context.Context, uuid.UUID, uuid.UUID, bool) error {
	return nil
}
func (s *stubPortfolioRepo) FetchFull(_ context.Context, key portfolio.LookupKey) (*portfolio.RawRow, error) {
	if row, ok := s.rows[key.String()]; ok {
		return row, nil
	}
	return nil, apperror.NewNotFound("portfolio", key.Value)
}
func (s *stubPortfolioRepo) FetchMetadata(_ context.Context, key portfolio.LookupKey) (*portfolio.Metadata, error) {
	if row, ok := s.rows[key.String()]; ok && row.Content != nil {
		return &portfolio.Metadata{Title: row.Content.MetaTitle, Description: row.Content.MetaDescription}, nil
	}
	if _, ok := s.rows[key.String()]; ok {
		return &portfolio.Metadata{}, nil
	}
	return nil, apperror.NewNotFound("portfolio", key.Value)
}

type echoRenderer struct{}

func (echoRenderer) Render(_ context.Context, p *portfolio.Portfolio) (*theme.RenderedPage, error) {
	return &theme.RenderedPage{
		Title: p.Username,
		HTML:  []byte("<h1>" + p.Username + "</h1>"),
	}, nil
}

func newViewTestRouter(t *testing.T, repo portfolio.Repository) *gin.Engine {
	t.Helper()

	reg := theme.NewRegistry("minimal")
	assert.NoError(t, reg.Register(theme.Theme{ID: "minimal", Renderer: echoRenderer{}}))

	log := logger.NewNop()
	view := viewUC.NewViewPortfolioUseCase(repo, reg, nil, nil, time.Minute, log)
	metadata := viewUC.NewPortfolioMetadataUseCase(repo, log)
	handler := NewViewHandler(view, metadata, log)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(log))

	p := router.Group("/api/p")
	{
		p.GET("/id/:id", handler.ByID)
		p.GET("/id/:id/meta", handler.MetaByID)
		p.GET("/t/:tenant", handler.ByTenant)
		p.GET("/:username", handler.ByUsername)
		p.GET("/:username/meta", handler.MetaByUsername)
	}
	return router
}

func publishedRawRow(username, tenant string) *portfolio.RawRow {
	return &portfolio.RawRow{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		Username:  username,
		TenantID:  tenant,
		Published: true,
		CreatedAt: time.Now().UTC(),
		Content:   &portfolio.Content{MetaTitle: "Jane Doe", MetaDescription: "Backend engineer"},
	}
}

func TestViewHandler_ByUsername(t *testing.T) {
	row := publishedRawRow("jane-doe", "acme")
	repo := &stubPortfolioRepo{rows: map[string]*portfolio.RawRow{
		portfolio.ByUsername("jane-doe").String(): row,
	}}
	router := newViewTestRouter(t, repo)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/p/jane-doe", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "<h1>jane-doe</h1>")
}

func TestViewHandler_ByTenant(t *testing.T) {
	row := publishedRawRow("jane-doe", "acme")
	repo := &stubPortfolioRepo{rows: map[string]*portfolio.RawRow{
		portfolio.ByTenant("acme").String(): row,
	}}
	router := newViewTestRouter(t, repo)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/p/t/acme", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "jane-doe")
}

func TestViewHandler_ByID_InvalidUUID(t *testing.T) {
	router := newViewTestRouter(t, &stubPortfolioRepo{rows: map[string]*portfolio.RawRow{}})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/p/id/not-a-uuid", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestViewHandler_UnknownUsername(t *testing.T) {
	router := newViewTestRouter(t, &stubPortfolioRepo{rows: map[string]*portfolio.RawRow{}})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/p/ghost", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "not found", body["error"])
}

func TestViewHandler_Meta(t *testing.T) {
	row := publishedRawRow("jane-doe", "acme")
	repo := &stubPortfolioRepo{rows: map[string]*portfolio.RawRow{
		portfolio.ByUsername("jane-doe").String(): row,
	}}
	router := newViewTestRouter(t, repo)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/p/jane-doe/meta", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var meta MetadataDTO
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &meta))
	assert.Equal(t, "Jane Doe", meta.Title)
	assert.Equal(t, "Backend engineer", meta.Description)
}
