package editor

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/namvu-dev/folioforge/internal/application/service"
	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
	"github.com/namvu-dev/folioforge/internal/domain/theme"
	"github.com/namvu-dev/folioforge/pkg/apperror"
	"github.com/namvu-dev/folioforge/pkg/logger"
)

type fakePortfolioRepo struct {
	root      *portfolio.Portfolio
	created   *portfolio.Portfolio
	createErr error
	published *bool
}

func (f *fakePortfolioRepo) Create(_ context.Context, p *portfolio.Portfolio) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = p
	return nil
}

func (f *fakePortfolioRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) (*portfolio.Portfolio, error) {
	if f.root == nil {
		return nil, apperror.NewNotFound("portfolio", ownerID.String())
	}
	return f.root, nil
}

func (f *fakePortfolioRepo) SetPublished(_ context.Context, _ uuid.UUID, _ uuid.UUID, published bool) error {
	f.published = &published
	return nil
}

func (f *fakePortfolioRepo) FetchFull(_ context.Context, _ portfolio.LookupKey) (*portfolio.RawRow, error) {
	if f.root == nil {
		return nil, apperror.NewNotFound("portfolio", "")
	}
	return &portfolio.RawRow{
		ID:        f.root.ID,
		OwnerID:   f.root.OwnerID,
		Username:  f.root.Username,
		TenantID:  f.root.TenantID,
		Published: f.root.Published,
		CreatedAt: f.root.CreatedAt,
	}, nil
}

func (f *fakePortfolioRepo) FetchMetadata(context.Context, portfolio.LookupKey) (*portfolio.Metadata, error) {
	return &portfolio.Metadata{}, nil
}

type fakeOptionsRepo struct {
	stored *portfolio.Options
}

func (f *fakeOptionsRepo) Upsert(_ context.Context, _ uuid.UUID, o portfolio.Options) error {
	f.stored = &o
	return nil
}

func (f *fakeOptionsRepo) GetByPortfolio(context.Context, uuid.UUID) (portfolio.Options, error) {
	if f.stored == nil {
		return portfolio.DefaultOptions(), nil
	}
	return *f.stored, nil
}

type fakeInvalidatingCache struct {
	patterns []string
}

func (f *fakeInvalidatingCache) Get(context.Context, string) (*theme.RenderedPage, error) {
	return nil, nil
}

func (f *fakeInvalidatingCache) Set(context.Context, string, *theme.RenderedPage, time.Duration) error {
	return nil
}

func (f *fakeInvalidatingCache) Invalidate(_ context.Context, pattern string) error {
	f.patterns = append(f.patterns, pattern)
	return nil
}

type fakePublisher struct {
	publishEvents []service.PublishEvent
}

func (f *fakePublisher) PublishView(context.Context, service.ViewEvent) error { return nil }

func (f *fakePublisher) PublishPublish(_ context.Context, ev service.PublishEvent) error {
	f.publishEvents = append(f.publishEvents, ev)
	return nil
}

type fakeViewStats struct {
	counts map[string]int64
	getErr error
}

func (f *fakeViewStats) Get(_ context.Context, portfolioID string) (int64, error) {
	if f.getErr != nil {
		return 0, f.getErr
	}
	return f.counts[portfolioID], nil
}

type nopRenderer struct{}

func (nopRenderer) Render(context.Context, *portfolio.Portfolio) (*theme.RenderedPage, error) {
	return &theme.RenderedPage{}, nil
}

func editorTestRegistry(t *testing.T) *theme.Registry {
	t.Helper()
	reg := theme.NewRegistry("minimal")
	assert.NoError(t, reg.Register(theme.Theme{ID: "minimal", Renderer: nopRenderer{}}))
	assert.NoError(t, reg.Register(theme.Theme{ID: "modern", Renderer: nopRenderer{}}))
	return reg
}

func testRoot() *portfolio.Portfolio {
	return &portfolio.Portfolio{
		ID:       uuid.New(),
		OwnerID:  uuid.New(),
		Username: "jane-doe",
		TenantID: "acme",
	}
}

func TestCreatePortfolio_RejectsBadUsername(t *testing.T) {
	repo := &fakePortfolioRepo{}
	uc := NewPortfolioUseCase(repo, &fakeInvalidatingCache{}, &fakePublisher{}, logger.NewNop())

	out, err := uc.ExecuteCreate(context.Background(), CreatePortfolioInput{
		OwnerID:  uuid.New(),
		Username: "Jane Doe",
	})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Nil(t, repo.created)
}

func TestCreatePortfolio_Succeeds(t *testing.T) {
	repo := &fakePortfolioRepo{}
	uc := NewPortfolioUseCase(repo, &fakeInvalidatingCache{}, &fakePublisher{}, logger.NewNop())

	out, err := uc.ExecuteCreate(context.Background(), CreatePortfolioInput{
		OwnerID:  uuid.New(),
		Username: "jane-doe",
		TenantID: "acme",
	})

	assert.NoError(t, err)
	assert.Equal(t, "jane-doe", out.Portfolio.Username)
	assert.False(t, out.Portfolio.Published)
	assert.NotNil(t, repo.created)
}

func TestSetPublished_InvalidatesAllKeysAndPublishesEvent(t *testing.T) {
	root := testRoot()
	repo := &fakePortfolioRepo{root: root}
	cache := &fakeInvalidatingCache{}
	events := &fakePublisher{}
	uc := NewPortfolioUseCase(repo, cache, events, logger.NewNop())

	out, err := uc.ExecuteSetPublished(context.Background(), SetPublishedInput{
		OwnerID:   root.OwnerID,
		Published: true,
	})

	assert.NoError(t, err)
	assert.True(t, out.Portfolio.Published)
	assert.NotNil(t, repo.published)
	assert.True(t, *repo.published)

	assert.Equal(t, []string{
		"portfolio:page:username:jane-doe:*",
		"portfolio:page:id:" + root.ID.String() + ":*",
		"portfolio:page:tenant:acme:*",
	}, cache.patterns)

	assert.Len(t, events.publishEvents, 1)
	assert.Equal(t, root.ID, events.publishEvents[0].PortfolioID)
	assert.True(t, events.publishEvents[0].Published)
}

func TestUpdateOptions_RejectsUnknownTheme(t *testing.T) {
	root := testRoot()
	optionsRepo := &fakeOptionsRepo{}
	uc := NewOptionsUseCase(&fakePortfolioRepo{root: root}, optionsRepo, editorTestRegistry(t), &fakeInvalidatingCache{}, logger.NewNop())

	out, err := uc.ExecuteUpdate(context.Background(), UpdateOptionsInput{
		OwnerID: root.OwnerID,
		Options: portfolio.Options{Theme: "does-not-exist"},
	})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Nil(t, optionsRepo.stored)
}

func TestUpdateOptions_DefaultsAndPersists(t *testing.T) {
	root := testRoot()
	optionsRepo := &fakeOptionsRepo{}
	cache := &fakeInvalidatingCache{}
	uc := NewOptionsUseCase(&fakePortfolioRepo{root: root}, optionsRepo, editorTestRegistry(t), cache, logger.NewNop())

	out, err := uc.ExecuteUpdate(context.Background(), UpdateOptionsInput{
		OwnerID: root.OwnerID,
		Options: portfolio.Options{Theme: "modern"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "modern", out.Options.Theme)
	assert.Equal(t, portfolio.DefaultColorTheme, out.Options.ColorTheme)
	assert.Equal(t, portfolio.DefaultFont, out.Options.Font)
	assert.NotNil(t, optionsRepo.stored)
	assert.Len(t, cache.patterns, 3)
}

func TestStats_ReturnsViewCount(t *testing.T) {
	root := testRoot()
	views := &fakeViewStats{counts: map[string]int64{root.ID.String(): 42}}
	uc := NewStatsUseCase(&fakePortfolioRepo{root: root}, views, logger.NewNop())

	out, err := uc.ExecuteGet(context.Background(), GetStatsInput{OwnerID: root.OwnerID})

	assert.NoError(t, err)
	assert.Equal(t, root.ID, out.PortfolioID)
	assert.Equal(t, int64(42), out.Views)
}

func TestStats_CounterErrorYieldsZero(t *testing.T) {
	root := testRoot()
	views := &fakeViewStats{getErr: assert.AnError}
	uc := NewStatsUseCase(&fakePortfolioRepo{root: root}, views, logger.NewNop())

	out, err := uc.ExecuteGet(context.Background(), GetStatsInput{OwnerID: root.OwnerID})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), out.Views)
}

func TestAddExperience_RequiresRoot(t *testing.T) {
	uc := NewExperienceUseCase(&fakePortfolioRepo{}, nil, &fakeInvalidatingCache{}, logger.NewNop())

	out, err := uc.ExecuteAdd(context.Background(), AddExperienceInput{
		OwnerID: uuid.New(),
		Role:    "Engineer",
		Company: "Acme",
	})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
