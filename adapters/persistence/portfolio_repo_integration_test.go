package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
	"github.com/namvu-dev/folioforge/internal/domain/user"
	"github.com/namvu-dev/folioforge/pkg/apperror"
	"github.com/namvu-dev/folioforge/pkg/logger"
)

type PortfolioRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	testLogger  logger.Logger

	portfolioRepo  portfolio.Repository
	contentRepo    portfolio.ContentRepository
	optionsRepo    portfolio.OptionsRepository
	experienceRepo portfolio.ExperienceRepository
	skillRepo      portfolio.SkillRepository
	userRepo       user.Repository

	testOwner *user.User
}

func (s *PortfolioRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.testLogger = logger.NewNop()
	s.portfolioRepo = NewPostgresPortfolioRepo(s.dbPool, s.testLogger)
	s.contentRepo = NewPostgresContentRepo(s.dbPool, s.testLogger)
	s.optionsRepo = NewPostgresOptionsRepo(s.dbPool, s.testLogger)
	s.experienceRepo = NewPostgresExperienceRepo(s.dbPool, s.testLogger)
	s.skillRepo = NewPostgresSkillRepo(s.dbPool, s.testLogger)
	s.userRepo = NewPostgresUserRepo(s.dbPool)

	s.testOwner = &user.User{
		ID:           uuid.New(),
		Email:        "testowner@example.com",
		PasswordHash: "hashedpassword",
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.Save(ctx, s.testOwner); err != nil {
		s.T().Fatalf("Failed to seed owner: %s", err)
	}
}

func (s *PortfolioRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestPortfolioRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(PortfolioRepoIntegrationTestSuite))
}

func (s *PortfolioRepoIntegrationTestSuite) newPortfolio(username, tenant string) *portfolio.Portfolio {
	ctx := context.Background()

	owner := &user.User{
		ID:           uuid.New(),
		Email:        username + "@example.com",
		PasswordHash: "hashedpassword",
		CreatedAt:    time.Now().UTC(),
	}
	s.Require().NoError(s.userRepo.Save(ctx, owner))

	p := &portfolio.Portfolio{
		ID:        uuid.New(),
		OwnerID:   owner.ID,
		Username:  username,
		TenantID:  tenant,
		Published: true,
		CreatedAt: time.Now().UTC(),
	}
	s.Require().NoError(s.portfolioRepo.Create(ctx, p))
	return p
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Create_And_FindByOwner() {
	ctx := context.Background()
	p := s.newPortfolio("find-by-owner", "tenant-a")

	found, err := s.portfolioRepo.FindByOwner(ctx, p.OwnerID)
	s.Require().NoError(err)
	s.Equal(p.ID, found.ID)
	s.Equal("find-by-owner", found.Username)
	s.Equal("tenant-a", found.TenantID)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Create_DuplicateUsername() {
	ctx := context.Background()
	s.newPortfolio("taken-name", "tenant-dup")

	owner := &user.User{
		ID:           uuid.New(),
		Email:        "second-owner@example.com",
		PasswordHash: "hashedpassword",
		CreatedAt:    time.Now().UTC(),
	}
	s.Require().NoError(s.userRepo.Save(ctx, owner))

	dup := &portfolio.Portfolio{
		ID:        uuid.New(),
		OwnerID:   owner.ID,
		Username:  "taken-name",
		CreatedAt: time.Now().UTC(),
	}
	err := s.portfolioRepo.Create(ctx, dup)
	s.Require().Error(err)
	s.ErrorIs(err, apperror.ErrConflict)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_SetPublished() {
	ctx := context.Background()
	p := s.newPortfolio("publish-toggle", "tenant-b")

	s.Require().NoError(s.portfolioRepo.SetPublished(ctx, p.ID, p.OwnerID, false))

	found, err := s.portfolioRepo.FindByOwner(ctx, p.OwnerID)
	s.Require().NoError(err)
	s.False(found.Published)

	err = s.portfolioRepo.SetPublished(ctx, uuid.New(), p.OwnerID, true)
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_FetchFull_AllLookupKeys() {
	ctx := context.Background()
	p := s.newPortfolio("all-keys", "tenant-keys")

	for _, key := range []portfolio.LookupKey{
		portfolio.ByUsername("all-keys"),
		portfolio.ByID(p.ID),
		portfolio.ByTenant("tenant-keys"),
	} {
		raw, err := s.portfolioRepo.FetchFull(ctx, key)
		s.Require().NoError(err, "lookup via %s", key)
		s.Equal(p.ID, raw.ID)
	}

	_, err := s.portfolioRepo.FetchFull(ctx, portfolio.ByUsername("no-such-user"))
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_FetchFull_WithChildren() {
	ctx := context.Background()
	p := s.newPortfolio("with-children", "tenant-c")

	s.Require().NoError(s.contentRepo.Upsert(ctx, p.ID, &portfolio.Content{
		HeroTitle: "Hello", MetaTitle: "Meta Hello",
	}))

	opts := portfolio.DefaultOptions()
	opts.Theme = "modern"
	s.Require().NoError(s.optionsRepo.Upsert(ctx, p.ID, opts))

	s.Require().NoError(s.experienceRepo.Save(ctx, p.ID, &portfolio.Experience{
		ID: uuid.New(), Role: "Engineer", Company: "Acme", StartDate: time.Now().UTC().AddDate(-1, 0, 0),
	}))

	s.Require().NoError(s.skillRepo.Save(ctx, p.ID, &portfolio.Skill{
		ID: uuid.New(), Name: "Go", Category: "backend",
	}))

	// Legacy join-table rows still have to surface as skills.
	libSkillID := uuid.New()
	_, err := s.dbPool.Exec(ctx,
		`INSERT INTO skill_library (id, name, category) VALUES ($1, $2, $3)`,
		libSkillID, "Postgres", "storage")
	s.Require().NoError(err)
	_, err = s.dbPool.Exec(ctx,
		`INSERT INTO portfolio_skills (id, portfolio_id, skill_id, created_at) VALUES ($1, $2, $3, $4)`,
		uuid.New(), p.ID, libSkillID, time.Now().UTC())
	s.Require().NoError(err)

	raw, err := s.portfolioRepo.FetchFull(ctx, portfolio.ByID(p.ID))
	s.Require().NoError(err)

	s.Require().NotNil(raw.Content)
	s.Equal("Hello", raw.Content.HeroTitle)
	s.Require().Len(raw.Options, 1)
	s.Require().Len(raw.Experiences, 1)
	s.Equal("Engineer", raw.Experiences[0].Role)
	s.Require().Len(raw.Skills, 2)

	model, err := portfolio.Assemble(raw, s.testLogger)
	s.Require().NoError(err)
	s.Equal("modern", model.Options.Theme)

	names := []string{model.Skills[0].Name, model.Skills[1].Name}
	s.ElementsMatch([]string{"Go", "Postgres"}, names)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_FetchMetadata() {
	ctx := context.Background()
	p := s.newPortfolio("with-meta", "tenant-d")

	s.Require().NoError(s.contentRepo.Upsert(ctx, p.ID, &portfolio.Content{
		MetaTitle: "Jane Doe", MetaDescription: "Backend engineer",
	}))

	meta, err := s.portfolioRepo.FetchMetadata(ctx, portfolio.ByUsername("with-meta"))
	s.Require().NoError(err)
	s.Equal("Jane Doe", meta.Title)
	s.Equal("Backend engineer", meta.Description)

	// No content row yet: metadata still resolves, just empty.
	bare := s.newPortfolio("bare-meta", "tenant-e")
	meta, err = s.portfolioRepo.FetchMetadata(ctx, portfolio.ByID(bare.ID))
	s.Require().NoError(err)
	s.Empty(meta.Title)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Options_RoundTripAndDefaults() {
	ctx := context.Background()
	p := s.newPortfolio("options-trip", "tenant-f")

	// No row yet: defaults, not an error.
	opts, err := s.optionsRepo.GetByPortfolio(ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(portfolio.DefaultOptions(), opts)

	stored := portfolio.DefaultOptions()
	stored.Theme = "modern"
	stored.ColorTheme = "dark"
	s.Require().NoError(s.optionsRepo.Upsert(ctx, p.ID, stored))

	// Upsert again to exercise the conflict path.
	stored.Font = "mono"
	s.Require().NoError(s.optionsRepo.Upsert(ctx, p.ID, stored))

	opts, err = s.optionsRepo.GetByPortfolio(ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("modern", opts.Theme)
	s.Equal("dark", opts.ColorTheme)
	s.Equal("mono", opts.Font)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Options_MalformedPayloadDegrades() {
	ctx := context.Background()
	p := s.newPortfolio("options-bad", "tenant-g")

	_, err := s.dbPool.Exec(ctx,
		`INSERT INTO options (id, portfolio_id, payload, created_at) VALUES ($1, $2, $3, $4)`,
		uuid.New(), p.ID, []byte(`"{\"theme\":\"modern\"}"`), time.Now().UTC())
	s.Require().NoError(err)

	// Double-encoded payloads decode through the string layer.
	opts, err := s.optionsRepo.GetByPortfolio(ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("modern", opts.Theme)
	s.Equal(portfolio.DefaultFont, opts.Font)
}
