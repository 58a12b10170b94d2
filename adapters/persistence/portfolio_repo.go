package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
	"github.com/namvu-dev/folioforge/pkg/apperror"
	"github.com/namvu-dev/folioforge/pkg/logger"
)

type postgresPortfolioRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresPortfolioRepo(db *pgxpool.Pool, logger logger.Logger) portfolio.Repository {
	return &postgresPortfolioRepo{db: db, logger: logger}
}

// keyPredicate maps a lookup key onto the portfolios column it addresses.
// All three kinds feed the same queries.
func keyPredicate(key portfolio.LookupKey) (string, any, error) {
	switch key.Kind {
	case portfolio.KeyUsername:
		return "username = $1", key.Value, nil
	case portfolio.KeyID:
		id, err := uuid.Parse(key.Value)
		if err != nil {
			return "", nil, apperror.NewNotFound("portfolio", key.Value)
		}
		return "id = $1", id, nil
	case portfolio.KeyTenant:
		return "tenant_id = $1", key.Value, nil
	default:
		return "", nil, apperror.NewInvalidInput("unknown lookup key kind: "+string(key.Kind), nil)
	}
}

func (r *postgresPortfolioRepo) Create(ctx context.Context, p *portfolio.Portfolio) error {
	query := `
		INSERT INTO portfolios (id, owner_id, username, tenant_id, published, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, p.ID, p.OwnerID, p.Username, p.TenantID, p.Published, p.CreatedAt)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return apperror.NewConflict("portfolio", "username", p.Username)
		}
		return apperror.NewInternal("failed to create portfolio", err)
	}
	return nil
}

func (r *postgresPortfolioRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*portfolio.Portfolio, error) {
	query := `
		SELECT id, owner_id, username, tenant_id, published, created_at
		FROM portfolios
		WHERE owner_id = $1
	`
	p := &portfolio.Portfolio{}
	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&p.ID, &p.OwnerID, &p.Username, &p.TenantID, &p.Published, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("portfolio", ownerID.String())
		}
		return nil, apperror.NewInternal("failed to query portfolio by owner", err)
	}
	return p, nil
}

func (r *postgresPortfolioRepo) SetPublished(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, published bool) error {
	query := `UPDATE portfolios SET published = $3 WHERE id = $1 AND owner_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID, published)
	if err != nil {
		return apperror.NewInternal("failed to update published flag", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("portfolio", id.String())
	}
	return nil
}

// FetchFull loads the root row and every related collection into the raw
// boundary shape. Only a missing root row is an error; child queries feed
// the assembler as-is.
func (r *postgresPortfolioRepo) FetchFull(ctx context.Context, key portfolio.LookupKey) (*portfolio.RawRow, error) {
	pred, arg, err := keyPredicate(key)
	if err != nil {
		return nil, err
	}

	raw := &portfolio.RawRow{}
	rootQuery := `
		SELECT id, owner_id, username, tenant_id, published, created_at
		FROM portfolios
		WHERE ` + pred
	err = r.db.QueryRow(ctx, rootQuery, arg).Scan(
		&raw.ID, &raw.OwnerID, &raw.Username, &raw.TenantID, &raw.Published, &raw.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("portfolio", key.Value)
		}
		return nil, apperror.NewInternal("failed to query portfolio root row", err)
	}

	if raw.Content, err = r.fetchContent(ctx, raw.ID); err != nil {
		return nil, err
	}
	if raw.Options, err = r.fetchOptions(ctx, raw.ID); err != nil {
		return nil, err
	}
	if raw.Experiences, err = r.fetchExperiences(ctx, raw.ID); err != nil {
		return nil, err
	}
	if raw.Educations, err = r.fetchEducations(ctx, raw.ID); err != nil {
		return nil, err
	}
	if raw.Projects, err = r.fetchProjects(ctx, raw.ID); err != nil {
		return nil, err
	}
	if raw.Skills, err = r.fetchSkills(ctx, raw.ID); err != nil {
		return nil, err
	}
	if raw.Socials, err = r.fetchSocials(ctx, raw.ID); err != nil {
		return nil, err
	}

	return raw, nil
}

func (r *postgresPortfolioRepo) FetchMetadata(ctx context.Context, key portfolio.LookupKey) (*portfolio.Metadata, error) {
	pred, arg, err := keyPredicate(key)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT COALESCE(c.meta_title, ''), COALESCE(c.meta_description, '')
		FROM portfolios p
		LEFT JOIN contents c ON c.portfolio_id = p.id
		WHERE p.` + pred
	meta := &portfolio.Metadata{}
	err = r.db.QueryRow(ctx, query, arg).Scan(&meta.Title, &meta.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("portfolio", key.Value)
		}
		return nil, apperror.NewInternal("failed to query portfolio metadata", err)
	}
	return meta, nil
}

func (r *postgresPortfolioRepo) fetchContent(ctx context.Context, portfolioID uuid.UUID) (*portfolio.Content, error) {
	query := `
		SELECT hero_title, hero_description, meta_title, meta_description, about
		FROM contents
		WHERE portfolio_id = $1
	`
	c := &portfolio.Content{}
	err := r.db.QueryRow(ctx, query, portfolioID).Scan(
		&c.HeroTitle, &c.HeroDescription, &c.MetaTitle, &c.MetaDescription, &c.About,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewInternal("failed to query content row", err)
	}
	return c, nil
}

func (r *postgresPortfolioRepo) fetchOptions(ctx context.Context, portfolioID uuid.UUID) ([]json.RawMessage, error) {
	query := `SELECT payload FROM options WHERE portfolio_id = $1 ORDER BY created_at, id`
	rows, err := r.db.Query(ctx, query, portfolioID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query option rows", err)
	}
	defer rows.Close()

	blobs := make([]json.RawMessage, 0, 1)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, apperror.NewInternal("failed to scan option row", err)
		}
		blobs = append(blobs, json.RawMessage(payload))
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating option rows", err)
	}
	return blobs, nil
}

func (r *postgresPortfolioRepo) fetchExperiences(ctx context.Context, portfolioID uuid.UUID) ([]portfolio.Experience, error) {
	query := `
		SELECT id, role, company, employment_type, start_date, end_date, description, logo_url
		FROM experiences
		WHERE portfolio_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.db.Query(ctx, query, portfolioID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query experience rows", err)
	}
	defer rows.Close()

	items := make([]portfolio.Experience, 0)
	for rows.Next() {
		var e portfolio.Experience
		if err := rows.Scan(&e.ID, &e.Role, &e.Company, &e.EmploymentType, &e.StartDate, &e.EndDate, &e.Description, &e.LogoURL); err != nil {
			return nil, apperror.NewInternal("failed to scan experience row", err)
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating experience rows", err)
	}
	return items, nil
}

func (r *postgresPortfolioRepo) fetchEducations(ctx context.Context, portfolioID uuid.UUID) ([]portfolio.Education, error) {
	query := `
		SELECT id, school, degree, field, start_date, end_date
		FROM educations
		WHERE portfolio_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.db.Query(ctx, query, portfolioID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query education rows", err)
	}
	defer rows.Close()

	items := make([]portfolio.Education, 0)
	for rows.Next() {
		var e portfolio.Education
		if err := rows.Scan(&e.ID, &e.School, &e.Degree, &e.Field, &e.StartDate, &e.EndDate); err != nil {
			return nil, apperror.NewInternal("failed to scan education row", err)
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating education rows", err)
	}
	return items, nil
}

func (r *postgresPortfolioRepo) fetchProjects(ctx context.Context, portfolioID uuid.UUID) ([]portfolio.Project, error) {
	query := `
		SELECT id, title, description, repository_url, live_url, image_url
		FROM projects
		WHERE portfolio_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.db.Query(ctx, query, portfolioID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query project rows", err)
	}
	defer rows.Close()

	items := make([]portfolio.Project, 0)
	for rows.Next() {
		var p portfolio.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.RepositoryURL, &p.LiveURL, &p.ImageURL); err != nil {
			return nil, apperror.NewInternal("failed to scan project row", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return items, nil
}

// fetchSkills reads both skill storage shapes: flat per-portfolio rows from
// skills, and join-through rows referencing the shared skill_library. The
// assembler flattens the union.
func (r *postgresPortfolioRepo) fetchSkills(ctx context.Context, portfolioID uuid.UUID) ([]portfolio.RawSkillEntry, error) {
	entries := make([]portfolio.RawSkillEntry, 0)

	flatQuery := `
		SELECT id, name, category, icon, color
		FROM skills
		WHERE portfolio_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.db.Query(ctx, flatQuery, portfolioID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skill rows", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s portfolio.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Icon, &s.Color); err != nil {
			return nil, apperror.NewInternal("failed to scan skill row", err)
		}
		entries = append(entries, portfolio.FlatSkill(s))
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating skill rows", err)
	}

	joinQuery := `
		SELECT ps.id, sl.name, sl.category, sl.icon, sl.color
		FROM portfolio_skills ps
		JOIN skill_library sl ON sl.id = ps.skill_id
		WHERE ps.portfolio_id = $1
		ORDER BY ps.created_at, ps.id
	`
	joinRows, err := r.db.Query(ctx, joinQuery, portfolioID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query portfolio_skills rows", err)
	}
	defer joinRows.Close()

	for joinRows.Next() {
		var s portfolio.Skill
		if err := joinRows.Scan(&s.ID, &s.Name, &s.Category, &s.Icon, &s.Color); err != nil {
			return nil, apperror.NewInternal("failed to scan portfolio_skills row", err)
		}
		entries = append(entries, portfolio.WrappedSkill(s))
	}
	if err := joinRows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating portfolio_skills rows", err)
	}

	return entries, nil
}

func (r *postgresPortfolioRepo) fetchSocials(ctx context.Context, portfolioID uuid.UUID) ([]portfolio.Social, error) {
	query := `
		SELECT id, platform, url
		FROM socials
		WHERE portfolio_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.db.Query(ctx, query, portfolioID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query social rows", err)
	}
	defer rows.Close()

	items := make([]portfolio.Social, 0)
	for rows.Next() {
		var s portfolio.Social
		if err := rows.Scan(&s.ID, &s.Platform, &s.URL); err != nil {
			return nil, apperror.NewInternal("failed to scan social row", err)
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating social rows", err)
	}
	return items, nil
}
