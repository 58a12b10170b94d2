package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
	"github.com/namvu-dev/folioforge/pkg/apperror"
	"github.com/namvu-dev/folioforge/pkg/logger"
)

type postgresContentRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresContentRepo(db *pgxpool.Pool, logger logger.Logger) portfolio.ContentRepository {
	return &postgresContentRepo{db: db, logger: logger}
}

func (r *postgresContentRepo) Upsert(ctx context.Context, portfolioID uuid.UUID, c *portfolio.Content) error {
	query := `
		INSERT INTO contents (portfolio_id, hero_title, hero_description, meta_title, meta_description, about)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (portfolio_id) DO UPDATE SET
			hero_title = EXCLUDED.hero_title,
			hero_description = EXCLUDED.hero_description,
			meta_title = EXCLUDED.meta_title,
			meta_description = EXCLUDED.meta_description,
			about = EXCLUDED.about
	`
	_, err := r.db.Exec(ctx, query,
		portfolioID, c.HeroTitle, c.HeroDescription, c.MetaTitle, c.MetaDescription, c.About,
	)
	if err != nil {
		return apperror.NewInternal("failed to upsert content", err)
	}
	return nil
}

func (r *postgresContentRepo) GetByPortfolio(ctx context.Context, portfolioID uuid.UUID) (*portfolio.Content, error) {
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
			// The dashboard starts from an empty form, not an error.
			return &portfolio.Content{}, nil
		}
		return nil, apperror.NewInternal("failed to query content", err)
	}
	return c, nil
}
