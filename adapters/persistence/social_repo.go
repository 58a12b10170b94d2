package persistence

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
	"github.com/namvu-dev/folioforge/pkg/apperror"
	"github.com/namvu-dev/folioforge/pkg/logger"
)

type postgresSocialRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSocialRepo(db *pgxpool.Pool, logger logger.Logger) portfolio.SocialRepository {
	return &postgresSocialRepo{db: db, logger: logger}
}

func (r *postgresSocialRepo) Save(ctx context.Context, portfolioID uuid.UUID, s *portfolio.Social) error {
	query := `
		INSERT INTO socials (id, portfolio_id, platform, url, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, s.ID, portfolioID, s.Platform, s.URL, time.Now().UTC())
	if err != nil {
		return apperror.NewInternal("failed to save social link", err)
	}
	return nil
}

func (r *postgresSocialRepo) Update(ctx context.Context, portfolioID uuid.UUID, s *portfolio.Social) error {
	query := `
		UPDATE socials SET platform = $3, url = $4
		WHERE id = $1 AND portfolio_id = $2
	`
	cmdTag, err := r.db.Exec(ctx, query, s.ID, portfolioID, s.Platform, s.URL)
	if err != nil {
		return apperror.NewInternal("failed to update social link", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("social link", s.ID.String())
	}
	return nil
}

func (r *postgresSocialRepo) Delete(ctx context.Context, id uuid.UUID, portfolioID uuid.UUID) error {
	query := `DELETE FROM socials WHERE id = $1 AND portfolio_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, portfolioID)
	if err != nil {
		return apperror.NewInternal("failed to delete social link", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("social link", id.String())
	}
	return nil
}

func (r *postgresSocialRepo) ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]portfolio.Social, error) {
	builder := psql.Select("id, platform, url").
		From("socials").
		Where(sq.Eq{"portfolio_id": portfolioID}).
		OrderBy("created_at", "id")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build social list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query social links", err)
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
