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

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) portfolio.ProjectRepository {
	return &postgresProjectRepo{db: db, logger: logger}
}

func (r *postgresProjectRepo) Save(ctx context.Context, portfolioID uuid.UUID, p *portfolio.Project) error {
	query := `
		INSERT INTO projects (id, portfolio_id, title, description, repository_url, live_url, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		p.ID, portfolioID, p.Title, p.Description, p.RepositoryURL, p.LiveURL, p.ImageURL, time.Now().UTC(),
	)
	if err != nil {
		return apperror.NewInternal("failed to save project", err)
	}
	return nil
}

func (r *postgresProjectRepo) Update(ctx context.Context, portfolioID uuid.UUID, p *portfolio.Project) error {
	query := `
		UPDATE projects SET
			title = $3, description = $4, repository_url = $5, live_url = $6, image_url = $7
		WHERE id = $1 AND portfolio_id = $2
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, portfolioID, p.Title, p.Description, p.RepositoryURL, p.LiveURL, p.ImageURL,
	)
	if err != nil {
		return apperror.NewInternal("failed to update project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", p.ID.String())
	}
	return nil
}

func (r *postgresProjectRepo) Delete(ctx context.Context, id uuid.UUID, portfolioID uuid.UUID) error {
	query := `DELETE FROM projects WHERE id = $1 AND portfolio_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, portfolioID)
	if err != nil {
		return apperror.NewInternal("failed to delete project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", id.String())
	}
	return nil
}

func (r *postgresProjectRepo) ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]portfolio.Project, error) {
	builder := psql.Select("id, title, description, repository_url, live_url, image_url").
		From("projects").
		Where(sq.Eq{"portfolio_id": portfolioID}).
		OrderBy("created_at", "id")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build project list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
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
