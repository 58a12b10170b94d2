package persistence

import (
	"time"

	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
	"github.com/namvu-dev/folioforge/pkg/apperror"
	"github.com/namvu-dev/folioforge/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type postgresExperienceRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresExperienceRepo(db *pgxpool.Pool, logger logger.Logger) portfolio.ExperienceRepository {
	return &postgresExperienceRepo{db: db, logger: logger}
}

func (r *postgresExperienceRepo) Save(ctx context.Context, portfolioID uuid.UUID, e *portfolio.Experience) error {
	query := `
		INSERT INTO experiences (id, portfolio_id, role, company, employment_type, start_date, end_date, description, logo_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		e.ID, portfolioID, e.Role, e.Company, e.EmploymentType,
		e.StartDate, e.EndDate, e.Description, e.LogoURL, time.Now().UTC(),
	)
	if err != nil {
		return apperror.NewInternal("failed to save experience", err)
	}
	return nil
}

func (r *postgresExperienceRepo) Update(ctx context.Context, portfolioID uuid.UUID, e *portfolio.Experience) error {
	query := `
		UPDATE experiences SET
			role = $3, company = $4, employment_type = $5, start_date = $6,
			end_date = $7, description = $8, logo_url = $9
		WHERE id = $1 AND portfolio_id = $2
	`
	cmdTag, err := r.db.Exec(ctx, query,
		e.ID, portfolioID, e.Role, e.Company, e.EmploymentType,
		e.StartDate, e.EndDate, e.Description, e.LogoURL,
	)
	if err != nil {
		return apperror.NewInternal("failed to update experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("experience", e.ID.String())
	}
	return nil
}

func (r *postgresExperienceRepo) Delete(ctx context.Context, id uuid.UUID, portfolioID uuid.UUID) error {
	query := `DELETE FROM experiences WHERE id = $1 AND portfolio_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, portfolioID)
	if err != nil {
		return apperror.NewInternal("failed to delete experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("experience", id.String())
	}
	return nil
}

func (r *postgresExperienceRepo) ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]portfolio.Experience, error) {
	builder := psql.Select("id, role, company, employment_type, start_date, end_date, description, logo_url").
		From("experiences").
		Where(sq.Eq{"portfolio_id": portfolioID}).
		OrderBy("created_at", "id")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build experience list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query experiences", err)
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
