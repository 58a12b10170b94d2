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

type postgresEducationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresEducationRepo(db *pgxpool.Pool, logger logger.Logger) portfolio.EducationRepository {
	return &postgresEducationRepo{db: db, logger: logger}
}

func (r *postgresEducationRepo) Save(ctx context.Context, portfolioID uuid.UUID, e *portfolio.Education) error {
	query := `
		INSERT INTO educations (id, portfolio_id, school, degree, field, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		e.ID, portfolioID, e.School, e.Degree, e.Field, e.StartDate, e.EndDate, time.Now().UTC(),
	)
	if err != nil {
		return apperror.NewInternal("failed to save education", err)
	}
	return nil
}

func (r *postgresEducationRepo) Update(ctx context.Context, portfolioID uuid.UUID, e *portfolio.Education) error {
	query := `
		UPDATE educations SET
			school = $3, degree = $4, field = $5, start_date = $6, end_date = $7
		WHERE id = $1 AND portfolio_id = $2
	`
	cmdTag, err := r.db.Exec(ctx, query,
		e.ID, portfolioID, e.School, e.Degree, e.Field, e.StartDate, e.EndDate,
	)
	if err != nil {
		return apperror.NewInternal("failed to update education", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("education", e.ID.String())
	}
	return nil
}

func (r *postgresEducationRepo) Delete(ctx context.Context, id uuid.UUID, portfolioID uuid.UUID) error {
	query := `DELETE FROM educations WHERE id = $1 AND portfolio_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, portfolioID)
	if err != nil {
		return apperror.NewInternal("failed to delete education", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("education", id.String())
	}
	return nil
}

func (r *postgresEducationRepo) ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]portfolio.Education, error) {
	builder := psql.Select("id, school, degree, field, start_date, end_date").
		From("educations").
		Where(sq.Eq{"portfolio_id": portfolioID}).
		OrderBy("created_at", "id")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build education list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query educations", err)
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
