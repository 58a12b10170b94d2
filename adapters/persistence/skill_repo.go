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

// Writes go to the flat skills table; the legacy portfolio_skills join rows
// are read-only and surface through FetchFull.
type postgresSkillRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSkillRepo(db *pgxpool.Pool, logger logger.Logger) portfolio.SkillRepository {
	return &postgresSkillRepo{db: db, logger: logger}
}

func (r *postgresSkillRepo) Save(ctx context.Context, portfolioID uuid.UUID, s *portfolio.Skill) error {
	query := `
		INSERT INTO skills (id, portfolio_id, name, category, icon, color, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		s.ID, portfolioID, s.Name, s.Category, s.Icon, s.Color, time.Now().UTC(),
	)
	if err != nil {
		return apperror.NewInternal("failed to save skill", err)
	}
	return nil
}

func (r *postgresSkillRepo) Update(ctx context.Context, portfolioID uuid.UUID, s *portfolio.Skill) error {
	query := `
		UPDATE skills SET
			name = $3, category = $4, icon = $5, color = $6
		WHERE id = $1 AND portfolio_id = $2
	`
	cmdTag, err := r.db.Exec(ctx, query, s.ID, portfolioID, s.Name, s.Category, s.Icon, s.Color)
	if err != nil {
		return apperror.NewInternal("failed to update skill", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("skill", s.ID.String())
	}
	return nil
}

func (r *postgresSkillRepo) Delete(ctx context.Context, id uuid.UUID, portfolioID uuid.UUID) error {
	query := `DELETE FROM skills WHERE id = $1 AND portfolio_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, portfolioID)
	if err != nil {
		return apperror.NewInternal("failed to delete skill", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("skill", id.String())
	}
	return nil
}

func (r *postgresSkillRepo) ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]portfolio.Skill, error) {
	builder := psql.Select("id, name, category, icon, color").
		From("skills").
		Where(sq.Eq{"portfolio_id": portfolioID}).
		OrderBy("created_at", "id")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build skill list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skills", err)
	}
	defer rows.Close()

	items := make([]portfolio.Skill, 0)
	for rows.Next() {
		var s portfolio.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Icon, &s.Color); err != nil {
			return nil, apperror.NewInternal("failed to scan skill row", err)
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating skill rows", err)
	}
	return items, nil
}
