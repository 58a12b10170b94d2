package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/namvu-dev/folioforge/internal/domain/portfolio"
	"github.com/namvu-dev/folioforge/pkg/apperror"
	"github.com/namvu-dev/folioforge/pkg/logger"
)

// The options payload column stays an opaque blob; this repo is the single
// write path for it. Reads run through DecodeOptions so a malformed blob
// degrades to defaults instead of failing.
type postgresOptionsRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresOptionsRepo(db *pgxpool.Pool, logger logger.Logger) portfolio.OptionsRepository {
	return &postgresOptionsRepo{db: db, logger: logger}
}

func (r *postgresOptionsRepo) Upsert(ctx context.Context, portfolioID uuid.UUID, o portfolio.Options) error {
	payload, err := json.Marshal(o)
	if err != nil {
		return apperror.NewInternal("failed to marshal options payload", err)
	}

	query := `
		INSERT INTO options (id, portfolio_id, payload, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (portfolio_id) DO UPDATE SET payload = EXCLUDED.payload
	`
	_, err = r.db.Exec(ctx, query, uuid.New(), portfolioID, payload, time.Now().UTC())
	if err != nil {
		return apperror.NewInternal("failed to upsert options", err)
	}
	return nil
}

func (r *postgresOptionsRepo) GetByPortfolio(ctx context.Context, portfolioID uuid.UUID) (portfolio.Options, error) {
	query := `SELECT payload FROM options WHERE portfolio_id = $1 ORDER BY created_at, id LIMIT 1`
	var payload []byte
	err := r.db.QueryRow(ctx, query, portfolioID).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return portfolio.DefaultOptions(), nil
		}
		return portfolio.Options{}, apperror.NewInternal("failed to query options", err)
	}

	opts := portfolio.DecodeOptions(payload)
	if opts.Theme == portfolio.DefaultTheme && len(payload) > 0 && payload[0] != '{' && payload[0] != '"' {
		r.logger.Warn("options payload was not decodable, serving defaults",
			zap.String("portfolio_id", portfolioID.String()))
	}
	return opts, nil
}
