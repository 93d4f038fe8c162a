package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teleka/teleka-taxi/internal/domain/models"
	"github.com/teleka/teleka-taxi/internal/domain/types"
	"github.com/teleka/teleka-taxi/pkg/trm"
)

// StatsRepo stores the single driver stats document as a jsonb row.
type StatsRepo struct {
	db  *pgxpool.Pool
	trm trm.TxManager
}

func NewStatsRepo(db *pgxpool.Pool, trm trm.TxManager) *StatsRepo {
	return &StatsRepo{db: db, trm: trm}
}

func (r *StatsRepo) Save(ctx context.Context, stats *models.DriverStats) error {
	q := TxorDB(ctx, r.db)

	query := `INSERT INTO driver_stats (id, doc) VALUES (1, $1)
	          ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc;`
	if _, err := q.Exec(ctx, query, stats); err != nil {
		return fmt.Errorf("stats repo: Save: %w", err)
	}
	return nil
}

func (r *StatsRepo) Get(ctx context.Context) (*models.DriverStats, error) {
	q := TxorDB(ctx, r.db)

	var stats models.DriverStats
	if err := q.QueryRow(ctx, `SELECT doc FROM driver_stats WHERE id = 1;`).Scan(&stats); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("stats repo: Get: %w", err)
	}
	return &stats, nil
}
