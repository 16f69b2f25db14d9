package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"jobtrail/internal/domain"
	"jobtrail/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

const jobStatsQuery = `SELECT
	COUNT(*) AS total_jobs,
	COUNT(CASE WHEN status = 'applied' THEN 1 END) AS applied,
	COUNT(CASE WHEN status = 'interview' THEN 1 END) AS interviews,
	COUNT(CASE WHEN status = 'offer' THEN 1 END) AS offers,
	COUNT(CASE WHEN status = 'rejected' THEN 1 END) AS rejected
FROM jobs`

func (r *statsRepo) GetStats(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats
	if err := r.db.GetContext(ctx, &stats, jobStatsQuery); err != nil {
		return nil, fmt.Errorf("statsRepo.GetStats: %w", err)
	}
	return &stats, nil
}
