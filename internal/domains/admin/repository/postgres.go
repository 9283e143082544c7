package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"eventgallery-backend/internal/domains/admin/model"
)

type postgresStatsRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresStatsRepository(pool *pgxpool.Pool) StatsRepository {
	return &postgresStatsRepository{pool: pool}
}

func (r *postgresStatsRepository) Counts(ctx context.Context) (*model.StatsResponse, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM events),
			(SELECT COUNT(*) FROM guests),
			(SELECT COUNT(*) FROM images),
			(SELECT COUNT(*) FROM share_links)
	`

	stats := &model.StatsResponse{}
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalCustomers,
		&stats.TotalEvents,
		&stats.TotalGuests,
		&stats.TotalImages,
		&stats.TotalShareLinks,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count platform stats: %w", err)
	}

	return stats, nil
}
