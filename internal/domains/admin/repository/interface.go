package repository

import (
	"context"

	"eventgallery-backend/internal/domains/admin/model"
)

type StatsRepository interface {
	// Counts gathers platform-wide totals for the admin dashboard
	Counts(ctx context.Context) (*model.StatsResponse, error)
}
