package service

import (
	"context"

	"eventgallery-backend/internal/domains/admin/model"
)

type AdminService interface {
	// Login authenticates the configured admin account
	Login(ctx context.Context, req model.AdminLoginRequest) (*model.AdminAuthResponse, error)

	// Stats returns platform-wide totals
	Stats(ctx context.Context) (*model.StatsResponse, error)
}
