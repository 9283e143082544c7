package service

import (
	"context"

	"eventgallery-backend/internal/domains/customer/model"
)

type CustomerService interface {
	// Register creates a new organizer account and signs it in
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error)

	// Login authenticates by email and password. A wrong email and a wrong
	// password produce the same model.ErrInvalidCredentials.
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)
}
