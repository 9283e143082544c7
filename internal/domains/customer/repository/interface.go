package repository

import (
	"context"

	"github.com/google/uuid"

	"eventgallery-backend/internal/domains/customer/model"
)

type CustomerRepository interface {
	// Create inserts a new account; returns model.ErrEmailTaken on a
	// duplicate email
	Create(ctx context.Context, customer *model.Customer) error

	// GetByEmail gets an account by email
	GetByEmail(ctx context.Context, email string) (*model.Customer, error)

	// GetByID gets an account by ID
	GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
}
