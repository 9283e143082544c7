package repository

import (
	"context"

	"github.com/google/uuid"

	"eventgallery-backend/internal/domains/guest/model"
)

type GuestRepository interface {
	// Create inserts a new guest; returns model.ErrGuestEmailTaken when
	// the email is already registered on the same event
	Create(ctx context.Context, guest *model.Guest) error

	// GetByID gets a guest by ID
	GetByID(ctx context.Context, id uuid.UUID) (*model.Guest, error)

	// GetByEventAndEmail gets a guest by their event and email
	GetByEventAndEmail(ctx context.Context, eventID uuid.UUID, email string) (*model.Guest, error)
}
