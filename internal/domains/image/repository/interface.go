package repository

import (
	"context"

	"github.com/google/uuid"

	"eventgallery-backend/internal/domains/image/model"
)

type ImageRepository interface {
	// Create inserts a new upload record
	Create(ctx context.Context, image *model.Image) error

	// GetByID gets an image by ID
	GetByID(ctx context.Context, id uuid.UUID) (*model.Image, error)

	// GetByIDs gets the given images ordered by upload time ascending.
	// Missing IDs are simply absent from the result.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Image, error)

	// ListByEvent lists an event's images with guest names, ordered by
	// upload time ascending
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.ImageWithGuest, error)

	// ListByEventAndGuest lists one guest's uploads for an event,
	// ordered by upload time ascending
	ListByEventAndGuest(ctx context.Context, eventID, guestID uuid.UUID) ([]*model.Image, error)

	// Delete removes an upload record; returns model.ErrImageNotFound
	// when no row matched
	Delete(ctx context.Context, id uuid.UUID) error
}
