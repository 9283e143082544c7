package repository

import (
	"context"

	"github.com/google/uuid"

	"eventgallery-backend/internal/domains/event/model"
)

type EventRepository interface {
	// Create inserts a new event; returns model.ErrEventCodeTaken on a
	// duplicate code
	Create(ctx context.Context, event *model.Event) error

	// GetByID gets an event by ID
	GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error)

	// GetByCode gets an event by its unique code
	GetByCode(ctx context.Context, code string) (*model.Event, error)

	// ListByCustomer lists the customer's events, newest first
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*model.Event, error)
}
