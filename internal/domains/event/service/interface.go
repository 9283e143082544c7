package service

import (
	"context"

	"github.com/google/uuid"

	"eventgallery-backend/internal/domains/event/model"
)

type EventService interface {
	// CreateEvent creates an event owned by the customer and assigns it
	// a unique join code
	CreateEvent(ctx context.Context, customerID uuid.UUID, req model.CreateEventRequest) (*model.EventResponse, error)

	// ListMyEvents lists the customer's own events
	ListMyEvents(ctx context.Context, customerID uuid.UUID) ([]model.EventResponse, error)

	// GetMyEvent returns one of the customer's events
	GetMyEvent(ctx context.Context, customerID, eventID uuid.UUID) (*model.EventResponse, error)

	// GetByCodePublic resolves an event by its join code, exposing only
	// public fields. Served from cache when possible.
	GetByCodePublic(ctx context.Context, code string) (*model.PublicEventInfo, error)

	// EnsureOwner returns the event if the customer owns it,
	// model.ErrNotEventOwner otherwise
	EnsureOwner(ctx context.Context, customerID, eventID uuid.UUID) (*model.Event, error)

	// GroupedGallery returns the event's full gallery grouped into
	// per-guest folders, owner only
	GroupedGallery(ctx context.Context, customerID, eventID uuid.UUID) (*model.GroupedGalleryResponse, error)
}
