package service

import (
	"context"

	"github.com/google/uuid"

	"eventgallery-backend/internal/domains/share/model"
)

type ShareLinkService interface {
	// Create builds a link over a fixed image selection of the customer's
	// own event. The selection is validated against the event and frozen.
	Create(ctx context.Context, customerID uuid.UUID, req model.CreateShareLinkRequest) (*model.ShareLinkResponse, error)

	// ListByEvent lists the customer's links for one of their events
	ListByEvent(ctx context.Context, customerID, eventID uuid.UUID) ([]model.ShareLinkResponse, error)

	// Resolve serves a link to an anonymous visitor. Returns
	// model.ErrShareNotFound, model.ErrShareExpired, or
	// model.ErrSharePasswordRequired; the latter covers both a missing and
	// a wrong password.
	Resolve(ctx context.Context, code string, password *string) (*model.SharedGalleryResponse, error)

	// Revoke deletes the link if the customer owns the underlying event.
	// Revoking an already-revoked code returns model.ErrShareNotFound.
	Revoke(ctx context.Context, customerID uuid.UUID, code string) error
}
