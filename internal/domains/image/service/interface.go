package service

import (
	"context"

	"github.com/google/uuid"

	"eventgallery-backend/internal/domains/image/model"
)

type ImageService interface {
	// RecordUpload registers a stored file against the guest's own event
	RecordUpload(ctx context.Context, guestID, eventID uuid.UUID, req model.RecordUploadRequest) (*model.ImageResponse, error)

	// ListMyUploads lists the guest's own uploads for their event
	ListMyUploads(ctx context.Context, guestID, eventID uuid.UUID) ([]model.ImageResponse, error)

	// DeleteAsGuest deletes the guest's own upload while the event's
	// edit window is still open
	DeleteAsGuest(ctx context.Context, guestID, imageID uuid.UUID) error

	// DeleteAsCustomer deletes any upload belonging to the customer's
	// event; not subject to the edit window
	DeleteAsCustomer(ctx context.Context, customerID, imageID uuid.UUID) error
}
