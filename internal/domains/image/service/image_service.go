package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	eventmodel "eventgallery-backend/internal/domains/event/model"
	eventrepo "eventgallery-backend/internal/domains/event/repository"
	"eventgallery-backend/internal/domains/image/model"
	"eventgallery-backend/internal/domains/image/repository"
	"eventgallery-backend/pkg/editwindow"
)

type imageService struct {
	images         repository.ImageRepository
	events         eventrepo.EventRepository
	policy         editwindow.Policy
	storageBaseURL string
}

func NewImageService(
	images repository.ImageRepository,
	events eventrepo.EventRepository,
	policy editwindow.Policy,
	storageBaseURL string,
) ImageService {
	return &imageService{
		images:         images,
		events:         events,
		policy:         policy,
		storageBaseURL: storageBaseURL,
	}
}

func (s *imageService) RecordUpload(ctx context.Context, guestID, eventID uuid.UUID, req model.RecordUploadRequest) (*model.ImageResponse, error) {
	// The guest principal is already scoped to a single event; the record
	// is always created against that event.
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	image := &model.Image{
		ID:               uuid.New(),
		EventID:          eventID,
		GuestID:          guestID,
		FileName:         req.FileName,
		OriginalFileName: req.OriginalFileName,
		StorageURL:       req.StorageURL,
		FileSizeMB:       req.FileSizeMB,
		ContentType:      req.ContentType,
		UploadedAt:       time.Now(),
	}

	if err := s.images.Create(ctx, image); err != nil {
		return nil, fmt.Errorf("record upload: %w", err)
	}

	resp := image.ToResponse(s.storageBaseURL)
	return &resp, nil
}

func (s *imageService) ListMyUploads(ctx context.Context, guestID, eventID uuid.UUID) ([]model.ImageResponse, error) {
	images, err := s.images.ListByEventAndGuest(ctx, eventID, guestID)
	if err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}

	responses := make([]model.ImageResponse, 0, len(images))
	for _, img := range images {
		responses = append(responses, img.ToResponse(s.storageBaseURL))
	}
	return responses, nil
}

func (s *imageService) DeleteAsGuest(ctx context.Context, guestID, imageID uuid.UUID) error {
	image, err := s.images.GetByID(ctx, imageID)
	if err != nil {
		return err
	}

	if image.GuestID != guestID {
		return model.ErrNotImageOwner
	}

	event, err := s.events.GetByID(ctx, image.EventID)
	if err != nil {
		return err
	}

	// Deletability is always computed from the event date, never stored
	if !s.policy.Allow(time.Now(), event.EventDate) {
		return model.ErrEditWindowClosed
	}

	return s.images.Delete(ctx, imageID)
}

func (s *imageService) DeleteAsCustomer(ctx context.Context, customerID, imageID uuid.UUID) error {
	image, err := s.images.GetByID(ctx, imageID)
	if err != nil {
		return err
	}

	event, err := s.events.GetByID(ctx, image.EventID)
	if err != nil {
		return err
	}

	if event.CreatedBy != customerID {
		return eventmodel.ErrNotEventOwner
	}

	return s.images.Delete(ctx, imageID)
}
