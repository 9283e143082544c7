package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"eventgallery-backend/internal/domains/event/model"
	"eventgallery-backend/internal/domains/event/repository"
	"eventgallery-backend/internal/domains/gallery"
	imagemodel "eventgallery-backend/internal/domains/image/model"
	imagerepo "eventgallery-backend/internal/domains/image/repository"
	pkgcache "eventgallery-backend/pkg/cache"
)

const (
	eventCacheKeyPrefix = "event:code:"
	eventCacheTTL       = 10 * time.Minute

	// join codes are short enough to type from an invitation card
	eventCodeBytes  = 6
	codeGenAttempts = 5
)

type eventService struct {
	events repository.EventRepository
	images imagerepo.ImageRepository
	cache  pkgcache.Cache

	storageBaseURL string
}

func NewEventService(
	events repository.EventRepository,
	images imagerepo.ImageRepository,
	cache pkgcache.Cache,
	storageBaseURL string,
) EventService {
	return &eventService{
		events:         events,
		images:         images,
		cache:          cache,
		storageBaseURL: storageBaseURL,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, customerID uuid.UUID, req model.CreateEventRequest) (*model.EventResponse, error) {
	eventDate, err := req.ParseEventDate()
	if err != nil {
		return nil, err
	}

	var event *model.Event
	for attempt := 0; attempt < codeGenAttempts; attempt++ {
		code, err := generateEventCode()
		if err != nil {
			return nil, fmt.Errorf("generate event code: %w", err)
		}

		now := time.Now()
		candidate := &model.Event{
			ID:        uuid.New(),
			Code:      code,
			Name:      req.Name,
			EventDate: eventDate,
			Venue:     req.Venue,
			CreatedBy: customerID,
			CreatedAt: now,
			UpdatedAt: now,
		}

		err = s.events.Create(ctx, candidate)
		if err == nil {
			event = candidate
			break
		}
		if !errors.Is(err, model.ErrEventCodeTaken) {
			return nil, fmt.Errorf("create event: %w", err)
		}
		log.Warn().Str("code", code).Msg("event code collision, regenerating")
	}

	if event == nil {
		return nil, model.ErrEventCodeTaken
	}

	log.Info().
		Str("event_id", event.ID.String()).
		Str("code", event.Code).
		Msg("event created")

	resp := event.ToResponse()
	return &resp, nil
}

func (s *eventService) ListMyEvents(ctx context.Context, customerID uuid.UUID) ([]model.EventResponse, error) {
	events, err := s.events.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	responses := make([]model.EventResponse, 0, len(events))
	for _, evt := range events {
		responses = append(responses, evt.ToResponse())
	}
	return responses, nil
}

func (s *eventService) GetMyEvent(ctx context.Context, customerID, eventID uuid.UUID) (*model.EventResponse, error) {
	event, err := s.EnsureOwner(ctx, customerID, eventID)
	if err != nil {
		return nil, err
	}

	resp := event.ToResponse()
	return &resp, nil
}

func (s *eventService) GetByCodePublic(ctx context.Context, code string) (*model.PublicEventInfo, error) {
	cacheKey := eventCacheKeyPrefix + code

	var cached model.PublicEventInfo
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
		log.Warn().Err(err).Msg("event cache read failed")
	} else if found {
		return &cached, nil
	}

	event, err := s.events.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	info := event.ToPublicInfo()
	if err := s.cache.Set(ctx, cacheKey, info, eventCacheTTL); err != nil {
		log.Warn().Err(err).Msg("event cache write failed")
	}

	return &info, nil
}

func (s *eventService) EnsureOwner(ctx context.Context, customerID, eventID uuid.UUID) (*model.Event, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if event.CreatedBy != customerID {
		return nil, model.ErrNotEventOwner
	}

	return event, nil
}

func (s *eventService) GroupedGallery(ctx context.Context, customerID, eventID uuid.UUID) (*model.GroupedGalleryResponse, error) {
	event, err := s.EnsureOwner(ctx, customerID, eventID)
	if err != nil {
		return nil, err
	}

	rows, err := s.images.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load event gallery: %w", err)
	}

	images := make([]gallery.Image, 0, len(rows))
	for _, row := range rows {
		images = append(images, gallery.Image{
			ID:         row.ID,
			GuestID:    row.GuestID,
			GuestName:  row.GuestName,
			FileName:   row.FileName,
			URL:        imagemodel.PublicURL(s.storageBaseURL, row.StorageURL),
			UploadedAt: row.UploadedAt,
		})
	}

	folders := gallery.Group(images)
	return &model.GroupedGalleryResponse{
		EventID:      event.ID,
		EventName:    event.Name,
		TotalImages:  len(images),
		GuestFolders: folders,
	}, nil
}

func generateEventCode() (string, error) {
	b := make([]byte, eventCodeBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
