package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	eventmodel "eventgallery-backend/internal/domains/event/model"
	eventrepo "eventgallery-backend/internal/domains/event/repository"
	"eventgallery-backend/internal/domains/guest/model"
	"eventgallery-backend/internal/domains/guest/repository"
	imagerepo "eventgallery-backend/internal/domains/image/repository"
	"eventgallery-backend/pkg/editwindow"
	"eventgallery-backend/pkg/token"
)

const bcryptCost = 12

type guestService struct {
	guests repository.GuestRepository
	events eventrepo.EventRepository
	images imagerepo.ImageRepository
	tokens *token.Manager
	policy editwindow.Policy
}

func NewGuestService(
	guests repository.GuestRepository,
	events eventrepo.EventRepository,
	images imagerepo.ImageRepository,
	tokens *token.Manager,
	policy editwindow.Policy,
) GuestService {
	return &guestService{
		guests: guests,
		events: events,
		images: images,
		tokens: tokens,
		policy: policy,
	}
}

func (s *guestService) Join(ctx context.Context, req model.JoinEventRequest) (*model.GuestAuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	event, err := s.events.GetByCode(ctx, req.EventCode)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	guest := &model.Guest{
		ID:           uuid.New(),
		EventID:      event.ID,
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hashed),
		CreatedAt:    time.Now(),
	}

	if err := s.guests.Create(ctx, guest); err != nil {
		return nil, err
	}

	log.Info().
		Str("guest_id", guest.ID.String()).
		Str("event_id", event.ID.String()).
		Msg("guest joined event")

	return s.issue(guest, event)
}

func (s *guestService) Login(ctx context.Context, req model.GuestLoginRequest) (*model.GuestAuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	event, err := s.events.GetByCode(ctx, req.EventCode)
	if err != nil {
		return nil, err
	}

	guest, err := s.guests.GetByEventAndEmail(ctx, event.ID, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, model.ErrGuestNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(guest.PasswordHash), []byte(req.Password)) != nil {
		return nil, model.ErrInvalidCredentials
	}

	return s.issue(guest, event)
}

func (s *guestService) Dashboard(ctx context.Context, guestID, eventID uuid.UUID) (*model.DashboardResponse, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	uploads, err := s.images.ListByEventAndGuest(ctx, eventID, guestID)
	if err != nil {
		return nil, fmt.Errorf("count uploads: %w", err)
	}

	now := time.Now()
	return &model.DashboardResponse{
		Event:          event.ToPublicInfo(),
		UploadCount:    len(uploads),
		CanModify:      s.policy.Allow(now, event.EventDate),
		ModifyDeadline: s.policy.Deadline(event.EventDate),
	}, nil
}

func (s *guestService) issue(guest *model.Guest, event *eventmodel.Event) (*model.GuestAuthResponse, error) {
	accessToken, err := s.tokens.IssueGuestToken(guest.ID, guest.EventID, guest.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &model.GuestAuthResponse{
		AccessToken: accessToken,
		ExpiresAt:   time.Now().Add(s.tokens.Expiry()),
		Guest:       guest.ToProfile(),
		Event:       event.ToPublicInfo(),
	}, nil
}
