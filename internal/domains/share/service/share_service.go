package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	eventrepo "eventgallery-backend/internal/domains/event/repository"
	imagerepo "eventgallery-backend/internal/domains/image/repository"
	"eventgallery-backend/internal/domains/share/model"
	"eventgallery-backend/internal/domains/share/repository"
)

const (
	// 16 random bytes gives 128 bits of entropy, enough that codes are
	// not guessable in a URL path
	shareCodeBytes = 16

	codeGenAttempts = 5
	bcryptCost      = 12
)

type shareLinkService struct {
	shares repository.ShareLinkRepository
	events eventrepo.EventRepository
	images imagerepo.ImageRepository

	storageBaseURL string
}

func NewShareLinkService(
	shares repository.ShareLinkRepository,
	events eventrepo.EventRepository,
	images imagerepo.ImageRepository,
	storageBaseURL string,
) ShareLinkService {
	return &shareLinkService{
		shares:         shares,
		events:         events,
		images:         images,
		storageBaseURL: storageBaseURL,
	}
}

func (s *shareLinkService) Create(ctx context.Context, customerID uuid.UUID, req model.CreateShareLinkRequest) (*model.ShareLinkResponse, error) {
	event, err := s.events.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if event.CreatedBy != customerID {
		return nil, model.ErrForbidden
	}

	imageIDs := dedupe(req.ImageIDs)
	if len(imageIDs) == 0 {
		return nil, model.ErrEmptySelection
	}

	// the whole selection must belong to the event being shared
	images, err := s.images.GetByIDs(ctx, imageIDs)
	if err != nil {
		return nil, fmt.Errorf("load selection: %w", err)
	}
	if len(images) != len(imageIDs) {
		return nil, model.ErrImageNotInEvent
	}
	for _, img := range images {
		if img.EventID != req.EventID {
			return nil, model.ErrImageNotInEvent
		}
	}

	now := time.Now()
	if req.ExpiresAt != nil && !req.ExpiresAt.After(now) {
		return nil, model.ErrInvalidExpiry
	}

	var passwordHash *string
	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		h := string(hashed)
		passwordHash = &h
	}

	var link *model.ShareLink
	for attempt := 0; attempt < codeGenAttempts; attempt++ {
		code, err := generateShareCode()
		if err != nil {
			return nil, fmt.Errorf("generate share code: %w", err)
		}

		candidate := &model.ShareLink{
			ID:           uuid.New(),
			ShareCode:    code,
			EventID:      req.EventID,
			FolderName:   req.FolderName,
			ImageIDs:     imageIDs,
			PasswordHash: passwordHash,
			ExpiresAt:    req.ExpiresAt,
			CreatedBy:    customerID,
			CreatedAt:    now,
		}

		err = s.shares.Create(ctx, candidate)
		if err == nil {
			link = candidate
			break
		}
		if !errors.Is(err, model.ErrShareCodeTaken) {
			return nil, fmt.Errorf("create share link: %w", err)
		}
		log.Warn().Msg("share code collision, regenerating")
	}

	if link == nil {
		return nil, model.ErrShareCodeTaken
	}

	log.Info().
		Str("event_id", link.EventID.String()).
		Int("images", len(link.ImageIDs)).
		Bool("password_gated", link.IsPasswordGated()).
		Msg("share link created")

	resp := link.ToResponse()
	return &resp, nil
}

func (s *shareLinkService) ListByEvent(ctx context.Context, customerID, eventID uuid.UUID) ([]model.ShareLinkResponse, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.CreatedBy != customerID {
		return nil, model.ErrForbidden
	}

	links, err := s.shares.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list share links: %w", err)
	}

	responses := make([]model.ShareLinkResponse, 0, len(links))
	for _, link := range links {
		responses = append(responses, link.ToResponse())
	}
	return responses, nil
}

func (s *shareLinkService) Resolve(ctx context.Context, code string, password *string) (*model.SharedGalleryResponse, error) {
	link, err := s.shares.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	// the lookup is by index; compare again in constant time so a partial
	// match cannot be probed through response timing
	if subtle.ConstantTimeCompare([]byte(link.ShareCode), []byte(code)) != 1 {
		return nil, model.ErrShareNotFound
	}

	// expiry is terminal and checked before the password gate
	if link.IsExpired(time.Now()) {
		return nil, model.ErrShareExpired
	}

	if link.IsPasswordGated() {
		if password == nil {
			return nil, model.ErrSharePasswordRequired
		}
		if bcrypt.CompareHashAndPassword([]byte(*link.PasswordHash), []byte(*password)) != nil {
			// same result as a missing password, no enumeration
			return nil, model.ErrSharePasswordRequired
		}
	}

	event, err := s.events.GetByID(ctx, link.EventID)
	if err != nil {
		return nil, err
	}

	images, err := s.images.GetByIDs(ctx, link.ImageIDs)
	if err != nil {
		return nil, fmt.Errorf("load shared images: %w", err)
	}

	resp := &model.SharedGalleryResponse{
		FolderName: link.FolderName,
		EventName:  event.Name,
		ImageCount: len(images),
	}
	for _, img := range images {
		resp.Images = append(resp.Images, img.ToResponse(s.storageBaseURL))
	}

	return resp, nil
}

func (s *shareLinkService) Revoke(ctx context.Context, customerID uuid.UUID, code string) error {
	link, err := s.shares.GetByCode(ctx, code)
	if err != nil {
		return err
	}

	event, err := s.events.GetByID(ctx, link.EventID)
	if err != nil {
		return err
	}
	if event.CreatedBy != customerID {
		return model.ErrForbidden
	}

	// the delete is the single atomic step; a concurrent revoke of the
	// same code surfaces here as not-found
	if err := s.shares.DeleteByCode(ctx, code); err != nil {
		return err
	}

	log.Info().Str("event_id", link.EventID.String()).Msg("share link revoked")
	return nil
}

func generateShareCode() (string, error) {
	b := make([]byte, shareCodeBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
