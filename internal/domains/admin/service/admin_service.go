package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"eventgallery-backend/internal/domains/admin/model"
	"eventgallery-backend/internal/domains/admin/repository"
	"eventgallery-backend/pkg/token"
)

const adminLevel = "super"

// adminService authenticates a single operator account from configuration.
// There is no admin table; the platform has exactly one admin.
type adminService struct {
	email    string
	password string
	adminID  uuid.UUID

	stats  repository.StatsRepository
	tokens *token.Manager
}

func NewAdminService(email, password string, stats repository.StatsRepository, tokens *token.Manager) AdminService {
	return &adminService{
		email:    email,
		password: password,
		adminID:  uuid.New(),
		stats:    stats,
		tokens:   tokens,
	}
}

func (s *adminService) Login(_ context.Context, req model.AdminLoginRequest) (*model.AdminAuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(s.email)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.password)) == 1
	if !emailOK || !passwordOK {
		return nil, model.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.IssueAdminToken(s.adminID, adminLevel)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	log.Info().Msg("admin signed in")
	return &model.AdminAuthResponse{
		AccessToken: accessToken,
		ExpiresAt:   time.Now().Add(s.tokens.Expiry()),
	}, nil
}

func (s *adminService) Stats(ctx context.Context) (*model.StatsResponse, error) {
	return s.stats.Counts(ctx)
}
