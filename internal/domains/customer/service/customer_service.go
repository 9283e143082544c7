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

	"eventgallery-backend/internal/domains/customer/model"
	"eventgallery-backend/internal/domains/customer/repository"
	"eventgallery-backend/pkg/token"
)

const bcryptCost = 12

type customerService struct {
	customers repository.CustomerRepository
	tokens    *token.Manager
}

func NewCustomerService(customers repository.CustomerRepository, tokens *token.Manager) CustomerService {
	return &customerService{customers: customers, tokens: tokens}
}

func (s *customerService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	customer := &model.Customer{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: string(hashed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}

	log.Info().Str("customer_id", customer.ID.String()).Msg("customer registered")
	return s.issue(customer)
}

func (s *customerService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	customer, err := s.customers.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, model.ErrCustomerNotFound) {
			// same result as a wrong password, no account enumeration
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(req.Password)) != nil {
		return nil, model.ErrInvalidCredentials
	}

	return s.issue(customer)
}

func (s *customerService) issue(customer *model.Customer) (*model.AuthResponse, error) {
	accessToken, err := s.tokens.IssueCustomerToken(customer.ID, customer.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &model.AuthResponse{
		AccessToken: accessToken,
		ExpiresAt:   time.Now().Add(s.tokens.Expiry()),
		Customer:    customer.ToProfile(),
	}, nil
}
