package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"eventgallery-backend/internal/domains/identity/model"
	"eventgallery-backend/pkg/token"
)

// Resolver turns a raw bearer credential into a typed Principal.
// It is a pure decode over the token manager: no store access, no side
// effects. The role always comes from the signed claims; the channel is
// only checked for agreement, it never selects a role by itself.
type Resolver struct {
	tokens *token.Manager
}

func NewResolver(tokens *token.Manager) *Resolver {
	return &Resolver{tokens: tokens}
}

// Resolve decodes credential and returns exactly one Principal variant.
// A caller holding both a customer and a guest credential disambiguates by
// channel; a credential whose claimed role disagrees with the channel is
// rejected rather than silently reinterpreted.
func (r *Resolver) Resolve(credential string, channel model.Channel) (model.Principal, error) {
	if credential == "" {
		return nil, model.ErrMissingCredential
	}

	claims, err := r.tokens.Parse(credential)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, model.ErrExpiredCredential
		}
		return nil, model.ErrMalformedCredential
	}

	if claims.Role != string(channel) {
		return nil, model.ErrRoleMismatch
	}

	subjectID, err := uuid.Parse(claims.SubjectID)
	if err != nil {
		return nil, model.ErrMalformedCredential
	}

	switch claims.Role {
	case token.RoleCustomer:
		return model.Customer{ID: subjectID, Email: claims.Email}, nil

	case token.RoleGuest:
		eventID, err := uuid.Parse(claims.EventID)
		if err != nil {
			return nil, model.ErrMalformedCredential
		}
		return model.Guest{ID: subjectID, EventID: eventID, Email: claims.Email}, nil

	case token.RoleAdmin:
		return model.Admin{ID: subjectID, Level: claims.AdminLevel}, nil

	default:
		return nil, model.ErrMalformedCredential
	}
}
