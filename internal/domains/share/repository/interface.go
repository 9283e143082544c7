package repository

import (
	"context"

	"github.com/google/uuid"

	"eventgallery-backend/internal/domains/share/model"
)

type ShareLinkRepository interface {
	// Create inserts a new link; returns model.ErrShareCodeTaken when the
	// generated code collides with an existing one
	Create(ctx context.Context, link *model.ShareLink) error

	// GetByCode gets a link by its share code
	GetByCode(ctx context.Context, code string) (*model.ShareLink, error)

	// ListByEvent lists an event's links, newest first
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.ShareLink, error)

	// DeleteByCode removes a link; returns model.ErrShareNotFound when no
	// row matched, so a second revoke reports the link as gone
	DeleteByCode(ctx context.Context, code string) error
}
