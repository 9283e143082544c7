package service

import (
	"context"

	"github.com/google/uuid"

	"eventgallery-backend/internal/domains/guest/model"
)

type GuestService interface {
	// Join creates a guest account on the event behind the code and signs
	// it in with an event-scoped credential
	Join(ctx context.Context, req model.JoinEventRequest) (*model.GuestAuthResponse, error)

	// Login authenticates an existing guest of an event
	Login(ctx context.Context, req model.GuestLoginRequest) (*model.GuestAuthResponse, error)

	// Dashboard reports the guest's upload count and whether the event's
	// edit window is still open
	Dashboard(ctx context.Context, guestID, eventID uuid.UUID) (*model.DashboardResponse, error)
}
