package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	eventmodel "eventgallery-backend/internal/domains/event/model"
)

// ========================================
// AUTH DTOs
// ========================================

// JoinEventRequest creates a guest account on the event behind the code
type JoinEventRequest struct {
	EventCode string `json:"event_code" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

func (r JoinEventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EventCode,
			validation.Required.Error("event code is required"),
			validation.Length(6, 64),
		),
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 100),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(6, 72).Error("password must be 6-72 characters"),
		),
	)
}

type GuestLoginRequest struct {
	EventCode string `json:"event_code" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

func (r GuestLoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EventCode, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// GuestAuthResponse carries the event-scoped credential
type GuestAuthResponse struct {
	AccessToken string                     `json:"access_token"`
	ExpiresAt   time.Time                  `json:"expires_at"`
	Guest       GuestProfile               `json:"guest"`
	Event       eventmodel.PublicEventInfo `json:"event"`
}

type GuestProfile struct {
	ID      uuid.UUID `json:"id"`
	EventID uuid.UUID `json:"event_id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
}

// DashboardResponse tells the guest what they can still do. CanModify is
// computed on every read, never stored.
type DashboardResponse struct {
	Event          eventmodel.PublicEventInfo `json:"event"`
	UploadCount    int                        `json:"upload_count"`
	CanModify      bool                       `json:"can_modify"`
	ModifyDeadline time.Time                  `json:"modify_deadline"`
}

func (g *Guest) ToProfile() GuestProfile {
	return GuestProfile{
		ID:      g.ID,
		EventID: g.EventID,
		Name:    g.Name,
		Email:   g.Email,
	}
}
