package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r AdminLoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type AdminAuthResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// StatsResponse is the admin dashboard's platform-wide counters
type StatsResponse struct {
	TotalCustomers  int64 `json:"total_customers"`
	TotalEvents     int64 `json:"total_events"`
	TotalGuests     int64 `json:"total_guests"`
	TotalImages     int64 `json:"total_images"`
	TotalShareLinks int64 `json:"total_share_links"`
}
