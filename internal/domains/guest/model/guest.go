package model

import (
	"time"

	"github.com/google/uuid"
)

// Guest is an event attendee. Accounts are scoped to a single event;
// the same person joining two events is two guests.
type Guest struct {
	ID           uuid.UUID `json:"id"`
	EventID      uuid.UUID `json:"event_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
