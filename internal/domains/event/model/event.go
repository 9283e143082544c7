package model

import (
	"time"

	"github.com/google/uuid"
)

// Event is an organizer-created occasion guests upload photos against.
// The code is unique and immutable after creation.
type Event struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	EventDate time.Time `json:"event_date"`
	Venue     *string   `json:"venue"`
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
