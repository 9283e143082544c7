package model

import (
	"time"

	"github.com/google/uuid"

	"eventgallery-backend/internal/domains/gallery"
)

const eventDateLayout = "2006-01-02"

// CreateEventRequest creates a new event for the authenticated customer
type CreateEventRequest struct {
	Name      string  `json:"name" binding:"required,min=2,max=200"`
	EventDate string  `json:"event_date" binding:"required"`
	Venue     *string `json:"venue"`
}

// ParseEventDate validates and parses the YYYY-MM-DD event date
func (r *CreateEventRequest) ParseEventDate() (time.Time, error) {
	d, err := time.Parse(eventDateLayout, r.EventDate)
	if err != nil {
		return time.Time{}, ErrInvalidEventDate
	}
	return d, nil
}

// EventResponse is the owner-facing event view
type EventResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	EventDate string    `json:"event_date"`
	Venue     *string   `json:"venue,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PublicEventInfo is what a guest sees before joining; no owner data
type PublicEventInfo struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	EventDate string  `json:"event_date"`
	Venue     *string `json:"venue,omitempty"`
}

// GroupedGalleryResponse is the owner-facing per-guest folder view
type GroupedGalleryResponse struct {
	EventID      uuid.UUID             `json:"event_id"`
	EventName    string                `json:"event_name"`
	TotalImages  int                   `json:"total_images"`
	GuestFolders []gallery.GuestFolder `json:"guest_folders"`
}

func (e *Event) ToResponse() EventResponse {
	return EventResponse{
		ID:        e.ID,
		Code:      e.Code,
		Name:      e.Name,
		EventDate: e.EventDate.Format(eventDateLayout),
		Venue:     e.Venue,
		CreatedAt: e.CreatedAt,
	}
}

func (e *Event) ToPublicInfo() PublicEventInfo {
	return PublicEventInfo{
		Code:      e.Code,
		Name:      e.Name,
		EventDate: e.EventDate.Format(eventDateLayout),
		Venue:     e.Venue,
	}
}
