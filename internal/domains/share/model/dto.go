package model

import (
	"time"

	"github.com/google/uuid"

	imagemodel "eventgallery-backend/internal/domains/image/model"
)

// CreateShareLinkRequest creates a link for a fixed image selection.
// The password, when present, is hashed before storage and never echoed.
type CreateShareLinkRequest struct {
	EventID    uuid.UUID   `json:"event_id" binding:"required"`
	FolderName string      `json:"folder_name" binding:"required,min=1,max=200"`
	ImageIDs   []uuid.UUID `json:"image_ids"`
	Password   *string     `json:"password" binding:"omitempty,min=4,max=72"`
	ExpiresAt  *time.Time  `json:"expires_at"`
}

// ShareLinkResponse is the owner-facing view of a link
type ShareLinkResponse struct {
	ID          uuid.UUID  `json:"id"`
	ShareCode   string     `json:"share_code"`
	ShareURL    string     `json:"share_url"`
	EventID     uuid.UUID  `json:"event_id"`
	FolderName  string     `json:"folder_name"`
	ImageCount  int        `json:"image_count"`
	HasPassword bool       `json:"has_password"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// SharedGalleryResponse is what an anonymous visitor gets after a
// successful resolve: the folder name and the image URLs in upload order
type SharedGalleryResponse struct {
	FolderName string                     `json:"folder_name"`
	EventName  string                     `json:"event_name"`
	ImageCount int                        `json:"image_count"`
	Images     []imagemodel.ImageResponse `json:"images"`
}

func (l *ShareLink) ToResponse() ShareLinkResponse {
	return ShareLinkResponse{
		ID:          l.ID,
		ShareCode:   l.ShareCode,
		ShareURL:    "/shared/" + l.ShareCode,
		EventID:     l.EventID,
		FolderName:  l.FolderName,
		ImageCount:  len(l.ImageIDs),
		HasPassword: l.IsPasswordGated(),
		ExpiresAt:   l.ExpiresAt,
		CreatedAt:   l.CreatedAt,
	}
}
