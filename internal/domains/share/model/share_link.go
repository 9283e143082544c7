package model

import (
	"time"

	"github.com/google/uuid"
)

// ShareLink is a customer-created public handle onto a fixed set of an
// event's images. The image set is immutable after creation; regenerating
// a link is create-new plus revoke-old.
type ShareLink struct {
	ID           uuid.UUID   `json:"id"`
	ShareCode    string      `json:"share_code"`
	EventID      uuid.UUID   `json:"event_id"`
	FolderName   string      `json:"folder_name"`
	ImageIDs     []uuid.UUID `json:"image_ids"`
	PasswordHash *string     `json:"-"`
	ExpiresAt    *time.Time  `json:"expires_at"`
	CreatedBy    uuid.UUID   `json:"created_by"`
	CreatedAt    time.Time   `json:"created_at"`
}

// IsExpired reports whether the link's expiry has passed. Expiry is
// terminal; expired links are never served again even if still stored.
func (l *ShareLink) IsExpired(now time.Time) bool {
	return l.ExpiresAt != nil && now.After(*l.ExpiresAt)
}

// IsPasswordGated reports whether resolution requires a password
func (l *ShareLink) IsPasswordGated() bool {
	return l.PasswordHash != nil && *l.PasswordHash != ""
}
