package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Image is a guest upload record. The bytes live in external storage; this
// row only tracks ownership and where the file is served from.
type Image struct {
	ID               uuid.UUID       `json:"id"`
	EventID          uuid.UUID       `json:"event_id"`
	GuestID          uuid.UUID       `json:"guest_id"`
	FileName         string          `json:"file_name"`
	OriginalFileName *string         `json:"original_file_name"`
	StorageURL       string          `json:"storage_url"`
	FileSizeMB       decimal.Decimal `json:"file_size_mb"`
	ContentType      *string         `json:"content_type"`
	UploadedAt       time.Time       `json:"uploaded_at"`
}

// ImageWithGuest joins the uploading guest's display name for folder views
type ImageWithGuest struct {
	Image
	GuestName string `json:"guest_name"`
}
