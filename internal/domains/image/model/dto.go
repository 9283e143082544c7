package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordUploadRequest registers an already-stored file against the guest's
// event. Storage itself is an external collaborator; only the record is ours.
type RecordUploadRequest struct {
	FileName         string          `json:"file_name" binding:"required,max=255"`
	OriginalFileName *string         `json:"original_file_name"`
	StorageURL       string          `json:"storage_url" binding:"required,max=1000"`
	FileSizeMB       decimal.Decimal `json:"file_size_mb"`
	ContentType      *string         `json:"content_type"`
}

// ImageResponse is the guest/owner-facing image view
type ImageResponse struct {
	ID               uuid.UUID       `json:"id"`
	EventID          uuid.UUID       `json:"event_id"`
	GuestID          uuid.UUID       `json:"guest_id"`
	FileName         string          `json:"file_name"`
	OriginalFileName *string         `json:"original_file_name,omitempty"`
	URL              string          `json:"url"`
	FileSizeMB       decimal.Decimal `json:"file_size_mb"`
	UploadedAt       time.Time       `json:"uploaded_at"`
}

func (i *Image) ToResponse(storageBaseURL string) ImageResponse {
	return ImageResponse{
		ID:               i.ID,
		EventID:          i.EventID,
		GuestID:          i.GuestID,
		FileName:         i.FileName,
		OriginalFileName: i.OriginalFileName,
		URL:              PublicURL(storageBaseURL, i.StorageURL),
		FileSizeMB:       i.FileSizeMB,
		UploadedAt:       i.UploadedAt,
	}
}
