// Package gallery groups an event's images into per-guest folders for
// owner-facing views. It is a pure transformation: callers must already
// have authorized the image set before handing it over.
package gallery

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Image is the minimal view the assembler needs
type Image struct {
	ID         uuid.UUID `json:"id"`
	GuestID    uuid.UUID `json:"guest_id"`
	GuestName  string    `json:"guest_name"`
	FileName   string    `json:"file_name"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// GuestFolder is a derived, non-persistent view of one guest's uploads
type GuestFolder struct {
	GuestID    uuid.UUID `json:"guest_id"`
	GuestName  string    `json:"guest_name"`
	ImageCount int       `json:"image_count"`
	Images     []Image   `json:"images"`
}

// Group folds images into folders keyed by uploading guest.
// Folders are ordered by each guest's first upload time ascending (stable);
// images within a folder are ordered by upload time ascending.
func Group(images []Image) []GuestFolder {
	if len(images) == 0 {
		return []GuestFolder{}
	}

	sorted := make([]Image, len(images))
	copy(sorted, images)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UploadedAt.Before(sorted[j].UploadedAt)
	})

	// After the sort, the first occurrence of each guest is also that
	// guest's earliest upload, so appending folders in encounter order
	// yields the first-upload-ascending folder ordering.
	folderIndex := make(map[uuid.UUID]int)
	folders := make([]GuestFolder, 0)

	for _, img := range sorted {
		idx, seen := folderIndex[img.GuestID]
		if !seen {
			idx = len(folders)
			folderIndex[img.GuestID] = idx
			folders = append(folders, GuestFolder{
				GuestID:   img.GuestID,
				GuestName: img.GuestName,
			})
		}
		folders[idx].Images = append(folders[idx].Images, img)
	}

	for i := range folders {
		folders[i].ImageCount = len(folders[i].Images)
	}

	return folders
}
