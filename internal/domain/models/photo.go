package models

import "github.com/google/uuid"

// Photo is a single image belonging to exactly one gallery. The image
// bytes live on an external host; only the URL is stored here.
type Photo struct {
	ID         uuid.UUID `db:"id" json:"id"`
	URL        string    `db:"url" json:"url"`
	Caption    string    `db:"caption" json:"caption,omitempty"`
	GalleryID  uuid.UUID `db:"gallery_id" json:"galleryId"`
	IsFeatured bool      `db:"is_featured" json:"isFeatured"`
}
