package models

import (
	"time"

	"github.com/google/uuid"
)

// Gallery is a categorized collection of photos. Public galleries are
// visible to everyone; private galleries are gated by an access code and
// tied to a single client email.
type Gallery struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Title         string    `db:"title" json:"title,omitempty"`
	Category      string    `db:"category" json:"category"`
	IsPrivate     bool      `db:"is_private" json:"isPrivate"`
	AccessCode    string    `db:"access_code" json:"accessCode,omitempty"`
	ClientEmail   string    `db:"client_email" json:"clientEmail,omitempty"`
	CoverImageURL string    `db:"cover_image_url" json:"coverImageUrl,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

// Public strips the access code before a gallery is returned to an
// unauthenticated caller. The code is the sole secret gating the
// gallery, so it never leaves the server on read paths.
func (g Gallery) Public() Gallery {
	g.AccessCode = ""
	return g
}
