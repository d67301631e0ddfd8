package dto

import (
	"time"

	"github.com/OneGuyCory/LPPhotography-Final/internal/domain/models"

	"github.com/google/uuid"
)

type CreateGalleryRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category" validate:"required"`
	IsPrivate   bool   `json:"isPrivate"`
	AccessCode  string `json:"accessCode"`
	ClientEmail string `json:"clientEmail" validate:"omitempty,email"`
}

type SetCoverImageRequest struct {
	CoverImageURL string `json:"coverImageUrl" validate:"required,url"`
}

type GalleryResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	IsPrivate     bool      `json:"isPrivate"`
	AccessCode    string    `json:"accessCode,omitempty"`
	ClientEmail   string    `json:"clientEmail"`
	CoverImageURL string    `json:"coverImageUrl"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToGalleryResponse keeps the access code in the payload; use
// ToPublicGalleryResponse on anything an untrusted caller can read.
func ToGalleryResponse(g models.Gallery) GalleryResponse {
	return GalleryResponse{
		ID:            g.ID,
		Title:         g.Title,
		Category:      g.Category,
		IsPrivate:     g.IsPrivate,
		AccessCode:    g.AccessCode,
		ClientEmail:   g.ClientEmail,
		CoverImageURL: g.CoverImageURL,
		CreatedAt:     g.CreatedAt,
	}
}

func ToPublicGalleryResponse(g models.Gallery) GalleryResponse {
	resp := ToGalleryResponse(g)
	resp.AccessCode = ""
	return resp
}

func ToPublicGalleryResponses(galleries []models.Gallery) []GalleryResponse {
	out := make([]GalleryResponse, 0, len(galleries))
	for _, g := range galleries {
		out = append(out, ToPublicGalleryResponse(g))
	}
	return out
}

func ToGalleryResponses(galleries []models.Gallery) []GalleryResponse {
	out := make([]GalleryResponse, 0, len(galleries))
	for _, g := range galleries {
		out = append(out, ToGalleryResponse(g))
	}
	return out
}
