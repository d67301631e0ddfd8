package dto

import (
	"github.com/OneGuyCory/LPPhotography-Final/internal/domain/models"

	"github.com/google/uuid"
)

type CreatePhotoRequest struct {
	URL        string    `json:"url" validate:"required,url"`
	Caption    string    `json:"caption"`
	GalleryID  uuid.UUID `json:"galleryId" validate:"required"`
	IsFeatured bool      `json:"isFeatured"`
}

type UpdatePhotoRequest struct {
	ID         uuid.UUID `json:"id" validate:"required"`
	URL        string    `json:"url" validate:"required,url"`
	Caption    string    `json:"caption"`
	GalleryID  uuid.UUID `json:"galleryId" validate:"required"`
	IsFeatured bool      `json:"isFeatured"`
}

type PhotoResponse struct {
	ID         uuid.UUID `json:"id"`
	URL        string    `json:"url"`
	Caption    string    `json:"caption"`
	GalleryID  uuid.UUID `json:"galleryId"`
	IsFeatured bool      `json:"isFeatured"`
}

func ToPhotoResponse(p models.Photo) PhotoResponse {
	return PhotoResponse{
		ID:         p.ID,
		URL:        p.URL,
		Caption:    p.Caption,
		GalleryID:  p.GalleryID,
		IsFeatured: p.IsFeatured,
	}
}

func ToPhotoResponses(photos []models.Photo) []PhotoResponse {
	out := make([]PhotoResponse, 0, len(photos))
	for _, p := range photos {
		out = append(out, ToPhotoResponse(p))
	}
	return out
}
