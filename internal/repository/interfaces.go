package repository

import (
	"context"
	"time"

	"github.com/OneGuyCory/LPPhotography-Final/internal/domain/models"

	"github.com/google/uuid"
)

type GalleryRepository interface {
	CreateGallery(ctx context.Context, gallery models.Gallery) (models.Gallery, error)
	GetGalleryByID(ctx context.Context, id uuid.UUID) (models.Gallery, error)
	GetGalleryByClientEmail(ctx context.Context, email string) (models.Gallery, error)
	ListGalleries(ctx context.Context, publicOnly bool) ([]models.Gallery, error)
	DeleteGallery(ctx context.Context, id uuid.UUID) error
	SetCoverImage(ctx context.Context, galleryID uuid.UUID, photoURL string) error
}

type PhotoRepository interface {
	CreatePhoto(ctx context.Context, photo models.Photo) (models.Photo, error)
	GetPhotoByID(ctx context.Context, id uuid.UUID) (models.Photo, error)
	GetPhotosByGalleryID(ctx context.Context, galleryID uuid.UUID) ([]models.Photo, error)
	GetFeaturedPhotos(ctx context.Context) ([]models.Photo, error)
	UpdatePhoto(ctx context.Context, photo models.Photo) error
	DeletePhoto(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	SaveUser(ctx context.Context, user models.User) (uuid.UUID, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UpsertClientAccessCode(ctx context.Context, email, accessCode string) (uuid.UUID, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type ContactRepository interface {
	SaveContactMessage(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error)
}

// RevocationRepository marks users whose live sessions must no longer be
// honored (e.g. after the user is deleted). Marks expire together with
// the longest-lived session token.
type RevocationRepository interface {
	RevokeUser(ctx context.Context, userID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, userID string) (bool, error)
}
