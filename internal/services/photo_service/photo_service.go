package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/OneGuyCory/LPPhotography-Final/internal/domain/models"
	"github.com/OneGuyCory/LPPhotography-Final/internal/lib/logger/sl"
	"github.com/OneGuyCory/LPPhotography-Final/internal/repository"
	"github.com/OneGuyCory/LPPhotography-Final/internal/services/access"
	"github.com/OneGuyCory/LPPhotography-Final/internal/transport/http/dto"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

var ErrPhotoIDMismatch = errors.New("photo id mismatch")

const (
	featuredCacheKey = "featured_photos"
	featuredCacheTTL = time.Minute
)

// PhotoService manages photo records. The featured list sits on the
// homepage and is read far more often than it changes, so it is served
// through a short-lived in-process cache that every mutation drops.
type PhotoService struct {
	log       *slog.Logger
	repo      repository.PhotoRepository
	galleries repository.GalleryRepository
	cache     *gocache.Cache
}

func NewPhotoService(log *slog.Logger, repo repository.PhotoRepository, galleries repository.GalleryRepository) *PhotoService {
	return &PhotoService{
		log:       log,
		repo:      repo,
		galleries: galleries,
		cache:     gocache.New(featuredCacheTTL, 5*time.Minute),
	}
}

// PhotosForGallery lists a gallery's photos. The gallery itself is
// looked up first so a missing gallery reads as not-found instead of an
// empty list.
func (s *PhotoService) PhotosForGallery(ctx context.Context, galleryID uuid.UUID) ([]models.Photo, error) {
	const op = "service.PhotoService.PhotosForGallery"

	if _, err := s.galleries.GetGalleryByID(ctx, galleryID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	photos, err := s.repo.GetPhotosByGalleryID(ctx, galleryID)
	if err != nil {
		s.log.Error("failed to list gallery photos", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return photos, nil
}

// Featured returns every photo flagged for the homepage.
func (s *PhotoService) Featured(ctx context.Context) ([]models.Photo, error) {
	const op = "service.PhotoService.Featured"

	if cached, ok := s.cache.Get(featuredCacheKey); ok {
		return cached.([]models.Photo), nil
	}

	photos, err := s.repo.GetFeaturedPhotos(ctx)
	if err != nil {
		s.log.Error("failed to list featured photos", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Set(featuredCacheKey, photos, gocache.DefaultExpiration)

	return photos, nil
}

func (s *PhotoService) Get(ctx context.Context, id uuid.UUID) (models.Photo, error) {
	const op = "service.PhotoService.Get"

	photo, err := s.repo.GetPhotoByID(ctx, id)
	if err != nil {
		return models.Photo{}, fmt.Errorf("%s: %w", op, err)
	}

	return photo, nil
}

// Create adds a photo to a gallery. Gallery existence rides on the
// store's foreign key, so a bad gallery id persists nothing.
func (s *PhotoService) Create(ctx context.Context, identity access.Identity, req dto.CreatePhotoRequest) (models.Photo, error) {
	const op = "service.PhotoService.Create"

	log := s.log.With(
		slog.String("op", op),
		slog.String("gallery_id", req.GalleryID.String()),
	)

	if err := access.AuthorizeAdmin(identity); err != nil {
		return models.Photo{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.repo.CreatePhoto(ctx, models.Photo{
		URL:        req.URL,
		Caption:    req.Caption,
		GalleryID:  req.GalleryID,
		IsFeatured: req.IsFeatured,
	})
	if err != nil {
		log.Warn("failed to create photo", sl.Err(err))
		return models.Photo{}, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Delete(featuredCacheKey)
	log.Info("photo created", slog.String("photo_id", created.ID.String()))

	return created, nil
}

// Update overwrites a photo wholesale. The path id must match the body
// id; that check fires before any store access.
func (s *PhotoService) Update(ctx context.Context, identity access.Identity, id uuid.UUID, req dto.UpdatePhotoRequest) error {
	const op = "service.PhotoService.Update"

	log := s.log.With(
		slog.String("op", op),
		slog.String("photo_id", id.String()),
	)

	if err := access.AuthorizeAdmin(identity); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if id != req.ID {
		return fmt.Errorf("%s: %w", op, ErrPhotoIDMismatch)
	}

	err := s.repo.UpdatePhoto(ctx, models.Photo{
		ID:         req.ID,
		URL:        req.URL,
		Caption:    req.Caption,
		GalleryID:  req.GalleryID,
		IsFeatured: req.IsFeatured,
	})
	if err != nil {
		log.Warn("failed to update photo", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Delete(featuredCacheKey)
	log.Info("photo updated")

	return nil
}

func (s *PhotoService) Delete(ctx context.Context, identity access.Identity, id uuid.UUID) error {
	const op = "service.PhotoService.Delete"

	log := s.log.With(
		slog.String("op", op),
		slog.String("photo_id", id.String()),
	)

	if err := access.AuthorizeAdmin(identity); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.DeletePhoto(ctx, id); err != nil {
		log.Warn("failed to delete photo", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Delete(featuredCacheKey)
	log.Info("photo deleted")

	return nil
}
