package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/OneGuyCory/LPPhotography-Final/internal/domain/models"
	"github.com/OneGuyCory/LPPhotography-Final/internal/lib/logger/sl"
	"github.com/OneGuyCory/LPPhotography-Final/internal/repository"
	"github.com/OneGuyCory/LPPhotography-Final/internal/services/access"
	"github.com/OneGuyCory/LPPhotography-Final/internal/transport/http/dto"

	"github.com/google/uuid"
)

var ErrCategoryRequired = errors.New("category is required")

type GalleryService struct {
	log   *slog.Logger
	repo  repository.GalleryRepository
	users repository.UserRepository
}

func NewGalleryService(log *slog.Logger, repo repository.GalleryRepository, users repository.UserRepository) *GalleryService {
	return &GalleryService{
		log:   log,
		repo:  repo,
		users: users,
	}
}

// ListPublic returns the public portfolio, newest first. Access codes
// never appear in the result.
func (s *GalleryService) ListPublic(ctx context.Context) ([]models.Gallery, error) {
	const op = "service.GalleryService.ListPublic"

	galleries, err := s.repo.ListGalleries(ctx, true)
	if err != nil {
		s.log.Error("failed to list public galleries", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return galleries, nil
}

// ListAll returns every gallery, private ones included. Admin only.
func (s *GalleryService) ListAll(ctx context.Context, identity access.Identity) ([]models.Gallery, error) {
	const op = "service.GalleryService.ListAll"

	if err := access.AuthorizeAdmin(identity); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	galleries, err := s.repo.ListGalleries(ctx, false)
	if err != nil {
		s.log.Error("failed to list galleries", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return galleries, nil
}

// Get returns a single gallery. Private galleries open only for the
// matching access code; existence is checked before the code so a
// missing gallery is a not-found, not an auth failure.
func (s *GalleryService) Get(ctx context.Context, id uuid.UUID, presentedCode string) (models.Gallery, error) {
	const op = "service.GalleryService.Get"

	gallery, err := s.repo.GetGalleryByID(ctx, id)
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := access.AuthorizeGalleryRead(gallery, presentedCode); err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	return gallery, nil
}

// GetClientGallery returns the private gallery assigned to the logged-in
// client, matched by email.
func (s *GalleryService) GetClientGallery(ctx context.Context, identity access.Identity) (models.Gallery, error) {
	const op = "service.GalleryService.GetClientGallery"

	if err := access.AuthorizeClient(identity); err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	gallery, err := s.repo.GetGalleryByClientEmail(ctx, identity.Email)
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	return gallery, nil
}

// Create persists a new gallery. When the gallery is private and names a
// client, the client's account is created (or its access code rotated)
// so the emailed code always opens the gallery.
func (s *GalleryService) Create(ctx context.Context, identity access.Identity, req dto.CreateGalleryRequest) (models.Gallery, error) {
	const op = "service.GalleryService.Create"

	log := s.log.With(
		slog.String("op", op),
		slog.String("title", req.Title),
	)

	if err := access.AuthorizeAdmin(identity); err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	if req.Category == "" {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, ErrCategoryRequired)
	}

	log.Info("creating gallery")

	if req.IsPrivate && req.ClientEmail != "" && req.AccessCode != "" {
		if _, err := s.users.UpsertClientAccessCode(ctx, req.ClientEmail, req.AccessCode); err != nil {
			log.Error("failed to upsert client access code", sl.Err(err))
			return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	created, err := s.repo.CreateGallery(ctx, models.Gallery{
		Title:       req.Title,
		Category:    req.Category,
		IsPrivate:   req.IsPrivate,
		AccessCode:  req.AccessCode,
		ClientEmail: req.ClientEmail,
	})
	if err != nil {
		log.Error("failed to create gallery", sl.Err(err))
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery created", slog.String("gallery_id", created.ID.String()))

	return created, nil
}

// Delete removes the gallery and, through the store cascade, all of its
// photos.
func (s *GalleryService) Delete(ctx context.Context, identity access.Identity, id uuid.UUID) error {
	const op = "service.GalleryService.Delete"

	log := s.log.With(
		slog.String("op", op),
		slog.String("gallery_id", id.String()),
	)

	if err := access.AuthorizeAdmin(identity); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.DeleteGallery(ctx, id); err != nil {
		log.Warn("failed to delete gallery", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery deleted")

	return nil
}

// SetCoverImage points the gallery cover at one of its own photos.
func (s *GalleryService) SetCoverImage(ctx context.Context, identity access.Identity, galleryID uuid.UUID, photoURL string) error {
	const op = "service.GalleryService.SetCoverImage"

	log := s.log.With(
		slog.String("op", op),
		slog.String("gallery_id", galleryID.String()),
	)

	if err := access.AuthorizeAdmin(identity); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.SetCoverImage(ctx, galleryID, photoURL); err != nil {
		log.Warn("failed to set cover image", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("cover image updated")

	return nil
}
