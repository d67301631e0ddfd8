package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/OneGuyCory/LPPhotography-Final/internal/domain/models"
	"github.com/OneGuyCory/LPPhotography-Final/internal/services/access"
	"github.com/OneGuyCory/LPPhotography-Final/internal/storage"
	"github.com/OneGuyCory/LPPhotography-Final/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPhotoRepository struct {
	mock.Mock
}

func (m *MockPhotoRepository) CreatePhoto(ctx context.Context, photo models.Photo) (models.Photo, error) {
	args := m.Called(ctx, photo)
	return args.Get(0).(models.Photo), args.Error(1)
}

func (m *MockPhotoRepository) GetPhotoByID(ctx context.Context, id uuid.UUID) (models.Photo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Photo), args.Error(1)
}

func (m *MockPhotoRepository) GetPhotosByGalleryID(ctx context.Context, galleryID uuid.UUID) ([]models.Photo, error) {
	args := m.Called(ctx, galleryID)
	return args.Get(0).([]models.Photo), args.Error(1)
}

func (m *MockPhotoRepository) GetFeaturedPhotos(ctx context.Context) ([]models.Photo, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Photo), args.Error(1)
}

func (m *MockPhotoRepository) UpdatePhoto(ctx context.Context, photo models.Photo) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}

func (m *MockPhotoRepository) DeletePhoto(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockGalleryRepository struct {
	mock.Mock
}

func (m *MockGalleryRepository) CreateGallery(ctx context.Context, gallery models.Gallery) (models.Gallery, error) {
	args := m.Called(ctx, gallery)
	return args.Get(0).(models.Gallery), args.Error(1)
}

func (m *MockGalleryRepository) GetGalleryByID(ctx context.Context, id uuid.UUID) (models.Gallery, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Gallery), args.Error(1)
}

func (m *MockGalleryRepository) GetGalleryByClientEmail(ctx context.Context, email string) (models.Gallery, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.Gallery), args.Error(1)
}

func (m *MockGalleryRepository) ListGalleries(ctx context.Context, publicOnly bool) ([]models.Gallery, error) {
	args := m.Called(ctx, publicOnly)
	return args.Get(0).([]models.Gallery), args.Error(1)
}

func (m *MockGalleryRepository) DeleteGallery(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGalleryRepository) SetCoverImage(ctx context.Context, galleryID uuid.UUID, photoURL string) error {
	args := m.Called(ctx, galleryID, photoURL)
	return args.Error(0)
}

var (
	testCtx  = context.Background()
	adminID  = access.Identity{UserID: uuid.New(), Email: "admin@example.com", Role: models.RoleAdmin}
	clientID = access.Identity{UserID: uuid.New(), Email: "client@example.com", Role: models.RoleClient}
)

func newService() (*PhotoService, *MockPhotoRepository, *MockGalleryRepository) {
	repo := new(MockPhotoRepository)
	galleries := new(MockGalleryRepository)
	return NewPhotoService(slog.Default(), repo, galleries), repo, galleries
}

func TestPhotoService_PhotosForGallery(t *testing.T) {
	galleryID := uuid.New()

	t.Run("missing gallery is not found", func(t *testing.T) {
		service, repo, galleries := newService()
		galleries.On("GetGalleryByID", testCtx, galleryID).
			Return(models.Gallery{}, storage.ErrGalleryNotFound).Once()

		_, err := service.PhotosForGallery(testCtx, galleryID)

		assert.ErrorIs(t, err, storage.ErrGalleryNotFound)
		repo.AssertNotCalled(t, "GetPhotosByGalleryID", mock.Anything, mock.Anything)
	})

	t.Run("empty gallery returns empty list", func(t *testing.T) {
		service, repo, galleries := newService()
		galleries.On("GetGalleryByID", testCtx, galleryID).
			Return(models.Gallery{ID: galleryID}, nil).Once()
		repo.On("GetPhotosByGalleryID", testCtx, galleryID).
			Return([]models.Photo(nil), nil).Once()

		photos, err := service.PhotosForGallery(testCtx, galleryID)

		assert.NoError(t, err)
		assert.Empty(t, photos)
	})
}

func TestPhotoService_Featured_Cached(t *testing.T) {
	service, repo, _ := newService()

	featured := []models.Photo{{ID: uuid.New(), IsFeatured: true}}
	repo.On("GetFeaturedPhotos", testCtx).Return(featured, nil).Once()

	first, err := service.Featured(testCtx)
	assert.NoError(t, err)
	assert.Equal(t, featured, first)

	// Second read comes from the cache; the repo must not be hit again.
	second, err := service.Featured(testCtx)
	assert.NoError(t, err)
	assert.Equal(t, featured, second)

	repo.AssertNumberOfCalls(t, "GetFeaturedPhotos", 1)
}

func TestPhotoService_Create_InvalidatesFeaturedCache(t *testing.T) {
	service, repo, _ := newService()

	repo.On("GetFeaturedPhotos", testCtx).Return([]models.Photo{}, nil).Twice()
	repo.On("CreatePhoto", testCtx, mock.Anything).
		Return(models.Photo{ID: uuid.New()}, nil).Once()

	_, err := service.Featured(testCtx)
	assert.NoError(t, err)

	_, err = service.Create(testCtx, adminID, dto.CreatePhotoRequest{
		URL:       "https://cdn/p.jpg",
		GalleryID: uuid.New(),
	})
	assert.NoError(t, err)

	_, err = service.Featured(testCtx)
	assert.NoError(t, err)

	repo.AssertNumberOfCalls(t, "GetFeaturedPhotos", 2)
}

func TestPhotoService_Create(t *testing.T) {
	t.Run("bad gallery reference from fk", func(t *testing.T) {
		service, repo, _ := newService()
		repo.On("CreatePhoto", testCtx, mock.Anything).
			Return(models.Photo{}, storage.ErrGalleryNotFound).Once()

		_, err := service.Create(testCtx, adminID, dto.CreatePhotoRequest{
			URL:       "https://cdn/p.jpg",
			GalleryID: uuid.New(),
		})

		assert.ErrorIs(t, err, storage.ErrGalleryNotFound)
	})

	t.Run("client gated before repo", func(t *testing.T) {
		service, repo, _ := newService()

		_, err := service.Create(testCtx, clientID, dto.CreatePhotoRequest{
			URL:       "https://cdn/p.jpg",
			GalleryID: uuid.New(),
		})

		assert.ErrorIs(t, err, access.ErrAccessDenied)
		repo.AssertNotCalled(t, "CreatePhoto", mock.Anything, mock.Anything)
	})
}

func TestPhotoService_Update(t *testing.T) {
	photoID := uuid.New()

	t.Run("id mismatch short-circuits before the repo", func(t *testing.T) {
		service, repo, _ := newService()

		err := service.Update(testCtx, adminID, photoID, dto.UpdatePhotoRequest{
			ID:        uuid.New(),
			URL:       "https://cdn/p.jpg",
			GalleryID: uuid.New(),
		})

		assert.ErrorIs(t, err, ErrPhotoIDMismatch)
		repo.AssertNotCalled(t, "UpdatePhoto", mock.Anything, mock.Anything)
	})

	t.Run("missing photo is not found", func(t *testing.T) {
		service, repo, _ := newService()
		repo.On("UpdatePhoto", testCtx, mock.Anything).
			Return(storage.ErrPhotoNotFound).Once()

		err := service.Update(testCtx, adminID, photoID, dto.UpdatePhotoRequest{
			ID:        photoID,
			URL:       "https://cdn/p.jpg",
			GalleryID: uuid.New(),
		})

		assert.ErrorIs(t, err, storage.ErrPhotoNotFound)
	})

	t.Run("wholesale overwrite reaches the repo", func(t *testing.T) {
		service, repo, _ := newService()
		galleryID := uuid.New()

		repo.On("UpdatePhoto", testCtx, models.Photo{
			ID:         photoID,
			URL:        "https://cdn/new.jpg",
			Caption:    "new caption",
			GalleryID:  galleryID,
			IsFeatured: true,
		}).Return(nil).Once()

		err := service.Update(testCtx, adminID, photoID, dto.UpdatePhotoRequest{
			ID:         photoID,
			URL:        "https://cdn/new.jpg",
			Caption:    "new caption",
			GalleryID:  galleryID,
			IsFeatured: true,
		})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestPhotoService_Delete_Gated(t *testing.T) {
	service, repo, _ := newService()
	photoID := uuid.New()

	err := service.Delete(testCtx, access.Anonymous(), photoID)
	assert.ErrorIs(t, err, access.ErrAuthRequired)
	repo.AssertNotCalled(t, "DeletePhoto", mock.Anything, mock.Anything)

	repo.On("DeletePhoto", testCtx, photoID).Return(storage.ErrPhotoNotFound).Once()
	err = service.Delete(testCtx, adminID, photoID)
	assert.ErrorIs(t, err, storage.ErrPhotoNotFound)
}
