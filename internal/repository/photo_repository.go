package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/OneGuyCory/LPPhotography-Final/internal/domain/models"
	"github.com/OneGuyCory/LPPhotography-Final/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type PhotoRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewPhotoRepository(db *pgxpool.Pool) *PhotoRepo {
	return &PhotoRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var photoColumns = []string{
	"id",
	"url",
	"caption",
	"gallery_id",
	"is_featured",
}

func scanPhoto(row pgx.Row) (models.Photo, error) {
	var p models.Photo
	err := row.Scan(
		&p.ID,
		&p.URL,
		&p.Caption,
		&p.GalleryID,
		&p.IsFeatured,
	)
	return p, err
}

// CreatePhoto inserts the photo and lets the foreign key decide whether
// the target gallery exists, so there is no check-then-insert race.
func (r *PhotoRepo) CreatePhoto(ctx context.Context, photo models.Photo) (models.Photo, error) {
	const op = "repository.photo_repository.CreatePhoto"

	query, args, err := r.sb.Insert("photos").
		Columns("url", "caption", "gallery_id", "is_featured").
		Values(photo.URL, photo.Caption, photo.GalleryID, photo.IsFeatured).
		Suffix("RETURNING " + columnList(photoColumns)).
		ToSql()
	if err != nil {
		return models.Photo{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	created, err := scanPhoto(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return models.Photo{}, fmt.Errorf("%s: %w", op, storage.ErrGalleryNotFound)
		}
		return models.Photo{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (r *PhotoRepo) GetPhotoByID(ctx context.Context, id uuid.UUID) (models.Photo, error) {
	const op = "repository.photo_repository.GetPhotoByID"

	query, args, err := r.sb.Select(photoColumns...).
		From("photos").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Photo{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	photo, err := scanPhoto(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Photo{}, fmt.Errorf("%s: %w", op, storage.ErrPhotoNotFound)
		}
		return models.Photo{}, fmt.Errorf("%s: %w", op, err)
	}

	return photo, nil
}

func (r *PhotoRepo) GetPhotosByGalleryID(ctx context.Context, galleryID uuid.UUID) ([]models.Photo, error) {
	const op = "repository.photo_repository.GetPhotosByGalleryID"

	query, args, err := r.sb.Select(photoColumns...).
		From("photos").
		Where(sq.Eq{"gallery_id": galleryID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	return r.queryPhotos(ctx, op, query, args)
}

func (r *PhotoRepo) GetFeaturedPhotos(ctx context.Context) ([]models.Photo, error) {
	const op = "repository.photo_repository.GetFeaturedPhotos"

	query, args, err := r.sb.Select(photoColumns...).
		From("photos").
		Where(sq.Eq{"is_featured": true}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	return r.queryPhotos(ctx, op, query, args)
}

func (r *PhotoRepo) queryPhotos(ctx context.Context, op, query string, args []interface{}) ([]models.Photo, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var photos []models.Photo
	for rows.Next() {
		photo, err := scanPhoto(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		photos = append(photos, photo)
	}

	return photos, rows.Err()
}

// UpdatePhoto overwrites every mutable field, gallery_id included. A
// move into a nonexistent gallery trips the foreign key and comes back
// as ErrGalleryNotFound.
func (r *PhotoRepo) UpdatePhoto(ctx context.Context, photo models.Photo) error {
	const op = "repository.photo_repository.UpdatePhoto"

	query, args, err := r.sb.Update("photos").
		Set("url", photo.URL).
		Set("caption", photo.Caption).
		Set("gallery_id", photo.GalleryID).
		Set("is_featured", photo.IsFeatured).
		Where(sq.Eq{"id": photo.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrGalleryNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrPhotoNotFound)
	}

	return nil
}

func (r *PhotoRepo) DeletePhoto(ctx context.Context, id uuid.UUID) error {
	const op = "repository.photo_repository.DeletePhoto"

	query, args, err := r.sb.Delete("photos").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrPhotoNotFound)
	}

	return nil
}
