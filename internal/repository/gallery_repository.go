package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/OneGuyCory/LPPhotography-Final/internal/domain/models"
	"github.com/OneGuyCory/LPPhotography-Final/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type GalleryRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepo {
	return &GalleryRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var galleryColumns = []string{
	"id",
	"title",
	"category",
	"is_private",
	"access_code",
	"client_email",
	"cover_image_url",
	"created_at",
}

func scanGallery(row pgx.Row) (models.Gallery, error) {
	var g models.Gallery
	err := row.Scan(
		&g.ID,
		&g.Title,
		&g.Category,
		&g.IsPrivate,
		&g.AccessCode,
		&g.ClientEmail,
		&g.CoverImageURL,
		&g.CreatedAt,
	)
	return g, err
}

func (r *GalleryRepo) CreateGallery(ctx context.Context, gallery models.Gallery) (models.Gallery, error) {
	const op = "repository.gallery_repository.CreateGallery"

	query, args, err := r.sb.Insert("galleries").
		Columns("title", "category", "is_private", "access_code", "client_email", "cover_image_url").
		Values(gallery.Title, gallery.Category, gallery.IsPrivate, gallery.AccessCode, gallery.ClientEmail, gallery.CoverImageURL).
		Suffix("RETURNING " + columnList(galleryColumns)).
		ToSql()
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	created, err := scanGallery(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (r *GalleryRepo) GetGalleryByID(ctx context.Context, id uuid.UUID) (models.Gallery, error) {
	const op = "repository.gallery_repository.GetGalleryByID"

	query, args, err := r.sb.Select(galleryColumns...).
		From("galleries").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	gallery, err := scanGallery(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Gallery{}, fmt.Errorf("%s: %w", op, storage.ErrGalleryNotFound)
		}
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	return gallery, nil
}

// GetGalleryByClientEmail returns the private gallery scoped to the
// given client. At most one such gallery is assumed; if that assumption
// is ever violated the newest one wins.
func (r *GalleryRepo) GetGalleryByClientEmail(ctx context.Context, email string) (models.Gallery, error) {
	const op = "repository.gallery_repository.GetGalleryByClientEmail"

	query, args, err := r.sb.Select(galleryColumns...).
		From("galleries").
		Where(sq.Eq{"is_private": true, "client_email": email}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	gallery, err := scanGallery(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Gallery{}, fmt.Errorf("%s: %w", op, storage.ErrGalleryNotFound)
		}
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	return gallery, nil
}

func (r *GalleryRepo) ListGalleries(ctx context.Context, publicOnly bool) ([]models.Gallery, error) {
	const op = "repository.gallery_repository.ListGalleries"

	builder := r.sb.Select(galleryColumns...).
		From("galleries").
		OrderBy("created_at DESC")

	if publicOnly {
		builder = builder.Where(sq.Eq{"is_private": false})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var galleries []models.Gallery
	for rows.Next() {
		gallery, err := scanGallery(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		galleries = append(galleries, gallery)
	}

	return galleries, rows.Err()
}

// DeleteGallery removes the gallery; its photos go with it via the
// ON DELETE CASCADE foreign key.
func (r *GalleryRepo) DeleteGallery(ctx context.Context, id uuid.UUID) error {
	const op = "repository.gallery_repository.DeleteGallery"

	query, args, err := r.sb.Delete("galleries").
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
		return fmt.Errorf("%s: %w", op, storage.ErrGalleryNotFound)
	}

	return nil
}

// SetCoverImage updates the cover inside one transaction: the gallery
// must still exist and the URL must belong to one of its own photos, so
// a concurrent delete surfaces as not-found rather than a silent no-op.
func (r *GalleryRepo) SetCoverImage(ctx context.Context, galleryID uuid.UUID, photoURL string) error {
	const op = "repository.gallery_repository.SetCoverImage"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM galleries WHERE id = $1)", galleryID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return fmt.Errorf("%s: %w", op, storage.ErrGalleryNotFound)
	}

	var owned bool
	err = tx.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM photos WHERE gallery_id = $1 AND url = $2)",
		galleryID, photoURL,
	).Scan(&owned)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !owned {
		return fmt.Errorf("%s: %w", op, storage.ErrPhotoNotInGallery)
	}

	tag, err := tx.Exec(ctx,
		"UPDATE galleries SET cover_image_url = $1 WHERE id = $2",
		photoURL, galleryID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrGalleryNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
