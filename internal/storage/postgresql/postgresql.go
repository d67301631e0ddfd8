package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

type Storage struct {
	db *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Storage, error) {
	const op = "storage.postgresql.New"

	db, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.db
}

func (s *Storage) Stop() {
	s.db.Close()
}

// Migrate applies the schema. The ON DELETE CASCADE on photos carries
// the "deleting a gallery deletes its photos" invariant; the unique
// index on users.email carries the duplicate-registration conflict.
func (s *Storage) Migrate(ctx context.Context) error {
	const op = "storage.postgresql.Migrate"

	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS galleries (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL,
			is_private BOOLEAN NOT NULL DEFAULT false,
			access_code TEXT NOT NULL DEFAULT '',
			client_email TEXT NOT NULL DEFAULT '',
			cover_image_url TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS photos (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			url TEXT NOT NULL,
			caption TEXT NOT NULL DEFAULT '',
			gallery_id UUID NOT NULL REFERENCES galleries(id) ON DELETE CASCADE,
			is_featured BOOLEAN NOT NULL DEFAULT false
		);

		CREATE INDEX IF NOT EXISTS idx_photos_gallery_id ON photos(gallery_id);
		CREATE INDEX IF NOT EXISTS idx_photos_is_featured ON photos(is_featured) WHERE is_featured;

		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT UNIQUE NOT NULL,
			password_hash BYTEA NOT NULL DEFAULT '',
			role TEXT NOT NULL DEFAULT 'Client',
			access_code TEXT NOT NULL DEFAULT '',
			display_name TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS contact_messages (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			service_type TEXT NOT NULL DEFAULT '',
			message TEXT NOT NULL,
			sent_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
