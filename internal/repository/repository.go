package repository

import (
	"strings"

	"github.com/jackc/pgx/v4/pgxpool"
)

// Repository bundles the Postgres-backed repositories behind one
// constructor so the app wires a single value.
type Repository struct {
	Gallery GalleryRepository
	Photo   PhotoRepository
	User    UserRepository
	Contact ContactRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Gallery: NewGalleryRepository(db),
		Photo:   NewPhotoRepository(db),
		User:    NewUserRepository(db),
		Contact: NewContactRepository(db),
	}
}

func columnList(cols []string) string {
	return strings.Join(cols, ", ")
}
