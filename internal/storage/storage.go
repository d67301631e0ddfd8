package storage

import "errors"

var (
	ErrGalleryNotFound = errors.New("gallery not found")
	ErrPhotoNotFound   = errors.New("photo not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user already exists")

	// ErrPhotoNotInGallery is returned when a cover image URL does not
	// match any photo of the target gallery.
	ErrPhotoNotInGallery = errors.New("photo does not belong to gallery")
)
