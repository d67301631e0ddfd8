// Package access is the single place where "who may do what" is
// decided. Handlers and services pass an explicit Identity in; nothing
// here reads session state or other ambient context.
package access

import (
	"errors"

	"github.com/OneGuyCory/LPPhotography-Final/internal/domain/models"

	"github.com/google/uuid"
)

var (
	ErrAuthRequired      = errors.New("authentication required")
	ErrAccessDenied      = errors.New("access denied")
	ErrInvalidAccessCode = errors.New("invalid access code")
)

// Identity is the resolved caller. A zero Role means anonymous.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   models.Role
}

func Anonymous() Identity {
	return Identity{}
}

func (i Identity) IsAnonymous() bool {
	return i.Role == ""
}

// AuthorizeAdmin admits Admins only. Anonymous callers get
// ErrAuthRequired so transport can answer 401 rather than 403.
func AuthorizeAdmin(identity Identity) error {
	if identity.IsAnonymous() {
		return ErrAuthRequired
	}
	if identity.Role != models.RoleAdmin {
		return ErrAccessDenied
	}
	return nil
}

// AuthorizeClient admits Clients only.
func AuthorizeClient(identity Identity) error {
	if identity.IsAnonymous() {
		return ErrAuthRequired
	}
	if identity.Role != models.RoleClient {
		return ErrAccessDenied
	}
	return nil
}

// AuthorizeGalleryRead gates a single gallery read. Public galleries
// are open to everyone. Private galleries require the presented code to
// match the stored one exactly (case-sensitive); the caller's email is
// deliberately not consulted, so a client may open any private gallery
// whose code they hold.
func AuthorizeGalleryRead(gallery models.Gallery, presentedCode string) error {
	if !gallery.IsPrivate {
		return nil
	}
	if presentedCode == "" || presentedCode != gallery.AccessCode {
		return ErrInvalidAccessCode
	}
	return nil
}
