package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleClient Role = "Client"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleClient
}

// User is an authentication principal. Admins log in with a password;
// clients log in with either a password or the access code mirrored from
// their private gallery. AccessCode is stored verbatim, matching the
// gallery-side compare.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash []byte    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	AccessCode   string    `db:"access_code" json:"-"`
	DisplayName  string    `db:"display_name" json:"displayName,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
