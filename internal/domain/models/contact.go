package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a write-only record of a contact-form submission.
// It is persisted for the owner's records and relayed by email; the API
// never reads it back.
type ContactMessage struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	ServiceType string    `db:"service_type" json:"serviceType"`
	Message     string    `db:"message" json:"message"`
	SentAt      time.Time `db:"sent_at" json:"sentAt"`
}
