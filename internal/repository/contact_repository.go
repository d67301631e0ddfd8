package repository

import (
	"context"
	"fmt"

	"github.com/OneGuyCory/LPPhotography-Final/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"
)

type ContactRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveContactMessage stores the message before any relay attempt, so a
// broken mailer never loses an inquiry.
func (r *ContactRepo) SaveContactMessage(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error) {
	const op = "repository.contact_repository.SaveContactMessage"

	query, args, err := r.sb.Insert("contact_messages").
		Columns("name", "email", "service_type", "message").
		Values(msg.Name, msg.Email, msg.ServiceType, msg.Message).
		Suffix("RETURNING id, name, email, service_type, message, sent_at").
		ToSql()
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var saved models.ContactMessage
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&saved.ID,
		&saved.Name,
		&saved.Email,
		&saved.ServiceType,
		&saved.Message,
		&saved.SentAt,
	)
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}
