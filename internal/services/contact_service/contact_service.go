package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/OneGuyCory/LPPhotography-Final/internal/domain/models"
	"github.com/OneGuyCory/LPPhotography-Final/internal/lib/logger/sl"
	"github.com/OneGuyCory/LPPhotography-Final/internal/lib/mailer"
	"github.com/OneGuyCory/LPPhotography-Final/internal/repository"
	"github.com/OneGuyCory/LPPhotography-Final/internal/transport/http/dto"
)

var ErrMailDelivery = errors.New("mail delivery failed")

// ContactService stores contact inquiries and relays them over SMTP.
// The store write happens first: an inquiry must survive a broken
// mailer.
type ContactService struct {
	log    *slog.Logger
	repo   repository.ContactRepository
	mailer mailer.Mailer
}

func NewContactService(log *slog.Logger, repo repository.ContactRepository, m mailer.Mailer) *ContactService {
	return &ContactService{
		log:    log,
		repo:   repo,
		mailer: m,
	}
}

func (s *ContactService) Send(ctx context.Context, req dto.ContactMessageRequest) error {
	const op = "service.ContactService.Send"

	log := s.log.With(
		slog.String("op", op),
		slog.String("email", req.Email),
	)

	log.Info("saving contact message")

	saved, err := s.repo.SaveContactMessage(ctx, models.ContactMessage{
		Name:        req.Name,
		Email:       req.Email,
		ServiceType: req.ServiceType,
		Message:     req.Message,
	})
	if err != nil {
		log.Error("failed to save contact message", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.mailer.SendContactMessage(saved); err != nil {
		log.Error("failed to relay contact message", sl.Err(err),
			slog.String("message_id", saved.ID.String()))
		return fmt.Errorf("%s: %w", op, ErrMailDelivery)
	}

	log.Info("contact message relayed", slog.String("message_id", saved.ID.String()))

	return nil
}
