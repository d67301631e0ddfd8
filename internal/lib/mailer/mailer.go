// Package mailer relays contact messages to the site owner's inbox.
package mailer

import (
	"fmt"

	"github.com/OneGuyCory/LPPhotography-Final/internal/config"
	"github.com/OneGuyCory/LPPhotography-Final/internal/domain/models"

	gomail "gopkg.in/gomail.v2"
)

// Mailer delivers a stored contact message.
type Mailer interface {
	SendContactMessage(msg models.ContactMessage) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		to:     cfg.To,
	}
}

// SendContactMessage forwards the inquiry with the submitter set as
// Reply-To, so the owner answers the client directly instead of the
// relay address.
func (m *SMTPMailer) SendContactMessage(msg models.ContactMessage) error {
	const op = "mailer.SendContactMessage"

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", m.to)
	mail.SetHeader("Reply-To", mail.FormatAddress(msg.Email, msg.Name))
	mail.SetHeader("Subject", fmt.Sprintf("New inquiry from %s", msg.Name))
	mail.SetBody("text/plain", fmt.Sprintf(
		"Name: %s\nEmail: %s\nService: %s\n\n%s\n",
		msg.Name, msg.Email, msg.ServiceType, msg.Message,
	))

	if err := m.dialer.DialAndSend(mail); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
