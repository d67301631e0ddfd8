package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/OneGuyCory/LPPhotography-Final/internal/domain/models"
	"github.com/OneGuyCory/LPPhotography-Final/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) SaveContactMessage(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error) {
	args := m.Called(ctx, msg)
	return args.Get(0).(models.ContactMessage), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendContactMessage(msg models.ContactMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

var testCtx = context.Background()

func TestContactService_Send(t *testing.T) {
	req := dto.ContactMessageRequest{
		Name:        "Jamie",
		Email:       "jamie@example.com",
		ServiceType: "wedding",
		Message:     "Are you free in June?",
	}
	saved := models.ContactMessage{
		ID:      uuid.New(),
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	t.Run("persist then relay", func(t *testing.T) {
		repo := new(MockContactRepository)
		m := new(MockMailer)
		service := NewContactService(slog.Default(), repo, m)

		repo.On("SaveContactMessage", testCtx, mock.Anything).Return(saved, nil).Once()
		m.On("SendContactMessage", saved).Return(nil).Once()

		err := service.Send(testCtx, req)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
		m.AssertExpectations(t)
	})

	t.Run("relay failure after a successful save", func(t *testing.T) {
		repo := new(MockContactRepository)
		m := new(MockMailer)
		service := NewContactService(slog.Default(), repo, m)

		repo.On("SaveContactMessage", testCtx, mock.Anything).Return(saved, nil).Once()
		m.On("SendContactMessage", saved).Return(errors.New("smtp timeout")).Once()

		err := service.Send(testCtx, req)

		assert.ErrorIs(t, err, ErrMailDelivery)
		repo.AssertExpectations(t)
	})

	t.Run("save failure never reaches the mailer", func(t *testing.T) {
		repo := new(MockContactRepository)
		m := new(MockMailer)
		service := NewContactService(slog.Default(), repo, m)

		expectedErr := errors.New("db down")
		repo.On("SaveContactMessage", testCtx, mock.Anything).
			Return(models.ContactMessage{}, expectedErr).Once()

		err := service.Send(testCtx, req)

		assert.ErrorIs(t, err, expectedErr)
		assert.NotErrorIs(t, err, ErrMailDelivery)
		m.AssertNotCalled(t, "SendContactMessage", mock.Anything)
	})
}
