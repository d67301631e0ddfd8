package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/OneGuyCory/LPPhotography-Final/internal/domain/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRevocationRepository struct {
	mock.Mock
}

func (m *MockRevocationRepository) RevokeUser(ctx context.Context, userID string, ttl time.Duration) error {
	args := m.Called(ctx, userID, ttl)
	return args.Error(0)
}

func (m *MockRevocationRepository) IsRevoked(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

var (
	testUser = models.User{
		ID:    uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		Email: "test@example.com",
		Role:  models.RoleAdmin,
	}
	testCtx = context.Background()
)

func TestSessionToken_RoundTrip(t *testing.T) {
	repo := new(MockRevocationRepository)
	service := NewTokenService("test-secret", time.Hour, repo)

	repo.On("IsRevoked", testCtx, testUser.ID.String()).Return(false, nil)

	token, err := service.NewSessionToken(testUser)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	identity, err := service.VerifySessionToken(testCtx, token)
	assert.NoError(t, err)
	assert.Equal(t, testUser.ID, identity.UserID)
	assert.Equal(t, testUser.Email, identity.Email)
	assert.Equal(t, models.RoleAdmin, identity.Role)
	repo.AssertExpectations(t)
}

func TestVerifySessionToken_Expired(t *testing.T) {
	repo := new(MockRevocationRepository)
	service := NewTokenService("test-secret", -time.Minute, repo)

	token, err := service.NewSessionToken(testUser)
	assert.NoError(t, err)

	_, err = service.VerifySessionToken(testCtx, token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifySessionToken_Garbage(t *testing.T) {
	repo := new(MockRevocationRepository)
	service := NewTokenService("test-secret", time.Hour, repo)

	_, err := service.VerifySessionToken(testCtx, "not.a.token")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifySessionToken_WrongSecret(t *testing.T) {
	repo := new(MockRevocationRepository)
	minter := NewTokenService("secret-a", time.Hour, repo)
	verifier := NewTokenService("secret-b", time.Hour, repo)

	token, err := minter.NewSessionToken(testUser)
	assert.NoError(t, err)

	_, err = verifier.VerifySessionToken(testCtx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifySessionToken_Revoked(t *testing.T) {
	repo := new(MockRevocationRepository)
	service := NewTokenService("test-secret", time.Hour, repo)

	repo.On("IsRevoked", testCtx, testUser.ID.String()).Return(true, nil)

	token, err := service.NewSessionToken(testUser)
	assert.NoError(t, err)

	_, err = service.VerifySessionToken(testCtx, token)
	assert.ErrorIs(t, err, ErrSessionRevoked)
	repo.AssertExpectations(t)
}

func TestVerifySessionToken_RevocationStoreError(t *testing.T) {
	repo := new(MockRevocationRepository)
	service := NewTokenService("test-secret", time.Hour, repo)

	expectedErr := errors.New("redis down")
	repo.On("IsRevoked", testCtx, testUser.ID.String()).Return(false, expectedErr)

	token, err := service.NewSessionToken(testUser)
	assert.NoError(t, err)

	_, err = service.VerifySessionToken(testCtx, token)
	assert.ErrorIs(t, err, expectedErr)
	repo.AssertExpectations(t)
}

func TestRevokeUser(t *testing.T) {
	repo := new(MockRevocationRepository)
	service := NewTokenService("test-secret", time.Hour, repo)

	repo.On("RevokeUser", testCtx, testUser.ID.String(), time.Hour).Return(nil)

	err := service.RevokeUser(testCtx, testUser.ID)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
