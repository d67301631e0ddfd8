package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	redisapp "github.com/OneGuyCory/LPPhotography-Final/internal/storage/redis"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockedRevocationRepo(t *testing.T) (*RevocationRepo, redismock.ClientMock) {
	t.Helper()

	db, mock := redismock.NewClientMock()
	repo := NewRevocationRepository(&redisapp.Client{Client: db})

	return repo, mock
}

func TestRevocationRepo_RevokeUser(t *testing.T) {
	repo, mock := newMockedRevocationRepo(t)

	userID := uuid.NewString()
	mock.ExpectSet("revoked_user:"+userID, "1", time.Hour).SetVal("OK")

	err := repo.RevokeUser(context.Background(), userID, time.Hour)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevocationRepo_IsRevoked(t *testing.T) {
	t.Run("revoked", func(t *testing.T) {
		repo, mock := newMockedRevocationRepo(t)

		userID := uuid.NewString()
		mock.ExpectGet("revoked_user:" + userID).SetVal("1")

		revoked, err := repo.IsRevoked(context.Background(), userID)

		require.NoError(t, err)
		assert.True(t, revoked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user is not revoked", func(t *testing.T) {
		repo, mock := newMockedRevocationRepo(t)

		userID := uuid.NewString()
		mock.ExpectGet("revoked_user:" + userID).RedisNil()

		revoked, err := repo.IsRevoked(context.Background(), userID)

		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("store error propagates", func(t *testing.T) {
		repo, mock := newMockedRevocationRepo(t)

		userID := uuid.NewString()
		expectedErr := errors.New("connection refused")
		mock.ExpectGet("revoked_user:" + userID).SetErr(expectedErr)

		_, err := repo.IsRevoked(context.Background(), userID)

		assert.ErrorIs(t, err, expectedErr)
	})
}
