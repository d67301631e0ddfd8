package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	redisapp "github.com/OneGuyCory/LPPhotography-Final/internal/storage/redis"

	"github.com/redis/go-redis/v9"
)

type RevocationRepo struct {
	rdb *redisapp.Client
}

func NewRevocationRepository(rdb *redisapp.Client) *RevocationRepo {
	return &RevocationRepo{rdb: rdb}
}

func revokedUserKey(userID string) string {
	return fmt.Sprintf("revoked_user:%s", userID)
}

// RevokeUser marks every outstanding session of the user as dead. The
// mark only needs to outlive the longest session token, so it expires
// with the token TTL.
func (r *RevocationRepo) RevokeUser(ctx context.Context, userID string, ttl time.Duration) error {
	const op = "repository.revocation_repository.RevokeUser"

	if err := r.rdb.Set(ctx, revokedUserKey(userID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *RevocationRepo) IsRevoked(ctx context.Context, userID string) (bool, error) {
	const op = "repository.revocation_repository.IsRevoked"

	err := r.rdb.Get(ctx, revokedUserKey(userID)).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}
