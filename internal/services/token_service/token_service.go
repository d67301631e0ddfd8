package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/OneGuyCory/LPPhotography-Final/internal/domain/models"
	"github.com/OneGuyCory/LPPhotography-Final/internal/repository"
	"github.com/OneGuyCory/LPPhotography-Final/internal/services/access"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrSessionRevoked = errors.New("session revoked")
)

// TokenService mints and verifies the signed session tokens carried in
// the session cookie. Tokens are stateless; the revocation repository
// is the one piece of server-side state, consulted on every verify so
// deleting a user invalidates their live sessions immediately.
type TokenService struct {
	secret      []byte
	ttl         time.Duration
	revocations repository.RevocationRepository
}

func NewTokenService(secret string, ttl time.Duration, revocations repository.RevocationRepository) *TokenService {
	return &TokenService{
		secret:      []byte(secret),
		ttl:         ttl,
		revocations: revocations,
	}
}

func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

func (s *TokenService) NewSessionToken(user models.User) (string, error) {
	const op = "services.token_service.NewSessionToken"

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":   user.ID.String(),
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

func (s *TokenService) VerifySessionToken(ctx context.Context, tokenString string) (access.Identity, error) {
	const op = "services.token_service.VerifySessionToken"

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return access.Anonymous(), fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}
		return access.Anonymous(), fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return access.Anonymous(), fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	uid, _ := claims["uid"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	userID, err := uuid.Parse(uid)
	if err != nil || !models.Role(role).Valid() {
		return access.Anonymous(), fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	revoked, err := s.revocations.IsRevoked(ctx, uid)
	if err != nil {
		return access.Anonymous(), fmt.Errorf("%s: %w", op, err)
	}
	if revoked {
		return access.Anonymous(), fmt.Errorf("%s: %w", op, ErrSessionRevoked)
	}

	return access.Identity{
		UserID: userID,
		Email:  email,
		Role:   models.Role(role),
	}, nil
}

// RevokeUser blacklists the user id for the token TTL, long enough to
// outlive any token already issued to them.
func (s *TokenService) RevokeUser(ctx context.Context, userID uuid.UUID) error {
	const op = "services.token_service.RevokeUser"

	if err := s.revocations.RevokeUser(ctx, userID.String(), s.ttl); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
