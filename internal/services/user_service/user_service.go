package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"

	"github.com/OneGuyCory/LPPhotography-Final/internal/domain/models"
	"github.com/OneGuyCory/LPPhotography-Final/internal/lib/logger/sl"
	"github.com/OneGuyCory/LPPhotography-Final/internal/repository"
	"github.com/OneGuyCory/LPPhotography-Final/internal/services/access"
	"github.com/OneGuyCory/LPPhotography-Final/internal/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
)

// SessionRevoker kills a user's live sessions. Implemented by the token
// service.
type SessionRevoker interface {
	RevokeUser(ctx context.Context, userID uuid.UUID) error
}

type UserService struct {
	log     *slog.Logger
	repo    repository.UserRepository
	revoker SessionRevoker
}

func NewUserService(log *slog.Logger, repo repository.UserRepository, revoker SessionRevoker) *UserService {
	return &UserService{
		log:     log,
		repo:    repo,
		revoker: revoker,
	}
}

// Register creates an account with a bcrypt-hashed password. Admin only.
func (s *UserService) Register(ctx context.Context, identity access.Identity, email, password string, role models.Role, displayName string) (uuid.UUID, error) {
	const op = "service.UserService.Register"

	log := s.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	if err := access.AuthorizeAdmin(identity); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if !role.Valid() {
		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidRole)
	}

	log.Info("registering user")

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", sl.Err(err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.SaveUser(ctx, models.User{
		Email:        email,
		PasswordHash: passHash,
		Role:         role,
		DisplayName:  displayName,
	})
	if err != nil {
		log.Warn("failed to save user", sl.Err(err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user registered", slog.String("user_id", id.String()))

	return id, nil
}

// RegisterClient creates a Client account that can log in either with
// the password or with the gallery access code.
func (s *UserService) RegisterClient(ctx context.Context, identity access.Identity, email, password, accessCode, displayName string) (uuid.UUID, error) {
	const op = "service.UserService.RegisterClient"

	log := s.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	if err := access.AuthorizeAdmin(identity); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("registering client")

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", sl.Err(err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.SaveUser(ctx, models.User{
		Email:        email,
		PasswordHash: passHash,
		Role:         models.RoleClient,
		AccessCode:   accessCode,
		DisplayName:  displayName,
	})
	if err != nil {
		log.Warn("failed to save client", sl.Err(err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("client registered", slog.String("user_id", id.String()))

	return id, nil
}

// Login checks email + password. Unknown email and wrong password both
// come back as ErrInvalidCredentials so the response leaks nothing.
func (s *UserService) Login(ctx context.Context, email, password string) (models.User, error) {
	const op = "service.UserService.Login"

	log := s.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	user, err := s.repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Warn("user not found", sl.Err(err))
		} else {
			log.Error("failed to get user", sl.Err(err))
		}
		return models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		log.Info("invalid credentials", sl.Err(err))
		return models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	log.Info("user logged in")

	return user, nil
}

// LoginClient checks email + access code with an exact, case-sensitive
// compare. Failure modes are indistinguishable, as with Login.
func (s *UserService) LoginClient(ctx context.Context, email, accessCode string) (models.User, error) {
	const op = "service.UserService.LoginClient"

	log := s.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	user, err := s.repo.UserByEmail(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if user.Role != models.RoleClient || user.AccessCode == "" ||
		subtle.ConstantTimeCompare([]byte(user.AccessCode), []byte(accessCode)) != 1 {
		log.Info("invalid access code")
		return models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	log.Info("client logged in")

	return user, nil
}

// ListUsers returns the account directory. Admin only; hashes and
// access codes are stripped at the transport layer.
func (s *UserService) ListUsers(ctx context.Context, identity access.Identity) ([]models.User, error) {
	const op = "service.UserService.ListUsers"

	if err := access.AuthorizeAdmin(identity); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		s.log.Error("failed to list users", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

// DeleteUser removes the account and revokes its live sessions. The
// session token is stateless, so without the revocation mark a deleted
// user could keep calling until the token expired.
func (s *UserService) DeleteUser(ctx context.Context, identity access.Identity, id uuid.UUID) error {
	const op = "service.UserService.DeleteUser"

	log := s.log.With(
		slog.String("op", op),
		slog.String("user_id", id.String()),
	)

	if err := access.AuthorizeAdmin(identity); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.DeleteUser(ctx, id); err != nil {
		log.Warn("failed to delete user", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.revoker.RevokeUser(ctx, id); err != nil {
		log.Error("failed to revoke user sessions", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user deleted")

	return nil
}
