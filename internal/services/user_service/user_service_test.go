package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/OneGuyCory/LPPhotography-Final/internal/domain/models"
	"github.com/OneGuyCory/LPPhotography-Final/internal/services/access"
	"github.com/OneGuyCory/LPPhotography-Final/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user models.User) (uuid.UUID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserRepository) UserByEmail(ctx context.Context, email string) (models.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserRepository) UpsertClientAccessCode(ctx context.Context, email, accessCode string) (uuid.UUID, error) {
	args := m.Called(ctx, email, accessCode)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSessionRevoker struct {
	mock.Mock
}

func (m *MockSessionRevoker) RevokeUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

var (
	testCtx  = context.Background()
	adminID  = access.Identity{UserID: uuid.New(), Email: "admin@example.com", Role: models.RoleAdmin}
	clientID = access.Identity{UserID: uuid.New(), Email: "client@example.com", Role: models.RoleClient}
)

func newService() (*UserService, *MockUserRepository, *MockSessionRevoker) {
	repo := new(MockUserRepository)
	revoker := new(MockSessionRevoker)
	return NewUserService(slog.Default(), repo, revoker), repo, revoker
}

func hashedUser(email, password string, role models.Role) models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
}

func TestUserService_Login(t *testing.T) {
	user := hashedUser("user@example.com", "correct-horse", models.RoleAdmin)

	t.Run("success", func(t *testing.T) {
		service, repo, _ := newService()
		repo.On("UserByEmail", testCtx, user.Email).Return(user, nil).Once()

		got, err := service.Login(testCtx, user.Email, "correct-horse")

		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		service, repo, _ := newService()
		repo.On("UserByEmail", testCtx, "nobody@example.com").
			Return(models.User{}, storage.ErrUserNotFound).Once()
		repo.On("UserByEmail", testCtx, user.Email).Return(user, nil).Once()

		_, errUnknown := service.Login(testCtx, "nobody@example.com", "whatever")
		_, errWrongPass := service.Login(testCtx, user.Email, "wrong-password")

		assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	})
}

func TestUserService_LoginClient(t *testing.T) {
	client := models.User{
		ID:         uuid.New(),
		Email:      "client@example.com",
		Role:       models.RoleClient,
		AccessCode: "CODE1234",
	}

	t.Run("success", func(t *testing.T) {
		service, repo, _ := newService()
		repo.On("UserByEmail", testCtx, client.Email).Return(client, nil).Once()

		got, err := service.LoginClient(testCtx, client.Email, "CODE1234")

		require.NoError(t, err)
		assert.Equal(t, client.ID, got.ID)
	})

	t.Run("wrong code", func(t *testing.T) {
		service, repo, _ := newService()
		repo.On("UserByEmail", testCtx, client.Email).Return(client, nil).Once()

		_, err := service.LoginClient(testCtx, client.Email, "code1234")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty stored code never matches", func(t *testing.T) {
		service, repo, _ := newService()
		noCode := client
		noCode.AccessCode = ""
		repo.On("UserByEmail", testCtx, client.Email).Return(noCode, nil).Once()

		_, err := service.LoginClient(testCtx, client.Email, "")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("admin cannot log in with access code", func(t *testing.T) {
		service, repo, _ := newService()
		admin := client
		admin.Role = models.RoleAdmin
		repo.On("UserByEmail", testCtx, client.Email).Return(admin, nil).Once()

		_, err := service.LoginClient(testCtx, client.Email, "CODE1234")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserService_Register(t *testing.T) {
	t.Run("success hashes the password", func(t *testing.T) {
		service, repo, _ := newService()
		newID := uuid.New()

		repo.On("SaveUser", testCtx, mock.MatchedBy(func(u models.User) bool {
			return u.Email == "new@example.com" &&
				u.Role == models.RoleAdmin &&
				bcrypt.CompareHashAndPassword(u.PasswordHash, []byte("hunter2hunter2")) == nil
		})).Return(newID, nil).Once()

		id, err := service.Register(testCtx, adminID, "new@example.com", "hunter2hunter2", models.RoleAdmin, "New Admin")

		require.NoError(t, err)
		assert.Equal(t, newID, id)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		service, repo, _ := newService()
		repo.On("SaveUser", testCtx, mock.Anything).
			Return(uuid.Nil, storage.ErrUserExists).Once()

		_, err := service.Register(testCtx, adminID, "dup@example.com", "hunter2hunter2", models.RoleClient, "")

		assert.ErrorIs(t, err, storage.ErrUserExists)
	})

	t.Run("invalid role rejected", func(t *testing.T) {
		service, repo, _ := newService()

		_, err := service.Register(testCtx, adminID, "x@example.com", "hunter2hunter2", models.Role("Superuser"), "")

		assert.ErrorIs(t, err, ErrInvalidRole)
		repo.AssertNotCalled(t, "SaveUser", mock.Anything, mock.Anything)
	})

	t.Run("non-admin gated", func(t *testing.T) {
		service, repo, _ := newService()

		_, err := service.Register(testCtx, clientID, "x@example.com", "hunter2hunter2", models.RoleClient, "")

		assert.ErrorIs(t, err, access.ErrAccessDenied)
		repo.AssertNotCalled(t, "SaveUser", mock.Anything, mock.Anything)
	})
}

func TestUserService_RegisterClient(t *testing.T) {
	service, repo, _ := newService()
	newID := uuid.New()

	repo.On("SaveUser", testCtx, mock.MatchedBy(func(u models.User) bool {
		return u.Role == models.RoleClient && u.AccessCode == "CODE1234"
	})).Return(newID, nil).Once()

	id, err := service.RegisterClient(testCtx, adminID, "client@example.com", "hunter2hunter2", "CODE1234", "Smith")

	require.NoError(t, err)
	assert.Equal(t, newID, id)
	repo.AssertExpectations(t)
}

func TestUserService_DeleteUser(t *testing.T) {
	userID := uuid.New()

	t.Run("success revokes sessions", func(t *testing.T) {
		service, repo, revoker := newService()
		repo.On("DeleteUser", testCtx, userID).Return(nil).Once()
		revoker.On("RevokeUser", testCtx, userID).Return(nil).Once()

		err := service.DeleteUser(testCtx, adminID, userID)

		require.NoError(t, err)
		revoker.AssertExpectations(t)
	})

	t.Run("missing user skips revocation", func(t *testing.T) {
		service, repo, revoker := newService()
		repo.On("DeleteUser", testCtx, userID).Return(storage.ErrUserNotFound).Once()

		err := service.DeleteUser(testCtx, adminID, userID)

		assert.ErrorIs(t, err, storage.ErrUserNotFound)
		revoker.AssertNotCalled(t, "RevokeUser", mock.Anything, mock.Anything)
	})

	t.Run("non-admin gated", func(t *testing.T) {
		service, repo, _ := newService()

		err := service.DeleteUser(testCtx, clientID, userID)

		assert.ErrorIs(t, err, access.ErrAccessDenied)
		repo.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
	})
}

func TestUserService_ListUsers_Gated(t *testing.T) {
	service, repo, _ := newService()

	repo.On("ListUsers", testCtx).
		Return([]models.User{{ID: uuid.New()}}, nil).Once()

	_, err := service.ListUsers(testCtx, clientID)
	assert.ErrorIs(t, err, access.ErrAccessDenied)

	users, err := service.ListUsers(testCtx, adminID)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
