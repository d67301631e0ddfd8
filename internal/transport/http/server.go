package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/OneGuyCory/LPPhotography-Final/internal/domain/models"
	"github.com/OneGuyCory/LPPhotography-Final/internal/lib/logger/sl"
	"github.com/OneGuyCory/LPPhotography-Final/internal/services/access"
	contactsvc "github.com/OneGuyCory/LPPhotography-Final/internal/services/contact_service"
	gallerysvc "github.com/OneGuyCory/LPPhotography-Final/internal/services/gallery_service"
	photosvc "github.com/OneGuyCory/LPPhotography-Final/internal/services/photo_service"
	usersvc "github.com/OneGuyCory/LPPhotography-Final/internal/services/user_service"
	"github.com/OneGuyCory/LPPhotography-Final/internal/storage"
	"github.com/OneGuyCory/LPPhotography-Final/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	_ "github.com/OneGuyCory/LPPhotography-Final/docs"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session"

const sessionTokenKey = "token"

// IdentityContextKey is where the identity middleware parks the resolved
// caller on the Echo context.
const IdentityContextKey = "identity"

type GalleryService interface {
	ListPublic(ctx context.Context) ([]models.Gallery, error)
	ListAll(ctx context.Context, identity access.Identity) ([]models.Gallery, error)
	Get(ctx context.Context, id uuid.UUID, presentedCode string) (models.Gallery, error)
	GetClientGallery(ctx context.Context, identity access.Identity) (models.Gallery, error)
	Create(ctx context.Context, identity access.Identity, req dto.CreateGalleryRequest) (models.Gallery, error)
	Delete(ctx context.Context, identity access.Identity, id uuid.UUID) error
	SetCoverImage(ctx context.Context, identity access.Identity, galleryID uuid.UUID, photoURL string) error
}

type PhotoService interface {
	PhotosForGallery(ctx context.Context, galleryID uuid.UUID) ([]models.Photo, error)
	Featured(ctx context.Context) ([]models.Photo, error)
	Get(ctx context.Context, id uuid.UUID) (models.Photo, error)
	Create(ctx context.Context, identity access.Identity, req dto.CreatePhotoRequest) (models.Photo, error)
	Update(ctx context.Context, identity access.Identity, id uuid.UUID, req dto.UpdatePhotoRequest) error
	Delete(ctx context.Context, identity access.Identity, id uuid.UUID) error
}

type UserService interface {
	Register(ctx context.Context, identity access.Identity, email, password string, role models.Role, displayName string) (uuid.UUID, error)
	RegisterClient(ctx context.Context, identity access.Identity, email, password, accessCode, displayName string) (uuid.UUID, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	LoginClient(ctx context.Context, email, accessCode string) (models.User, error)
	ListUsers(ctx context.Context, identity access.Identity) ([]models.User, error)
	DeleteUser(ctx context.Context, identity access.Identity, id uuid.UUID) error
}

type TokenService interface {
	NewSessionToken(user models.User) (string, error)
	VerifySessionToken(ctx context.Context, token string) (access.Identity, error)
	TTL() time.Duration
}

type ContactService interface {
	Send(ctx context.Context, req dto.ContactMessageRequest) error
}

type Routers struct {
	log            *slog.Logger
	GalleryService GalleryService
	PhotoService   PhotoService
	UserService    UserService
	TokenService   TokenService
	ContactService ContactService
}

func NewRouter(
	log *slog.Logger,
	galleryService GalleryService,
	photoService PhotoService,
	userService UserService,
	tokenService TokenService,
	contactService ContactService,
) *Routers {
	return &Routers{
		log:            log,
		GalleryService: galleryService,
		PhotoService:   photoService,
		UserService:    userService,
		TokenService:   tokenService,
		ContactService: contactService,
	}
}

// IdentityFromContext returns the caller resolved by the identity
// middleware, or the anonymous identity when none was set.
func IdentityFromContext(c echo.Context) access.Identity {
	if identity, ok := c.Get(IdentityContextKey).(access.Identity); ok {
		return identity
	}
	return access.Anonymous()
}

// respondError maps the service error taxonomy onto HTTP statuses.
func (r *Routers) respondError(c echo.Context, op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrGalleryNotFound):
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "gallery not found"})
	case errors.Is(err, storage.ErrPhotoNotFound):
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "photo not found"})
	case errors.Is(err, storage.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "user not found"})
	case errors.Is(err, access.ErrAuthRequired):
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
	case errors.Is(err, access.ErrInvalidAccessCode):
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid access code"})
	case errors.Is(err, usersvc.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid credentials"})
	case errors.Is(err, access.ErrAccessDenied):
		return c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "access denied"})
	case errors.Is(err, storage.ErrUserExists):
		return c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "user already exists"})
	case errors.Is(err, gallerysvc.ErrCategoryRequired):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "category is required"})
	case errors.Is(err, photosvc.ErrPhotoIDMismatch):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "photo id mismatch"})
	case errors.Is(err, storage.ErrPhotoNotInGallery):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "cover image must belong to the gallery"})
	case errors.Is(err, usersvc.ErrInvalidRole):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid role"})
	case errors.Is(err, contactsvc.ErrMailDelivery):
		return c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "message saved but could not be delivered"})
	default:
		r.log.Error("unhandled error", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

// ListPublicGalleries godoc
// @Summary List public galleries
// @Description Returns all public galleries, newest first. Access codes are never included.
// @Tags galleries
// @Produce json
// @Success 200 {array} dto.GalleryResponse
// @Router /api/galleries [get]
func (r *Routers) ListPublicGalleries(c echo.Context) error {
	const op = "http.routers.ListPublicGalleries"

	galleries, err := r.GalleryService.ListPublic(c.Request().Context())
	if err != nil {
		return r.respondError(c, op, err)
	}

	return c.JSON(http.StatusOK, dto.ToPublicGalleryResponses(galleries))
}

// ListAllGalleries godoc
// @Summary List every gallery
// @Description Admin view of all galleries, private ones and their access codes included.
// @Tags galleries
// @Produce json
// @Success 200 {array} dto.GalleryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/galleries/all [get]
func (r *Routers) ListAllGalleries(c echo.Context) error {
	const op = "http.routers.ListAllGalleries"

	galleries, err := r.GalleryService.ListAll(c.Request().Context(), IdentityFromContext(c))
	if err != nil {
		return r.respondError(c, op, err)
	}

	return c.JSON(http.StatusOK, dto.ToGalleryResponses(galleries))
}

// GetClientGallery godoc
// @Summary Get the logged-in client's gallery
// @Description Returns the private gallery assigned to the client, matched by the session email.
// @Tags galleries
// @Produce json
// @Success 200 {object} dto.GalleryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/galleries/client [get]
func (r *Routers) GetClientGallery(c echo.Context) error {
	const op = "http.routers.GetClientGallery"

	gallery, err := r.GalleryService.GetClientGallery(c.Request().Context(), IdentityFromContext(c))
	if err != nil {
		return r.respondError(c, op, err)
	}

	return c.JSON(http.StatusOK, dto.ToPublicGalleryResponse(gallery))
}

// GetGallery godoc
// @Summary Get a gallery by id
// @Description Private galleries require the matching accessCode query parameter.
// @Tags galleries
// @Produce json
// @Param id path string true "gallery id" format(uuid)
// @Param accessCode query string false "access code for private galleries"
// @Success 200 {object} dto.GalleryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/galleries/{id} [get]
func (r *Routers) GetGallery(c echo.Context) error {
	const op = "http.routers.GetGallery"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid gallery id format"})
	}

	gallery, err := r.GalleryService.Get(c.Request().Context(), id, c.QueryParam("accessCode"))
	if err != nil {
		return r.respondError(c, op, err)
	}

	return c.JSON(http.StatusOK, dto.ToPublicGalleryResponse(gallery))
}

// GetGalleryPhotos godoc
// @Summary List a gallery's photos
// @Description Same access rules as reading the gallery itself.
// @Tags galleries
// @Produce json
// @Param id path string true "gallery id" format(uuid)
// @Param accessCode query string false "access code for private galleries"
// @Success 200 {array} dto.PhotoResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/galleries/{id}/photos [get]
func (r *Routers) GetGalleryPhotos(c echo.Context) error {
	const op = "http.routers.GetGalleryPhotos"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid gallery id format"})
	}

	if _, err := r.GalleryService.Get(c.Request().Context(), id, c.QueryParam("accessCode")); err != nil {
		return r.respondError(c, op, err)
	}

	photos, err := r.PhotoService.PhotosForGallery(c.Request().Context(), id)
	if err != nil {
		return r.respondError(c, op, err)
	}

	return c.JSON(http.StatusOK, dto.ToPhotoResponses(photos))
}

// CreateGallery godoc
// @Summary Create a gallery
// @Description Creates a gallery. A private gallery with a client email also provisions that client's access code.
// @Tags galleries
// @Accept json
// @Produce json
// @Param request body dto.CreateGalleryRequest true "gallery"
// @Success 201 {object} dto.GalleryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/galleries [post]
func (r *Routers) CreateGallery(c echo.Context) error {
	const op = "http.routers.CreateGallery"

	var req dto.CreateGalleryRequest
	if err := c.Bind(&req); err != nil {
		r.log.Warn("failed to bind request", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request format"})
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	gallery, err := r.GalleryService.Create(c.Request().Context(), IdentityFromContext(c), req)
	if err != nil {
		return r.respondError(c, op, err)
	}

	return c.JSON(http.StatusCreated, dto.ToGalleryResponse(gallery))
}

// DeleteGallery godoc
// @Summary Delete a gallery
// @Description Deletes the gallery and all of its photos.
// @Tags galleries
// @Param id path string true "gallery id" format(uuid)
// @Success 204
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/galleries/{id} [delete]
func (r *Routers) DeleteGallery(c echo.Context) error {
	const op = "http.routers.DeleteGallery"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid gallery id format"})
	}

	if err := r.GalleryService.Delete(c.Request().Context(), IdentityFromContext(c), id); err != nil {
		return r.respondError(c, op, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SetCoverImage godoc
// @Summary Set a gallery's cover image
// @Description The URL must belong to one of the gallery's own photos.
// @Tags galleries
// @Accept json
// @Param id path string true "gallery id" format(uuid)
// @Param request body dto.SetCoverImageRequest true "cover image"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/galleries/{id}/cover [put]
func (r *Routers) SetCoverImage(c echo.Context) error {
	const op = "http.routers.SetCoverImage"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid gallery id format"})
	}

	var req dto.SetCoverImageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request format"})
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	if err := r.GalleryService.SetCoverImage(c.Request().Context(), IdentityFromContext(c), id, req.CoverImageURL); err != nil {
		return r.respondError(c, op, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetFeaturedPhotos godoc
// @Summary List featured photos
// @Tags photos
// @Produce json
// @Success 200 {array} dto.PhotoResponse
// @Router /api/photos/featured [get]
func (r *Routers) GetFeaturedPhotos(c echo.Context) error {
	const op = "http.routers.GetFeaturedPhotos"

	photos, err := r.PhotoService.Featured(c.Request().Context())
	if err != nil {
		return r.respondError(c, op, err)
	}

	return c.JSON(http.StatusOK, dto.ToPhotoResponses(photos))
}

// GetPhoto godoc
// @Summary Get a photo by id
// @Tags photos
// @Produce json
// @Param id path string true "photo id" format(uuid)
// @Success 200 {object} dto.PhotoResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/photos/{id} [get]
func (r *Routers) GetPhoto(c echo.Context) error {
	const op = "http.routers.GetPhoto"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid photo id format"})
	}

	photo, err := r.PhotoService.Get(c.Request().Context(), id)
	if err != nil {
		return r.respondError(c, op, err)
	}

	return c.JSON(http.StatusOK, dto.ToPhotoResponse(photo))
}

// CreatePhoto godoc
// @Summary Add a photo to a gallery
// @Description The photo URL points at already-hosted media; the gallery must exist.
// @Tags photos
// @Accept json
// @Produce json
// @Param request body dto.CreatePhotoRequest true "photo"
// @Success 201 {object} dto.PhotoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/photos [post]
func (r *Routers) CreatePhoto(c echo.Context) error {
	const op = "http.routers.CreatePhoto"

	var req dto.CreatePhotoRequest
	if err := c.Bind(&req); err != nil {
		r.log.Warn("failed to bind request", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request format"})
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	photo, err := r.PhotoService.Create(c.Request().Context(), IdentityFromContext(c), req)
	if err != nil {
		if errors.Is(err, storage.ErrGalleryNotFound) {
			// A bad gallery reference on create is caller error, not a
			// missing resource.
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid gallery reference"})
		}
		return r.respondError(c, op, err)
	}

	return c.JSON(http.StatusCreated, dto.ToPhotoResponse(photo))
}

// UpdatePhoto godoc
// @Summary Update a photo
// @Description Overwrites url, caption, gallery and featured flag. The path id must match the body id.
// @Tags photos
// @Accept json
// @Param id path string true "photo id" format(uuid)
// @Param request body dto.UpdatePhotoRequest true "photo"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/photos/{id} [put]
func (r *Routers) UpdatePhoto(c echo.Context) error {
	const op = "http.routers.UpdatePhoto"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid photo id format"})
	}

	var req dto.UpdatePhotoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request format"})
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	if err := r.PhotoService.Update(c.Request().Context(), IdentityFromContext(c), id, req); err != nil {
		if errors.Is(err, storage.ErrGalleryNotFound) {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid gallery reference"})
		}
		return r.respondError(c, op, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeletePhoto godoc
// @Summary Delete a photo
// @Tags photos
// @Param id path string true "photo id" format(uuid)
// @Success 204
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/photos/{id} [delete]
func (r *Routers) DeletePhoto(c echo.Context) error {
	const op = "http.routers.DeletePhoto"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid photo id format"})
	}

	if err := r.PhotoService.Delete(c.Request().Context(), IdentityFromContext(c), id); err != nil {
		return r.respondError(c, op, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Login godoc
// @Summary Log in with email and password
// @Description Establishes a session cookie. The response never reveals whether the email exists.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/users/login [post]
func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request format"})
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	user, err := r.UserService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return r.respondError(c, op, err)
	}

	if err := r.establishSession(c, user); err != nil {
		return r.respondError(c, op, err)
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Role:    string(user.Role),
	})
}

// LoginClient godoc
// @Summary Log in with email and access code
// @Description Client login using the gallery access code instead of a password.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.ClientLoginRequest true "credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/users/login-client [post]
func (r *Routers) LoginClient(c echo.Context) error {
	const op = "http.routers.LoginClient"

	var req dto.ClientLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request format"})
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	user, err := r.UserService.LoginClient(c.Request().Context(), req.Email, req.AccessCode)
	if err != nil {
		return r.respondError(c, op, err)
	}

	if err := r.establishSession(c, user); err != nil {
		return r.respondError(c, op, err)
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Role:    string(user.Role),
	})
}

// Logout godoc
// @Summary Log out
// @Description Clears the session cookie. Succeeds whether or not a session exists.
// @Tags users
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /api/users/logout [post]
func (r *Routers) Logout(c echo.Context) error {
	sess, _ := session.Get(SessionCookieName, c)
	if sess != nil {
		sess.Options.MaxAge = -1
		delete(sess.Values, sessionTokenKey)
		_ = sess.Save(c.Request(), c.Response())
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// Register godoc
// @Summary Register a user
// @Description Creates an Admin or Client account with a hashed password. Admin only.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.RegisterUserRequest true "account"
// @Success 201 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/users/register [post]
func (r *Routers) Register(c echo.Context) error {
	const op = "http.routers.Register"

	var req dto.RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request format"})
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	id, err := r.UserService.Register(c.Request().Context(), IdentityFromContext(c),
		req.Email, req.Password, models.Role(req.Role), req.DisplayName)
	if err != nil {
		return r.respondError(c, op, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": id.String()})
}

// RegisterClient godoc
// @Summary Register a client account
// @Description Creates a Client with both a password and a gallery access code. Admin only.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.RegisterClientRequest true "account"
// @Success 201 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/users/register-client [post]
func (r *Routers) RegisterClient(c echo.Context) error {
	const op = "http.routers.RegisterClient"

	var req dto.RegisterClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request format"})
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	id, err := r.UserService.RegisterClient(c.Request().Context(), IdentityFromContext(c),
		req.Email, req.Password, req.AccessCode, req.DisplayName)
	if err != nil {
		return r.respondError(c, op, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": id.String()})
}

// ListUsers godoc
// @Summary List accounts
// @Description Admin directory of accounts. Hashes and access codes are never included.
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/users/all [get]
func (r *Routers) ListUsers(c echo.Context) error {
	const op = "http.routers.ListUsers"

	users, err := r.UserService.ListUsers(c.Request().Context(), IdentityFromContext(c))
	if err != nil {
		return r.respondError(c, op, err)
	}

	return c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// DeleteUser godoc
// @Summary Delete an account
// @Description Removes the account and revokes its live sessions.
// @Tags users
// @Param id path string true "user id" format(uuid)
// @Success 204
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/users/{id} [delete]
func (r *Routers) DeleteUser(c echo.Context) error {
	const op = "http.routers.DeleteUser"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id format"})
	}

	if err := r.UserService.DeleteUser(c.Request().Context(), IdentityFromContext(c), id); err != nil {
		return r.respondError(c, op, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ContactMessage godoc
// @Summary Submit a contact inquiry
// @Description Stores the message and relays it to the site owner over SMTP.
// @Tags contact
// @Accept json
// @Produce json
// @Param request body dto.ContactMessageRequest true "message"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/contact-message [post]
func (r *Routers) ContactMessage(c echo.Context) error {
	const op = "http.routers.ContactMessage"

	var req dto.ContactMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request format"})
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	if err := r.ContactService.Send(c.Request().Context(), req); err != nil {
		return r.respondError(c, op, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Message sent"})
}

// establishSession mints a session token for the user and writes it into
// the HTTP-only session cookie.
func (r *Routers) establishSession(c echo.Context, user models.User) error {
	token, err := r.TokenService.NewSessionToken(user)
	if err != nil {
		return err
	}

	sess, err := session.Get(SessionCookieName, c)
	if err != nil {
		return err
	}

	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(r.TokenService.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	sess.Values[sessionTokenKey] = token

	return sess.Save(c.Request(), c.Response())
}

// SessionToken pulls the raw session token out of the cookie, if any.
func SessionToken(c echo.Context) (string, bool) {
	sess, err := session.Get(SessionCookieName, c)
	if err != nil || sess == nil {
		return "", false
	}

	token, ok := sess.Values[sessionTokenKey].(string)
	return token, ok && token != ""
}
