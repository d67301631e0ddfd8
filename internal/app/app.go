package app

import (
	"context"
	"errors"
	"log/slog"

	httpapp "github.com/OneGuyCory/LPPhotography-Final/internal/app/http"
	"github.com/OneGuyCory/LPPhotography-Final/internal/config"
	"github.com/OneGuyCory/LPPhotography-Final/internal/domain/models"
	"github.com/OneGuyCory/LPPhotography-Final/internal/lib/logger/sl"
	"github.com/OneGuyCory/LPPhotography-Final/internal/lib/mailer"
	"github.com/OneGuyCory/LPPhotography-Final/internal/repository"
	contactsvc "github.com/OneGuyCory/LPPhotography-Final/internal/services/contact_service"
	gallerysvc "github.com/OneGuyCory/LPPhotography-Final/internal/services/gallery_service"
	photosvc "github.com/OneGuyCory/LPPhotography-Final/internal/services/photo_service"
	tokensvc "github.com/OneGuyCory/LPPhotography-Final/internal/services/token_service"
	usersvc "github.com/OneGuyCory/LPPhotography-Final/internal/services/user_service"
	"github.com/OneGuyCory/LPPhotography-Final/internal/storage"
	"github.com/OneGuyCory/LPPhotography-Final/internal/storage/postgresql"
	redisapp "github.com/OneGuyCory/LPPhotography-Final/internal/storage/redis"
	httprouters "github.com/OneGuyCory/LPPhotography-Final/internal/transport/http"

	"golang.org/x/crypto/bcrypt"
)

type App struct {
	HTTPServer *httpapp.Server

	log     *slog.Logger
	storage *postgresql.Storage
	redis   *redisapp.Client
}

// New wires the whole service together: store, cache, services,
// transport. Initialization failures are fatal.
func New(log *slog.Logger, cfg *config.Config) *App {
	ctx := context.Background()

	store, err := postgresql.New(ctx, cfg.DSN)
	if err != nil {
		panic(err)
	}

	if err := store.Migrate(ctx); err != nil {
		panic(err)
	}

	rdb := redisapp.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := rdb.HealthCheck(ctx); err != nil {
		log.Warn("redis unavailable at startup", sl.Err(err))
	}

	repo := repository.NewRepository(store.Pool())
	revocations := repository.NewRevocationRepository(rdb)

	if err := seedAdmin(ctx, log, repo.User, cfg.Admin); err != nil {
		panic(err)
	}

	tokenService := tokensvc.NewTokenService(cfg.Session.Secret, cfg.TokenTTL, revocations)
	galleryService := gallerysvc.NewGalleryService(log, repo.Gallery, repo.User)
	photoService := photosvc.NewPhotoService(log, repo.Photo, repo.Gallery)
	userService := usersvc.NewUserService(log, repo.User, tokenService)
	contactService := contactsvc.NewContactService(log, repo.Contact, mailer.NewSMTPMailer(cfg.SMTP))

	routers := httprouters.NewRouter(log, galleryService, photoService, userService, tokenService, contactService)

	server := httpapp.New(log, cfg.Session.Secret, cfg.HTTP.Host, cfg.HTTP.Port, routers)

	return &App{
		HTTPServer: server,
		log:        log,
		storage:    store,
		redis:      rdb,
	}
}

func (a *App) Stop() {
	if err := a.HTTPServer.Stop(); err != nil {
		a.log.Error("failed to stop http server", sl.Err(err))
	}

	a.storage.Stop()

	if err := a.redis.Close(); err != nil {
		a.log.Error("failed to close redis client", sl.Err(err))
	}
}

// seedAdmin creates the initial admin account on first start. Nothing
// happens when the account already exists or no admin is configured.
func seedAdmin(ctx context.Context, log *slog.Logger, users repository.UserRepository, cfg config.AdminConfig) error {
	if cfg.Email == "" || cfg.Password == "" {
		return nil
	}

	_, err := users.UserByEmail(ctx, cfg.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		return err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if _, err := users.SaveUser(ctx, models.User{
		Email:        cfg.Email,
		PasswordHash: passHash,
		Role:         models.RoleAdmin,
		DisplayName:  "Administrator",
	}); err != nil {
		return err
	}

	log.Info("admin account seeded", slog.String("email", cfg.Email))

	return nil
}
