package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/OneGuyCory/LPPhotography-Final/internal/middleware"
	"github.com/OneGuyCory/LPPhotography-Final/internal/services/access"
	httprouters "github.com/OneGuyCory/LPPhotography-Final/internal/transport/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Server struct {
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	host    string
	port    string
}

func New(log *slog.Logger, sessionSecret, host, port string, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Validator = &CustomValidator{validator: validator.New()}

	e.Use(session.Middleware(sessions.NewCookieStore([]byte(sessionSecret))))
	e.Use(echomw.CORS())
	e.Use(echomw.Recover())
	e.Use(middleware.PrometheusMetrics)

	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	return &Server{
		log:     log,
		e:       e,
		routers: routers,
		host:    host,
		port:    port,
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("addr", fmt.Sprintf("%s:%s", s.host, s.port)))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf(":%s", s.port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", op, "http server")

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

// identityMiddleware resolves the session cookie into an explicit
// identity on the request context. Missing or bad tokens leave the
// caller anonymous; the per-route gates decide what that means.
func (s *Server) identityMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := access.Anonymous()

		if token, ok := httprouters.SessionToken(c); ok {
			resolved, err := s.routers.TokenService.VerifySessionToken(c.Request().Context(), token)
			if err == nil {
				identity = resolved
			}
		}

		c.Set(httprouters.IdentityContextKey, identity)

		return next(c)
	}
}

func (s *Server) adminOnlyMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := access.AuthorizeAdmin(httprouters.IdentityFromContext(c)); err != nil {
			if err == access.ErrAuthRequired {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "admin access required"})
		}

		return next(c)
	}
}

func (s *Server) clientOnlyMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := access.AuthorizeClient(httprouters.IdentityFromContext(c)); err != nil {
			if err == access.ErrAuthRequired {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "client access required"})
		}

		return next(c)
	}
}

func (s *Server) BuildRouters() {
	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	swagger := s.e.Group("/swag")
	{
		swagger.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := s.e.Group("/api", s.identityMiddleware)
	{
		galleryGroup := api.Group("/galleries")
		{
			galleryGroup.GET("", s.routers.ListPublicGalleries)
			galleryGroup.GET("/all", s.routers.ListAllGalleries, s.adminOnlyMiddleware)
			galleryGroup.GET("/client", s.routers.GetClientGallery, s.clientOnlyMiddleware)
			galleryGroup.GET("/:id", s.routers.GetGallery)
			galleryGroup.GET("/:id/photos", s.routers.GetGalleryPhotos)
			galleryGroup.POST("", s.routers.CreateGallery, s.adminOnlyMiddleware)
			galleryGroup.DELETE("/:id", s.routers.DeleteGallery, s.adminOnlyMiddleware)
			galleryGroup.PUT("/:id/cover", s.routers.SetCoverImage, s.adminOnlyMiddleware)
		}

		photoGroup := api.Group("/photos")
		{
			photoGroup.GET("/featured", s.routers.GetFeaturedPhotos)
			photoGroup.GET("/:id", s.routers.GetPhoto)
			photoGroup.POST("", s.routers.CreatePhoto, s.adminOnlyMiddleware)
			photoGroup.PUT("/:id", s.routers.UpdatePhoto, s.adminOnlyMiddleware)
			photoGroup.DELETE("/:id", s.routers.DeletePhoto, s.adminOnlyMiddleware)
		}

		userGroup := api.Group("/users")
		{
			userGroup.POST("/login", s.routers.Login)
			userGroup.POST("/login-client", s.routers.LoginClient)
			userGroup.POST("/logout", s.routers.Logout)
			userGroup.POST("/register", s.routers.Register, s.adminOnlyMiddleware)
			userGroup.POST("/register-client", s.routers.RegisterClient, s.adminOnlyMiddleware)
			userGroup.GET("/all", s.routers.ListUsers, s.adminOnlyMiddleware)
			userGroup.DELETE("/:id", s.routers.DeleteUser, s.adminOnlyMiddleware)
		}

		api.POST("/contact-message", s.routers.ContactMessage)
	}
}
