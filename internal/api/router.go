package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gatehouse/gatehouse/internal/api/handler"
	"github.com/gatehouse/gatehouse/internal/api/middleware"
	"github.com/gatehouse/gatehouse/internal/core/ports"
	"github.com/gatehouse/gatehouse/internal/core/service"
	mongodb "github.com/gatehouse/gatehouse/internal/infrastructure/db/mongo"
	redisdb "github.com/gatehouse/gatehouse/internal/infrastructure/db/redis"
	"github.com/gatehouse/gatehouse/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("gatehouse"))

	// --- Dependencies ---
	users := mongodb.NewUserRepository(db)
	sessions := redisdb.NewSessionStore(rdb)

	Mount(e, users, sessions, cfg, log)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// Mount registers the auth flow and the protected pages on e against the
// given stores. Split out from NewRouter so the full request pipeline can be
// exercised without Mongo or Redis behind it.
func Mount(e *echo.Echo, users ports.UserRepository, sessions ports.SessionStore, cfg *config.Config, log zerolog.Logger) {
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	authService := service.NewAuthService(users, sessions, cfg.SessionTTL)
	authHandler := handler.NewAuthHandler(authService, cfg.SessionSecret, cfg.SessionTTL)
	pagesHandler := handler.NewPagesHandler(log)

	loadSession := middleware.LoadSession(sessions, cfg.SessionSecret)
	requireAuth := middleware.RequireAuth()
	requireAdmin := middleware.RequireAdmin()

	// --- Public forms (static view delivery) ---
	e.File("/register", cfg.WebDir+"/register.html")
	e.File("/login", cfg.WebDir+"/login.html")

	// --- Auth flow ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)

	// --- Protected pages; RequireAuth must precede RequireAdmin ---
	e.GET("/dashboard", pagesHandler.Dashboard, loadSession, requireAuth)
	e.GET("/admin", pagesHandler.Admin, loadSession, requireAuth, requireAdmin)
}
