package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/cornerstone/chores-api/docs"
	"github.com/cornerstone/chores-api/internal/api/handler"
	"github.com/cornerstone/chores-api/internal/api/middleware"
	"github.com/cornerstone/chores-api/internal/core/domain"
	"github.com/cornerstone/chores-api/internal/core/ports"
	"github.com/cornerstone/chores-api/internal/core/service"
	"github.com/cornerstone/chores-api/internal/infrastructure/config"
	mongodb "github.com/cornerstone/chores-api/internal/infrastructure/db/mongo"
	redisdb "github.com/cornerstone/chores-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Only signup, login, health probes, metrics, and swagger are public; every
// other route sits behind the auth filter.
func NewRouter(db *mongo.Database, rdb *redis.Client, dispatcher ports.ActivityDispatcher, activityService ports.ActivityService, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("chores"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	childRepo := mongodb.NewChildRepository(db)
	choreRepo := mongodb.NewChoreRepository(db)

	limiter := redisdb.NewLoginThrottle(rdb)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, limiter, log)
	choreService := service.NewChoreService(choreRepo, childRepo, dispatcher, log)
	childService := service.NewChildService(childRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService, tokenService, cfg.SeedFile)
	choreHandler := handler.NewChoreHandler(choreService)
	childHandler := handler.NewChildHandler(childService)
	activityHandler := handler.NewActivityHandler(activityService)

	authenticated := middleware.Auth(tokenService, userRepo, log)
	parentsOnly := middleware.RequireRole(domain.RoleParent)

	// --- Public routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Protected routes ---
	auth := e.Group("/auth", authenticated)
	auth.GET("/me", authHandler.Me)
	auth.GET("/users", authHandler.Users)
	auth.GET("/user/:id", authHandler.UserByID)
	auth.POST("/setup/load-users", authHandler.LoadUsers, parentsOnly)

	// Chore and child routes are not role-gated here: the services return
	// the specific forbidden reason for the operation, which a generic
	// middleware rejection would flatten.
	v1 := e.Group("/v1", authenticated)
	v1.POST("/chores", choreHandler.Create)
	v1.PATCH("/chores/:id/status", choreHandler.UpdateStatus)
	v1.GET("/chores/mine", choreHandler.ListMine)
	v1.POST("/children", childHandler.Register)
	v1.GET("/activity", activityHandler.List, parentsOnly)

	return e
}
