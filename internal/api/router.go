package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/sweetshop/inventory-api/docs"
	"github.com/sweetshop/inventory-api/internal/api/handler"
	"github.com/sweetshop/inventory-api/internal/api/middleware"
	"github.com/sweetshop/inventory-api/internal/core/domain"
	"github.com/sweetshop/inventory-api/internal/core/service"
	"github.com/sweetshop/inventory-api/internal/infrastructure/config"
	mongostore "github.com/sweetshop/inventory-api/internal/infrastructure/db/mongo"
	redisstore "github.com/sweetshop/inventory-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("sweetshop"))

	// --- Dependencies ---
	authRepo := mongostore.NewAuthRepository(db)
	throttle := redisstore.NewLoginThrottle(rdb)
	authService := service.NewAuthService(authRepo, throttle, cfg.JWTSecret, 24*time.Hour, cfg.BcryptCost)
	authHandler := handler.NewAuthHandler(authService)

	sweetRepo := mongostore.NewSweetRepository(db)
	sweetService := service.NewSweetService(sweetRepo, log)
	sweetHandler := handler.NewSweetHandler(sweetService)

	authenticated := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- Sweets routes ---
	sweets := e.Group("/api/sweets")
	sweets.GET("", sweetHandler.List)
	sweets.GET("/search", sweetHandler.Search)
	sweets.POST("", sweetHandler.Create, authenticated)
	sweets.PUT("/:id", sweetHandler.Update, authenticated)
	sweets.POST("/:id/purchase", sweetHandler.Purchase, authenticated)
	sweets.DELETE("/:id", sweetHandler.Delete, authenticated, adminOnly)
	sweets.POST("/:id/restock", sweetHandler.Restock, authenticated, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
