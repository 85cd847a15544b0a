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

	"github.com/moneypad/expense-tracker/internal/api/handler"
	"github.com/moneypad/expense-tracker/internal/api/middleware"
	"github.com/moneypad/expense-tracker/internal/core/service"
	mongodb "github.com/moneypad/expense-tracker/internal/infrastructure/db/mongo"
	redisdb "github.com/moneypad/expense-tracker/internal/infrastructure/db/redis"
)

// Options carries the runtime settings the router needs beyond its stores.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("expense_tracker"))

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, opts.JWTSecret, opts.TokenTTL)
	authHandler := handler.NewAuthHandler(authService)

	ledgerRepo := mongodb.NewLedgerRepository(db)
	summaryCache := redisdb.NewSummaryCache(rdb)
	ledgerService := service.NewLedgerService(ledgerRepo, summaryCache, opts.Logger)
	txHandler := handler.NewTransactionHandler(ledgerService)

	authMiddleware := middleware.Auth(opts.JWTSecret)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)

	// --- Ledger routes (bearer token required) ---
	tx := e.Group("/api/transactions", authMiddleware)
	tx.POST("", txHandler.Add)
	tx.GET("", txHandler.List)
	tx.GET("/summary", txHandler.Summary)
	tx.DELETE("", txHandler.Reset)
	tx.DELETE("/:id", txHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
