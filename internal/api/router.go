package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/opsdesk/backoffice/internal/api/handler"
	"github.com/opsdesk/backoffice/internal/api/middleware"
	"github.com/opsdesk/backoffice/internal/core/service"
	"github.com/opsdesk/backoffice/internal/core/token"
	"github.com/opsdesk/backoffice/internal/infrastructure/config"
	"github.com/opsdesk/backoffice/internal/infrastructure/db/postgres"
	rdsinfra "github.com/opsdesk/backoffice/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Middleware order matters: the shield runs before the gate, and both run
// before any handler.
func NewRouter(cfg *config.Config, db *gorm.DB, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	codec := token.NewCodec(cfg.JWTSecret, token.DefaultTTL)

	var limiter middleware.WindowLimiter
	if rdb != nil {
		limiter = rdsinfra.NewWindowCounter(rdb, cfg.Shield.Window())
	}
	e.Use(middleware.Shield(limiter, cfg.ShieldKey, cfg.Shield.MaxRequests, log))
	e.Use(middleware.Gate(codec))

	// --- Dependencies ---
	authRepo := postgres.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, codec, log)
	authHandler := handler.NewAuthHandler(authService, cfg.Production())

	employeeRepo := postgres.NewEmployeeRepository(db)
	employeeService := service.NewEmployeeService(employeeRepo, log)
	employeeHandler := handler.NewEmployeeHandler(employeeService)

	itemRepo := postgres.NewItemRepository(db)
	itemService := service.NewItemService(itemRepo, log)
	itemHandler := handler.NewItemHandler(itemService)

	// --- Public routes (gate allow-list) ---
	// The login/register pages themselves are served by the UI layer; these
	// placeholders keep the paths resolvable when the API runs standalone.
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"service": "backoffice"})
	})
	e.GET("/login", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"page": "login"})
	})
	e.GET("/register", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"page": "register"})
	})
	e.POST("/api/login", authHandler.Login)

	// --- Gated routes ---
	e.POST("/api/register", authHandler.Register)

	e.GET("/api/employee", employeeHandler.List)
	e.POST("/api/employee", employeeHandler.Create)
	e.PUT("/api/employee", employeeHandler.Update)
	e.DELETE("/api/employee", employeeHandler.Delete)

	e.GET("/api/item-master", itemHandler.List)
	e.POST("/api/item-master", itemHandler.Create)
	e.PUT("/api/item-master", itemHandler.Update)
	e.DELETE("/api/item-master", itemHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
