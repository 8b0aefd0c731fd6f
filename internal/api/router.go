package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/staffdesk/employee-api/docs"
	"github.com/staffdesk/employee-api/internal/api/handler"
	"github.com/staffdesk/employee-api/internal/api/middleware"
	"github.com/staffdesk/employee-api/internal/core/domain"
	"github.com/staffdesk/employee-api/internal/core/service"
	"github.com/staffdesk/employee-api/internal/infrastructure/config"
	mysqldb "github.com/staffdesk/employee-api/internal/infrastructure/db/mysql"
	redisdb "github.com/staffdesk/employee-api/internal/infrastructure/db/redis"
)

// Rate limiter window: 100 requests per 15 minutes per client address.
const (
	rateLimitRequests = 100
	rateLimitWindow   = 15 * time.Minute
)

// NewRouter builds and returns the Echo instance with all routes registered.
// When cfg.AuthEnabled is false the CRUD surface is open; when true, session
// middleware runs on every request and the guarded routes enforce
// authentication and exact-match roles.
func NewRouter(db *sql.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.BodyLimit("1M"))
	e.Use(echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(rateLimitRequests) / rateLimitWindow.Seconds()),
			Burst:     rateLimitRequests,
			ExpiresIn: rateLimitWindow,
		}),
	}))
	e.Use(echoprometheus.NewMiddleware("employee_api"))

	// --- Dependencies ---
	employeeRepo := mysqldb.NewEmployeeRepository(db, cfg.Database.AcquireTimeout)
	sessionStore := redisdb.NewSessionStore(rdb, cfg.SessionSecret, cfg.Session.TTL)
	employeeService := service.NewEmployeeService(employeeRepo, log)
	authService := service.NewAuthService(employeeRepo, sessionStore, log)

	employeeHandler := handler.NewEmployeeHandler(employeeService, cfg.AuthEnabled)
	authHandler := handler.NewAuthHandler(authService, cfg.Session.TTL, cfg.Production())

	// --- Auth routes (guarded variant only) ---
	if cfg.AuthEnabled {
		e.Use(middleware.LoadSession(authService))

		e.POST("/login", authHandler.Login)
		e.POST("/logout", authHandler.Logout, middleware.RequireAuthenticated(false))
		e.GET("/protected", authHandler.Protected, middleware.RequireAuthenticated(true))
		e.POST("/reset-password", authHandler.ResetPassword, middleware.RequireRole(domain.RoleAdmin))
	}

	// --- Employee CRUD ---
	if cfg.AuthEnabled {
		e.GET("/employees", employeeHandler.List, middleware.RequireRole(domain.RoleAdmin))
	} else {
		e.GET("/employees", employeeHandler.List)
	}
	e.GET("/employees/:id", employeeHandler.Get) // self/admin/manager check in handler
	e.POST("/employees", employeeHandler.Create)
	e.PUT("/employees/:id", employeeHandler.Update)
	e.DELETE("/employees/:id", employeeHandler.Delete)

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
