package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/meridianbank/admin-portal/internal/api/handler"
	"github.com/meridianbank/admin-portal/internal/api/middleware"
	"github.com/meridianbank/admin-portal/internal/core/domain"
	"github.com/meridianbank/admin-portal/internal/core/ports"
	"github.com/meridianbank/admin-portal/internal/core/service"
	"github.com/meridianbank/admin-portal/internal/infrastructure/crypto"
	mongodb "github.com/meridianbank/admin-portal/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil when sessions run on the in-memory store; it is only used by
// the readiness probe.
func NewRouter(db *mongo.Database, rdb *redis.Client, sessions ports.SessionStore, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("adminportal"))

	// --- Dependencies ---
	hasher := crypto.NewBcryptHasher(0)
	adminRepo := mongodb.NewAdminRepository(db)
	customerRepo := mongodb.NewCustomerRepository(db)

	authService := service.NewAuthService(adminRepo, customerRepo, sessions, hasher)
	adminService := service.NewAdminService(adminRepo, hasher)
	customerService := service.NewCustomerService(customerRepo, hasher)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(adminService)
	customerHandler := handler.NewCustomerHandler(customerService)
	dashboardHandler := handler.NewDashboardHandler(adminService, customerService)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Admin-only routes: authenticated first, then the role check ---
	admin := e.Group("/admin", middleware.Authenticated(sessions), middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/dashboard", dashboardHandler.Stats)
	admin.GET("/admins", adminHandler.List)
	admin.POST("/admins", adminHandler.Create)
	admin.PUT("/admins/:id", adminHandler.Update)
	admin.DELETE("/admins/:id", adminHandler.Delete)
	admin.GET("/customers", customerHandler.List)
	admin.POST("/customers", customerHandler.Create)
	admin.GET("/customers/:id", customerHandler.Get)
	admin.PUT("/customers/:id", customerHandler.Update)
	admin.DELETE("/customers/:id", customerHandler.Delete)

	// --- Customer routes ---
	me := e.Group("/me", middleware.Authenticated(sessions), middleware.RequireRole(domain.RoleCustomer))
	me.GET("", customerHandler.Me)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
