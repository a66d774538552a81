package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhub/task-service/internal/api/handler"
	"github.com/taskhub/task-service/internal/api/middleware"
	"github.com/taskhub/task-service/internal/auth"
	"github.com/taskhub/task-service/internal/core/domain"
	"github.com/taskhub/task-service/internal/core/ports"
)

// Dependencies carries everything the router needs to wire routes.
type Dependencies struct {
	Codec       *auth.Codec
	UserService ports.UserService
	TaskService ports.TaskService
	Mongo       *mongo.Database
	Redis       *redis.Client
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskhub"))

	// --- Authentication pipeline ---
	// Registered as a unit so fault translation always wraps auth.
	resolver := auth.NewResolver(deps.Codec)
	for _, mw := range middleware.Pipeline(resolver, deps.Log) {
		e.Use(mw)
	}

	authHandler := handler.NewAuthHandler(deps.UserService)
	taskHandler := handler.NewTaskHandler(deps.TaskService)

	// --- Auth routes ---
	authGroup := e.Group("/api/auth")
	authGroup.POST("", authHandler.SignUp)
	authGroup.GET("/check", authHandler.CheckEmail)
	authGroup.POST("/signin", authHandler.SignIn)
	authGroup.POST("/external", authHandler.SignInExternal)
	authGroup.PUT("/promote", authHandler.Promote, middleware.RequireRole(string(domain.RoleStandard)))
	authGroup.PUT("/profile-image", authHandler.UploadProfileImage, middleware.RequireAuthenticated())
	authGroup.GET("/load-profile", authHandler.LoadProfileImage, middleware.RequireAuthenticated())

	// --- Task routes (authenticated only) ---
	tasks := e.Group("/api/tasks", middleware.RequireAuthenticated())
	tasks.POST("", taskHandler.Create)
	tasks.GET("", taskHandler.List)
	tasks.PUT("", taskHandler.Update)
	tasks.PATCH("", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
