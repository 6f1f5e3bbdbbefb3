package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/dojohq/portal-api/api/attendance"
	"github.com/dojohq/portal-api/api/bookmarks"
	"github.com/dojohq/portal-api/api/events"
	"github.com/dojohq/portal-api/api/health"
	"github.com/dojohq/portal-api/api/sessions"
	"github.com/dojohq/portal-api/api/types"
	"github.com/dojohq/portal-api/api/version"
	_ "github.com/dojohq/portal-api/docs/swagger"
	attendanceService "github.com/dojohq/portal-api/internal/services/attendance"
	bookmarksService "github.com/dojohq/portal-api/internal/services/bookmarks"
	eventsService "github.com/dojohq/portal-api/internal/services/events"
	sessionsService "github.com/dojohq/portal-api/internal/services/sessions"
	"github.com/dojohq/portal-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := initializeServices(deps, cfg); err != nil {
		return err
	}

	rps := cfg.RateLimiting.RPS
	burst := cfg.RateLimiting.Burst

	limit := func() gin.HandlerFunc {
		if !cfg.RateLimiting.Enabled {
			return func(c *gin.Context) { c.Next() }
		}
		return PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst)
	}

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// Training group carries the catalog, bookmarks, and attendance. The
	// catalog and attendance need the database; without one their routes
	// stay unregistered and fall through to the 404 handler.
	trainingGroup := v1.Group("/training")
	trainingGroup.Use(limit())
	if deps.SessionService != nil {
		sessions.RegisterRoutes(trainingGroup, deps)
	}
	bookmarks.RegisterRoutes(trainingGroup, deps)
	if deps.AttendanceService != nil {
		attendance.RegisterRoutes(trainingGroup, deps)
	}

	if deps.EventService != nil {
		eventsGroup := v1.Group("/events")
		eventsGroup.Use(limit())
		events.RegisterRoutes(eventsGroup, deps)
	}

	return nil
}

// initializeServices wires any services the caller did not inject
func initializeServices(deps *types.Dependencies, cfg *config.Config) error {
	if deps.BookmarkService == nil {
		store, err := newBookmarkStore(deps, cfg)
		if err != nil {
			return err
		}
		deps.BookmarkService = bookmarksService.NewService(store)
	}

	// The remaining services need the database
	if deps.DB == nil || deps.DB.DB == nil {
		return nil
	}

	if deps.SessionService == nil {
		repo := sessionsService.NewRepository(deps.DB.DB)
		deps.SessionService = sessionsService.NewService(repo, deps.Cache, cfg.Cache.TTL)
	}
	if deps.EventService == nil {
		repo := eventsService.NewRepository(deps.DB.DB)
		deps.EventService = eventsService.NewService(repo, deps.Cache, cfg.Cache.TTL)
	}
	if deps.AttendanceService == nil {
		repo := attendanceService.NewRepository(deps.DB.DB)
		deps.AttendanceService = attendanceService.NewService(repo)
	}

	return nil
}

// newBookmarkStore selects the configured bookmark store backend
func newBookmarkStore(deps *types.Dependencies, cfg *config.Config) (bookmarksService.Store, error) {
	switch cfg.Bookmarks.Store {
	case "database":
		if deps.DB == nil || deps.DB.DB == nil {
			return nil, fmt.Errorf("bookmarks store %q requires a database", cfg.Bookmarks.Store)
		}
		return bookmarksService.NewRepository(deps.DB.DB), nil
	default:
		return bookmarksService.NewMemoryStore(), nil
	}
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
