// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/homeplan/backend/internal/integration/entrypoint/controller"
	"github.com/homeplan/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	itemController      *controller.ItemController
	dashboardController *controller.DashboardController
	settingsController  *controller.SettingsController
	exportController    *controller.ExportController
	eventsController    *controller.EventsController
	rateLimiter         *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	itemController *controller.ItemController,
	dashboardController *controller.DashboardController,
	settingsController *controller.SettingsController,
	exportController *controller.ExportController,
	eventsController *controller.EventsController,
	rateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		itemController:      itemController,
		dashboardController: dashboardController,
		settingsController:  settingsController,
		exportController:    exportController,
		eventsController:    eventsController,
		rateLimiter:         rateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Item routes (require authentication)
		if r.itemController != nil && r.authMiddleware != nil {
			items := v1.Group("/items")
			items.Use(r.authMiddleware.Authenticate())
			if r.rateLimiter != nil {
				items.Use(r.rateLimiter.Middleware())
			}
			{
				items.GET("", r.itemController.List)
				items.POST("", r.itemController.Create)
				items.PATCH("/:id", r.itemController.Update)
				items.DELETE("/:id", r.itemController.Delete)

				// Lifecycle transitions
				items.POST("/:id/purchase", r.itemController.MarkPurchased)
				items.POST("/:id/drop", r.itemController.Drop)
				items.POST("/:id/restore", r.itemController.Restore)

				// Candidate routes (nested under items)
				items.POST("/:id/candidates", r.itemController.AddCandidate)
				items.POST("/:id/candidates/:candidateId/select", r.itemController.SelectCandidate)
				items.DELETE("/:id/candidates/:candidateId", r.itemController.RemoveCandidate)
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/summary", r.dashboardController.Summary)
			}
		}

		// Settings routes (require authentication)
		if r.settingsController != nil && r.authMiddleware != nil {
			settings := v1.Group("/settings")
			settings.Use(r.authMiddleware.Authenticate())
			{
				settings.GET("", r.settingsController.Get)
				settings.PUT("/budget", r.settingsController.UpdateBudget)
			}
		}

		// Export routes (require authentication)
		if r.exportController != nil && r.authMiddleware != nil {
			export := v1.Group("/export")
			export.Use(r.authMiddleware.Authenticate())
			{
				export.GET("/csv", r.exportController.CSV)
			}
		}

		// Event stream routes (require authentication)
		if r.eventsController != nil && r.authMiddleware != nil {
			events := v1.Group("/events")
			events.Use(r.authMiddleware.Authenticate())
			{
				events.GET("", r.eventsController.Stream)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
