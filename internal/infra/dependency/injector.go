// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/homeplan/backend/config"
	"github.com/homeplan/backend/internal/application/adapter"
	"github.com/homeplan/backend/internal/application/usecase/dashboard"
	"github.com/homeplan/backend/internal/application/usecase/export"
	"github.com/homeplan/backend/internal/application/usecase/item"
	"github.com/homeplan/backend/internal/application/usecase/settings"
	syncusecase "github.com/homeplan/backend/internal/application/usecase/sync"
	"github.com/homeplan/backend/internal/infra/server/router"
	"github.com/homeplan/backend/internal/integration/adapters"
	"github.com/homeplan/backend/internal/integration/entrypoint/controller"
	"github.com/homeplan/backend/internal/integration/entrypoint/middleware"
	"github.com/homeplan/backend/internal/integration/persistence"
	"github.com/homeplan/backend/internal/integration/syncfeed"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	itemRepo := persistence.NewItemRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	var feed adapter.ChangeFeed
	if redisClient != nil {
		feed = syncfeed.NewRedisChangeFeed(redisClient)
	}

	// Create item use cases
	listItemsUseCase := item.NewListItemsUseCase(itemRepo)
	createItemUseCase := item.NewCreateItemUseCase(itemRepo, feed)
	updateItemUseCase := item.NewUpdateItemUseCase(itemRepo, feed)
	deleteItemUseCase := item.NewDeleteItemUseCase(itemRepo, feed)
	addCandidateUseCase := item.NewAddCandidateUseCase(itemRepo, feed)
	selectCandidateUseCase := item.NewSelectCandidateUseCase(itemRepo, feed)
	removeCandidateUseCase := item.NewRemoveCandidateUseCase(itemRepo, feed)
	markPurchasedUseCase := item.NewMarkPurchasedUseCase(itemRepo, feed)
	dropItemUseCase := item.NewDropItemUseCase(itemRepo, feed)
	restoreItemUseCase := item.NewRestoreItemUseCase(itemRepo, feed)

	// Create dashboard, settings, export and sync use cases
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(itemRepo, settingsRepo)
	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo)
	updateBudgetUseCase := settings.NewUpdateBudgetUseCase(settingsRepo, feed)
	exportCSVUseCase := export.NewExportCSVUseCase(itemRepo)
	subscribeUseCase := syncusecase.NewSubscribeUseCase(itemRepo, settingsRepo, feed)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			if redisClient == nil {
				return false
			}
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	itemController := controller.NewItemController(
		listItemsUseCase,
		createItemUseCase,
		updateItemUseCase,
		deleteItemUseCase,
		addCandidateUseCase,
		selectCandidateUseCase,
		removeCandidateUseCase,
		markPurchasedUseCase,
		dropItemUseCase,
		restoreItemUseCase,
	)

	dashboardController := controller.NewDashboardController(getSummaryUseCase)
	settingsController := controller.NewSettingsController(getSettingsUseCase, updateBudgetUseCase)
	exportController := controller.NewExportController(exportCSVUseCase)

	var eventsController *controller.EventsController
	if feed != nil {
		eventsController = controller.NewEventsController(subscribeUseCase)
	}

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var rateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		rateLimiter = middleware.NewRateLimiterWithConfig(10000, 1*time.Minute)
	} else {
		rateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		itemController,
		dashboardController,
		settingsController,
		exportController,
		eventsController,
		rateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}
}
