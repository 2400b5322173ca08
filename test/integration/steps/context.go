// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

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
	"github.com/homeplan/backend/internal/integration/persistence/model"
	"github.com/homeplan/backend/internal/integration/syncfeed"
	"github.com/homeplan/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var serverInit sync.Once
var testServer *httptest.Server
var testDB *mock.Db

// testContext holds per-scenario state shared between step definitions.
type testContext struct {
	uri     string
	client  *http.Client
	db      *mock.Db
	headers map[string]string

	response     *http.Response
	responseBody []byte

	accessToken        string
	users              map[string]uuid.UUID
	currentUserID      uuid.UUID
	currentItemID      uuid.UUID
	currentCandidateID uuid.UUID
}

// InitializeTestSuite sets up global resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"items":      &model.ItemModel{},
			"candidates": &model.CandidateModel{},
			"settings":   &model.SettingsModel{},
		}),
	}
	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Auth setup steps
	ctx.Given(`^I am authenticated$`, test.iAmAuthenticated)
	ctx.Given(`^I am authenticated as "([^"]*)"$`, test.iAmAuthenticatedAs)
	ctx.Given(`^I am not authenticated$`, test.iAmNotAuthenticated)

	// Data setup steps
	ctx.Given(`^an item "([^"]*)" exists with priority "([^"]*)" in category "([^"]*)"$`, test.anItemExists)
	ctx.Given(`^the item has a candidate "([^"]*)" priced "([^"]*)"$`, test.theItemHasACandidate)
	ctx.Given(`^my budget is "([^"]*)"$`, test.myBudgetIs)

	// Header steps
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response header "([^"]*)" should contain "([^"]*)"$`, test.theResponseHeaderShouldContain)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.users = make(map[string]uuid.UUID)
	t.response = nil
	t.responseBody = nil
	t.accessToken = ""
	t.currentUserID = uuid.Nil
	t.currentItemID = uuid.Nil
	t.currentCandidateID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		redisClient := mock.NewRedis()
		feed := syncfeed.NewRedisChangeFeed(redisClient)

		itemRepo := persistence.NewItemRepository(testDB.DbConn)
		settingsRepo := persistence.NewSettingsRepository(testDB.DbConn)

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

		summaryUseCase := dashboard.NewGetSummaryUseCase(itemRepo, settingsRepo)
		getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo)
		updateBudgetUseCase := settings.NewUpdateBudgetUseCase(settingsRepo, feed)
		exportCSVUseCase := export.NewExportCSVUseCase(itemRepo)
		subscribeUseCase := syncusecase.NewSubscribeUseCase(itemRepo, settingsRepo, feed)

		healthController := controller.NewHealthController(
			func() bool { return testDB != nil && testDB.DbConn != nil },
			func() bool { return true },
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
		dashboardController := controller.NewDashboardController(summaryUseCase)
		settingsController := controller.NewSettingsController(getSettingsUseCase, updateBudgetUseCase)
		exportController := controller.NewExportController(exportCSVUseCase)
		eventsController := controller.NewEventsController(subscribeUseCase)

		rateLimiter := middleware.NewRateLimiter()
		authMiddleware := middleware.NewAuthMiddleware(adapters.NewTokenService(testJWTSecret))

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
		engine := r.Setup("test")
		testServer = httptest.NewServer(engine)
	})

	t.uri = testServer.URL
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}
