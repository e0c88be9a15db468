package routes

import (
	"github.com/adsigel/wknd-works/handlers"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	app.Get("/health", handlers.HandleHealthCheck)

	api := app.Group("/api/v1")

	// --- Forecast Routes ---
	forecast := api.Group("/forecast")
	forecast.Get("/", handlers.HandleGetForecast)
	forecast.Post("/refresh", handlers.HandleRefreshForecast)
	forecast.Patch("/config", handlers.HandlePatchForecastConfig)
	forecast.Put("/settings", handlers.HandleReplaceSettings)

	// --- Scenario Routes ---
	scenarios := api.Group("/scenarios")
	scenarios.Get("/", handlers.HandleListScenarios)
	scenarios.Get("/results", handlers.HandleGetScenarioResults) // Must be before /:scenarioType
	scenarios.Put("/:scenarioType", handlers.HandleUpdateScenario)

	// --- Sales Goal Routes ---
	goals := api.Group("/goals")
	goals.Get("/", handlers.HandleListGoals)
	goals.Put("/:month", handlers.HandleUpsertGoal)
}
