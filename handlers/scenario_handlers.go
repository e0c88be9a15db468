package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/adsigel/wknd-works/database"
	"github.com/adsigel/wknd-works/models"
	"github.com/adsigel/wknd-works/scenario"
	"github.com/adsigel/wknd-works/store"
)

// HandleListScenarios returns the three scenarios in canonical order.
func HandleListScenarios(c *fiber.Ctx) error {
	scenarios, err := store.NewScenarioStore(database.GetDB()).List(c.Context())
	if err != nil {
		log.Printf("Error listing scenarios: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to list scenarios"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": scenarios})
}

// UpdateScenarioInput is the mutable part of a scenario.
type UpdateScenarioInput struct {
	HaircutType            string   `json:"haircut_type"`
	HaircutValue           float64  `json:"haircut_value"`
	GrossMargin            float64  `json:"gross_margin"`
	GrossMarginForMinSpend *float64 `json:"gross_margin_for_min_spend"`
	Ignored                bool     `json:"ignored"`
}

// HandleUpdateScenario updates one scenario by type.
func HandleUpdateScenario(c *fiber.Ctx) error {
	scenarioType := c.Params("scenarioType")
	if !scenario.ValidType(scenarioType) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Unknown scenario type"})
	}

	var input UpdateScenarioInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	sc := models.Scenario{
		ScenarioType:           scenarioType,
		HaircutType:            input.HaircutType,
		HaircutValue:           input.HaircutValue,
		GrossMargin:            input.GrossMargin,
		GrossMarginForMinSpend: input.GrossMarginForMinSpend,
		Ignored:                input.Ignored,
	}
	if err := scenario.Validate(sc); err != nil {
		return respondEngineError(c, err)
	}

	updated, err := store.NewScenarioStore(database.GetDB()).Update(c.Context(), sc)
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Scenario not found"})
	}
	if err != nil {
		log.Printf("Error updating scenario %s: %v", scenarioType, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update scenario"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": updated})
}

// HandleGetScenarioResults evaluates every non-ignored scenario against the
// current inventory cost basis and sales goals.
func HandleGetScenarioResults(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := c.Context()
	force := c.QueryBool("force", false)

	cfg, err := store.NewSettingsStore(db).Get(ctx)
	if err != nil {
		log.Printf("Error loading forecast settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load settings"})
	}

	inputs, err := newEngine().ScenarioInputs(ctx, cfg, force)
	if err != nil {
		return respondEngineError(c, err)
	}

	scenarios, err := store.NewScenarioStore(db).List(ctx)
	if err != nil {
		log.Printf("Error listing scenarios: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to list scenarios"})
	}

	results := scenario.EvaluateAll(scenarios, inputs)
	return c.JSON(fiber.Map{"status": "success", "data": results})
}
