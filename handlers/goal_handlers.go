package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/adsigel/wknd-works/database"
	"github.com/adsigel/wknd-works/store"
	"github.com/adsigel/wknd-works/utils"
)

// HandleListGoals returns every configured monthly sales goal.
func HandleListGoals(c *fiber.Ctx) error {
	goals, err := store.NewGoalStore(database.GetDB()).List(c.Context())
	if err != nil {
		log.Printf("Error listing sales goals: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to list sales goals"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": goals})
}

// UpsertGoalInput is the body of a goal write.
type UpsertGoalInput struct {
	Amount            float64            `json:"amount"`
	DailyDistribution map[string]float64 `json:"daily_distribution"`
}

// HandleUpsertGoal creates or replaces the sales goal for one month. The
// month comes from the path as YYYY-MM.
func HandleUpsertGoal(c *fiber.Ctx) error {
	month, err := utils.ParseMonth(c.Params("month"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid month, expected YYYY-MM"})
	}

	var input UpsertGoalInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if input.Amount < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "invalid amount: must be non-negative"})
	}
	for day, pct := range input.DailyDistribution {
		if !utils.IsWeekdayName(day) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "invalid daily_distribution: unknown day " + day})
		}
		if pct < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "invalid daily_distribution: " + day + " must be non-negative"})
		}
	}

	goal, err := store.NewGoalStore(database.GetDB()).Upsert(c.Context(), month, input.Amount, input.DailyDistribution)
	if err != nil {
		log.Printf("Error upserting sales goal for %s: %v", month.Format("2006-01"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to save sales goal"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": goal})
}
