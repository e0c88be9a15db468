package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/adsigel/wknd-works/database"
	"github.com/adsigel/wknd-works/forecast"
	"github.com/adsigel/wknd-works/store"
)

// HandleGetForecast returns the current forecast document.
func HandleGetForecast(c *fiber.Ctx) error {
	doc, err := store.NewForecastStore(database.GetDB()).Get(c.Context())
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "No forecast has been computed yet"})
	}
	if err != nil {
		log.Printf("Error loading forecast document: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load forecast"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": doc})
}

// RefreshForecastInput is the optional body of a refresh request.
type RefreshForecastInput struct {
	ForecastPeriodWeeks *int `json:"forecastPeriodWeeks"`
}

// HandleRefreshForecast recomputes the forecast from live inventory and
// goals and persists it as the new singleton document. `?force=true`
// bypasses the snapshot cache.
func HandleRefreshForecast(c *fiber.Ctx) error {
	var input RefreshForecastInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
		}
	}
	if input.ForecastPeriodWeeks != nil {
		if err := forecast.ValidateScalarConfig("forecastPeriodWeeks", *input.ForecastPeriodWeeks); err != nil {
			return respondEngineError(c, err)
		}
	}
	force := c.QueryBool("force", false)

	return refreshForecast(c, input.ForecastPeriodWeeks, force)
}

// refreshForecast is the shared recompute path, also run implicitly after a
// settings replace.
func refreshForecast(c *fiber.Ctx, periodOverride *int, force bool) error {
	db := database.GetDB()
	ctx := c.Context()

	cfg, err := store.NewSettingsStore(db).Get(ctx)
	if err != nil {
		log.Printf("Error loading forecast settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load settings"})
	}
	if periodOverride != nil {
		cfg.ForecastPeriodWeeks = *periodOverride
	}

	doc, stats, err := newEngine().Refresh(ctx, cfg, force)
	if err != nil {
		return respondEngineError(c, err)
	}

	if err := store.NewForecastStore(db).Save(ctx, doc); err != nil {
		return respondEngineError(c, err)
	}

	log.Printf("📈 [FORECAST] refreshed: %d weeks, first flagged week %d, %d records excluded",
		len(doc.Projections), doc.FirstFlaggedWeek(), stats.ExcludedRecords)

	return c.JSON(fiber.Map{"status": "success", "data": doc, "stats": stats})
}

// PatchConfigInput carries the scalar configuration fields. Absent fields
// are left unchanged.
type PatchConfigInput struct {
	ForecastPeriodWeeks *int `json:"forecastPeriodWeeks"`
	MinimumWeeksBuffer  *int `json:"minimumWeeksBuffer"`
	LeadTimeWeeks       *int `json:"leadTimeWeeks"`
}

// HandlePatchForecastConfig updates individual scalar configuration fields,
// each validated independently.
func HandlePatchForecastConfig(c *fiber.Ctx) error {
	var input PatchConfigInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if input.ForecastPeriodWeeks == nil && input.MinimumWeeksBuffer == nil && input.LeadTimeWeeks == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "No configuration fields provided"})
	}

	fields := []struct {
		name  string
		value *int
	}{
		{"forecastPeriodWeeks", input.ForecastPeriodWeeks},
		{"minimumWeeksBuffer", input.MinimumWeeksBuffer},
		{"leadTimeWeeks", input.LeadTimeWeeks},
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if err := forecast.ValidateScalarConfig(f.name, *f.value); err != nil {
			return respondEngineError(c, err)
		}
	}

	db := database.GetDB()
	ctx := c.Context()
	settings := store.NewSettingsStore(db)

	cfg, err := settings.Get(ctx)
	if err != nil {
		log.Printf("Error loading forecast settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load settings"})
	}
	if input.ForecastPeriodWeeks != nil {
		cfg.ForecastPeriodWeeks = *input.ForecastPeriodWeeks
	}
	if input.MinimumWeeksBuffer != nil {
		cfg.MinimumWeeksBuffer = *input.MinimumWeeksBuffer
	}
	if input.LeadTimeWeeks != nil {
		cfg.LeadTimeWeeks = *input.LeadTimeWeeks
	}

	if err := settings.Save(ctx, cfg); err != nil {
		log.Printf("Error saving forecast settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to save settings"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": cfg})
}

// ReplaceSettingsInput replaces the discount schedule and sales distribution
// as one validated pair.
type ReplaceSettingsInput struct {
	DiscountSettings  map[string]float64 `json:"discountSettings"`
	SalesDistribution map[string]float64 `json:"salesDistribution"`
}

// HandleReplaceSettings validates and stores new discount/sales-distribution
// settings, then triggers an implicit recompute.
func HandleReplaceSettings(c *fiber.Ctx) error {
	var input ReplaceSettingsInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if err := forecast.ValidateSettingsPair(input.DiscountSettings, input.SalesDistribution); err != nil {
		return respondEngineError(c, err)
	}

	db := database.GetDB()
	ctx := c.Context()
	settings := store.NewSettingsStore(db)

	cfg, err := settings.Get(ctx)
	if err != nil {
		log.Printf("Error loading forecast settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load settings"})
	}
	cfg.DiscountSettings = input.DiscountSettings
	cfg.SalesDistribution = input.SalesDistribution

	if err := settings.Save(ctx, cfg); err != nil {
		log.Printf("Error saving forecast settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to save settings"})
	}

	return refreshForecast(c, nil, false)
}
