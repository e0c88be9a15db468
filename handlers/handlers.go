package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/adsigel/wknd-works/cache"
	"github.com/adsigel/wknd-works/database"
	"github.com/adsigel/wknd-works/forecast"
	"github.com/adsigel/wknd-works/store"
)

// snapshotCache is shared across requests so the refresh and scenario reads
// hit the same cached inventory snapshot.
var snapshotCache *cache.SnapshotCache

// InitCache wires the shared snapshot cache. A non-positive TTL falls back
// to the cache default.
func InitCache(ttl time.Duration) {
	snapshotCache = cache.New(ttl)
}

// newEngine builds a forecast engine over the live stores.
func newEngine() *forecast.Engine {
	db := database.GetDB()
	return forecast.NewEngine(store.NewInventoryStore(db), store.NewGoalStore(db), snapshotCache)
}

// respondEngineError maps the engine and store error taxonomy onto HTTP
// statuses.
func respondEngineError(c *fiber.Ctx, err error) error {
	var validation *forecast.ValidationError
	var invariant *forecast.ConfigurationInvariantError
	var insufficient *forecast.InsufficientDataError
	var conflict *store.ConflictError

	switch {
	case errors.As(err, &validation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": validation.Error()})
	case errors.As(err, &invariant):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": invariant.Error()})
	case errors.As(err, &insufficient):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"status": "error", "message": insufficient.Error()})
	case errors.As(err, &conflict):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "error", "message": conflict.Error()})
	default:
		log.Printf("❌ [FORECAST] unexpected error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Internal server error"})
	}
}

// HandleHealthCheck pings the database pool.
func HandleHealthCheck(c *fiber.Ctx) error {
	if err := database.GetDB().Ping(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database ping failed"})
	}
	return c.JSON(fiber.Map{"status": "success"})
}
