package forecast

import (
	"context"
	"log"
	"time"

	"github.com/adsigel/wknd-works/models"
)

// InventorySource supplies the inventory snapshot. Owned by the inventory
// sync collaborator; the engine only reads it.
type InventorySource interface {
	Snapshot(ctx context.Context) ([]models.InventoryRecord, error)
}

// GoalSource supplies the revenue goal and weekday shares for a calendar
// month.
type GoalSource interface {
	GoalFor(ctx context.Context, year int, month time.Month) (float64, WeekdayShares, error)
}

// SnapshotCache is the optional read-through cache in front of the inventory
// snapshot. Implementations own their TTL; the engine only gets, sets and
// bypasses.
type SnapshotCache interface {
	Get() ([]models.InventoryRecord, bool)
	Set(records []models.InventoryRecord)
	Invalidate()
}

// RefreshStats carries the non-fatal diagnostics of a refresh.
type RefreshStats struct {
	ExcludedRecords int  `json:"excludedRecords"`
	UnknownAges     int  `json:"unknownAges"`
	CacheHit        bool `json:"cacheHit"`
}

// ScenarioInputs is the shared read-only input every scenario evaluates
// against.
type ScenarioInputs struct {
	TotalInventoryCost   float64
	AvgWeeklySalesGoal   float64
	Total12WeekSalesGoal float64
}

// Engine computes forecast documents. It is stateless apart from the
// injected cache and safe for concurrent use across requests.
type Engine struct {
	inventory InventorySource
	goals     GoalSource
	cache     SnapshotCache
	now       func() time.Time
}

// NewEngine wires an engine from its collaborators. cache may be nil to
// disable snapshot caching.
func NewEngine(inventory InventorySource, goals GoalSource, cache SnapshotCache) *Engine {
	return &Engine{
		inventory: inventory,
		goals:     goals,
		cache:     cache,
		now:       time.Now,
	}
}

// WithClock overrides the engine's notion of now. Used by tests.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// snapshot loads inventory through the cache unless force bypasses it.
func (e *Engine) snapshot(ctx context.Context, force bool) ([]models.InventoryRecord, bool, error) {
	if e.cache != nil && !force {
		if records, ok := e.cache.Get(); ok {
			return records, true, nil
		}
	}
	records, err := e.inventory.Snapshot(ctx)
	if err != nil {
		return nil, false, err
	}
	if e.cache != nil {
		e.cache.Set(records)
	}
	return records, false, nil
}

// distributor builds a sales distributor over the goal source, capturing the
// first read error for the caller to surface after the walk.
func (e *Engine) distributor(ctx context.Context, firstErr *error) *SalesDistributor {
	return NewSalesDistributor(func(year int, month time.Month) (float64, WeekdayShares) {
		amount, shares, err := e.goals.GoalFor(ctx, year, month)
		if err != nil && *firstErr == nil {
			*firstErr = err
		}
		return amount, shares
	})
}

// Refresh recomputes the full forecast document from live inventory and
// goals. The configuration invariants are validated on every call; the
// snapshot cache never short-circuits them.
func (e *Engine) Refresh(ctx context.Context, cfg models.ForecastConfiguration, force bool) (*models.ForecastDocument, RefreshStats, error) {
	var stats RefreshStats

	if err := ValidateSettingsPair(cfg.DiscountSettings, cfg.SalesDistribution); err != nil {
		return nil, stats, err
	}
	schedule, err := NewDiscountSchedule(cfg.DiscountSettings)
	if err != nil {
		return nil, stats, err
	}

	records, cacheHit, err := e.snapshot(ctx, force)
	if err != nil {
		return nil, stats, err
	}
	stats.CacheHit = cacheHit

	now := e.now().UTC()
	start := now.Truncate(24 * time.Hour)

	agg, err := Valuate(records, schedule, now)
	if err != nil {
		return nil, stats, err
	}
	stats.ExcludedRecords = agg.ExcludedRecords
	stats.UnknownAges = agg.UnknownAges
	if agg.UnknownAges > 0 {
		log.Printf("⚠️ [FORECAST] %d inventory records have no receipt date, valued as fresh", agg.UnknownAges)
	}

	var goalErr error
	dist := e.distributor(ctx, &goalErr)
	projections := GenerateProjections(ProjectionInput{
		Initial:            agg,
		Weeks:              cfg.ForecastPeriodWeeks,
		MinimumWeeksBuffer: cfg.MinimumWeeksBuffer,
		Start:              start,
		Distributor:        dist,
	})
	if goalErr != nil {
		return nil, stats, goalErr
	}

	doc := &models.ForecastDocument{
		CurrentState: models.ForecastState{
			TotalRetailValue:     round2(agg.TotalRetail),
			TotalDiscountedValue: round2(agg.TotalDiscounted),
			TotalCostValue:       round2(agg.TotalCost),
			LastUpdated:          now,
		},
		Configuration: cfg,
		Projections:   projections,
		InventoryData: AgeBreakdown(records, schedule, now),
	}
	return doc, stats, nil
}

// ScenarioInputs aggregates the inventory cost basis and the 12-week sales
// goal the scenario evaluator works from.
func (e *Engine) ScenarioInputs(ctx context.Context, cfg models.ForecastConfiguration, force bool) (ScenarioInputs, error) {
	schedule, err := NewDiscountSchedule(cfg.DiscountSettings)
	if err != nil {
		return ScenarioInputs{}, err
	}
	records, _, err := e.snapshot(ctx, force)
	if err != nil {
		return ScenarioInputs{}, err
	}

	now := e.now().UTC()
	agg, err := Valuate(records, schedule, now)
	if err != nil {
		return ScenarioInputs{}, err
	}

	var goalErr error
	dist := e.distributor(ctx, &goalErr)
	total := dist.HorizonTotal(now.Truncate(24*time.Hour), 12)
	if goalErr != nil {
		return ScenarioInputs{}, goalErr
	}

	return ScenarioInputs{
		TotalInventoryCost:   agg.TotalCost,
		AvgWeeklySalesGoal:   round2(total / 12),
		Total12WeekSalesGoal: total,
	}, nil
}
