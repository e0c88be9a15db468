package forecast

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adsigel/wknd-works/cache"
	"github.com/adsigel/wknd-works/models"
)

type fakeInventory struct {
	records []models.InventoryRecord
	calls   int
	err     error
}

func (f *fakeInventory) Snapshot(ctx context.Context) ([]models.InventoryRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

type fakeGoals struct {
	amount float64
}

func (f *fakeGoals) GoalFor(ctx context.Context, year int, month time.Month) (float64, WeekdayShares, error) {
	return f.amount, defaultShares(), nil
}

func engineNow() time.Time {
	return time.Date(2026, time.June, 1, 9, 30, 0, 0, time.UTC)
}

func testRecords() []models.InventoryRecord {
	return []models.InventoryRecord{
		record(100, 25, 10, 5),
		record(40, 50, 20, 45),
		record(20, 80, 30, 100),
	}
}

func TestRefreshBuildsDocument(t *testing.T) {
	inv := &fakeInventory{records: testRecords()}
	eng := NewEngine(inv, &fakeGoals{amount: 8000}, nil).WithClock(engineNow)

	cfg := models.DefaultForecastConfiguration()
	doc, stats, err := eng.Refresh(context.Background(), cfg, false)
	assert.NoError(t, err)

	assert.Len(t, doc.Projections, cfg.ForecastPeriodWeeks)
	assert.Len(t, doc.InventoryData, 4)
	assert.Equal(t, cfg.MinimumWeeksBuffer, doc.Configuration.MinimumWeeksBuffer)
	assert.Equal(t, engineNow(), doc.CurrentState.LastUpdated)

	// 100*25 + 40*50 + 20*80 = 6100 retail
	assert.InDelta(t, 6100, doc.CurrentState.TotalRetailValue, 1e-9)
	assert.Zero(t, stats.ExcludedRecords)
	assert.False(t, stats.CacheHit)
}

func TestRefreshValidatesInvariantsEveryCall(t *testing.T) {
	inv := &fakeInventory{records: testRecords()}
	eng := NewEngine(inv, &fakeGoals{amount: 8000}, nil).WithClock(engineNow)

	cfg := models.DefaultForecastConfiguration()
	cfg.SalesDistribution["0-30"] = 39 // sums to 99

	_, _, err := eng.Refresh(context.Background(), cfg, false)
	var invariant *ConfigurationInvariantError
	assert.True(t, errors.As(err, &invariant))
	// Validation rejected the call before the snapshot was touched.
	assert.Zero(t, inv.calls)
}

func TestRefreshInsufficientData(t *testing.T) {
	inv := &fakeInventory{records: []models.InventoryRecord{record(0, 25, 10, 5)}}
	eng := NewEngine(inv, &fakeGoals{amount: 8000}, nil).WithClock(engineNow)

	_, _, err := eng.Refresh(context.Background(), models.DefaultForecastConfiguration(), false)
	var insufficient *InsufficientDataError
	assert.True(t, errors.As(err, &insufficient))
}

func TestRefreshUsesSnapshotCache(t *testing.T) {
	inv := &fakeInventory{records: testRecords()}
	snapCache := cache.New(5 * time.Minute).WithClock(engineNow)
	eng := NewEngine(inv, &fakeGoals{amount: 8000}, snapCache).WithClock(engineNow)

	cfg := models.DefaultForecastConfiguration()
	ctx := context.Background()

	_, stats, err := eng.Refresh(ctx, cfg, false)
	assert.NoError(t, err)
	assert.False(t, stats.CacheHit)
	assert.Equal(t, 1, inv.calls)

	_, stats, err = eng.Refresh(ctx, cfg, false)
	assert.NoError(t, err)
	assert.True(t, stats.CacheHit)
	assert.Equal(t, 1, inv.calls)

	// force bypasses and repopulates the cache.
	_, stats, err = eng.Refresh(ctx, cfg, true)
	assert.NoError(t, err)
	assert.False(t, stats.CacheHit)
	assert.Equal(t, 2, inv.calls)
}

func TestRefreshSurfacesSnapshotError(t *testing.T) {
	inv := &fakeInventory{err: errors.New("sync collaborator down")}
	eng := NewEngine(inv, &fakeGoals{amount: 8000}, nil).WithClock(engineNow)

	_, _, err := eng.Refresh(context.Background(), models.DefaultForecastConfiguration(), false)
	assert.ErrorContains(t, err, "sync collaborator down")
}

func TestScenarioInputs(t *testing.T) {
	inv := &fakeInventory{records: testRecords()}
	eng := NewEngine(inv, &fakeGoals{amount: 8000}, nil).WithClock(engineNow)

	in, err := eng.ScenarioInputs(context.Background(), models.DefaultForecastConfiguration(), false)
	assert.NoError(t, err)

	// 100*10 + 40*20 + 20*30 = 2400 cost basis (shrinkage 1.0 in fixtures)
	assert.InDelta(t, 2400, in.TotalInventoryCost, 1e-9)
	assert.Greater(t, in.Total12WeekSalesGoal, 0.0)
	assert.InDelta(t, in.Total12WeekSalesGoal/12, in.AvgWeeklySalesGoal, 0.01)
}
