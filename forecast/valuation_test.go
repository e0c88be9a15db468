package forecast

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adsigel/wknd-works/models"
)

var valuationNow = time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

func record(qty int, retail, cost float64, ageDays int) models.InventoryRecord {
	received := valuationNow.AddDate(0, 0, -ageDays)
	return models.InventoryRecord{
		ID:              "item",
		Name:            "item",
		Quantity:        qty,
		RetailPrice:     retail,
		CostPrice:       cost,
		CostSource:      models.CostSourceActual,
		DiscountFactor:  1.0,
		ShrinkageFactor: 1.0,
		LastReceivedAt:  &received,
	}
}

func TestValuateTotals(t *testing.T) {
	records := []models.InventoryRecord{
		record(10, 20, 8, 5),   // fresh: retail 200, cost 80, retention 1.00
		record(5, 40, 15, 75),  // 61-90: retail 200, cost 75, retention 0.85
		record(2, 100, 50, 95), // 90+: retail 200, cost 100, retention 0.75
	}
	agg, err := Valuate(records, testSchedule(t), valuationNow)
	assert.NoError(t, err)
	assert.InDelta(t, 600, agg.TotalRetail, 1e-9)
	assert.InDelta(t, 255, agg.TotalCost, 1e-9)
	assert.InDelta(t, 200*1.0+200*0.85+200*0.75, agg.TotalDiscounted, 1e-9)
	assert.Zero(t, agg.ExcludedRecords)
}

func TestValuateAppliesShrinkageAndItemDiscount(t *testing.T) {
	r := record(10, 20, 8, 5)
	r.ShrinkageFactor = 0.98
	r.DiscountFactor = 0.9
	agg, err := Valuate([]models.InventoryRecord{r}, testSchedule(t), valuationNow)
	assert.NoError(t, err)
	assert.InDelta(t, 10*8*0.98, agg.TotalCost, 1e-9)
	assert.InDelta(t, 200*0.9, agg.TotalDiscounted, 1e-9)
}

func TestValuateSkipsNonSellable(t *testing.T) {
	records := []models.InventoryRecord{
		record(0, 20, 8, 5),  // zero stock
		record(5, 0, 8, 5),   // zero price
		record(-2, 20, 8, 5), // negative stock
		record(10, 20, 8, 5),
	}
	agg, err := Valuate(records, testSchedule(t), valuationNow)
	assert.NoError(t, err)
	assert.Equal(t, 3, agg.ExcludedRecords)
	assert.InDelta(t, 200, agg.TotalRetail, 1e-9)
}

func TestValuateEmptyInventoryHardStop(t *testing.T) {
	records := []models.InventoryRecord{
		record(0, 20, 8, 5),
		record(0, 35, 12, 40),
	}
	_, err := Valuate(records, testSchedule(t), valuationNow)
	var insufficient *InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientDataError, got %v", err)
	}
	assert.Equal(t, 2, insufficient.Excluded)
}

func TestValuateNoRecordsHardStop(t *testing.T) {
	_, err := Valuate(nil, testSchedule(t), valuationNow)
	var insufficient *InsufficientDataError
	assert.True(t, errors.As(err, &insufficient))
}

func TestValuateUnknownAgeValuedFresh(t *testing.T) {
	r := record(10, 20, 8, 0)
	r.LastReceivedAt = nil
	agg, err := Valuate([]models.InventoryRecord{r}, testSchedule(t), valuationNow)
	assert.NoError(t, err)
	assert.Equal(t, 1, agg.UnknownAges)
	// Unknown age is a warning, not an error: valued at full retention.
	assert.InDelta(t, 200, agg.TotalDiscounted, 1e-9)
}

func TestAgeBreakdown(t *testing.T) {
	records := []models.InventoryRecord{
		record(10, 20, 8, 5),
		record(4, 10, 5, 10),
		record(5, 40, 15, 75),
		record(0, 99, 1, 75), // excluded
		record(2, 100, 50, 95),
	}
	breakdown := AgeBreakdown(records, testSchedule(t), valuationNow)
	assert.Len(t, breakdown, 4)
	assert.Equal(t, []string{"0-30", "31-60", "61-90", "90+"},
		[]string{breakdown[0].Bucket, breakdown[1].Bucket, breakdown[2].Bucket, breakdown[3].Bucket})

	assert.Equal(t, 2, breakdown[0].ItemCount)
	assert.Equal(t, 14, breakdown[0].Units)
	assert.InDelta(t, 240, breakdown[0].RetailValue, 1e-9)

	assert.Equal(t, 0, breakdown[1].ItemCount)

	assert.Equal(t, 1, breakdown[2].ItemCount)
	assert.InDelta(t, 200*0.85, breakdown[2].DiscountedValue, 1e-9)

	assert.Equal(t, 1, breakdown[3].ItemCount)
	assert.Equal(t, 2, breakdown[3].Units)
}
