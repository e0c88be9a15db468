package forecast

import (
	"time"

	"github.com/adsigel/wknd-works/models"
)

// AggregateValue is the reduced valuation of an inventory snapshot.
// TotalDiscounted applies the age-based DiscountSchedule; the
// forecast-distance factor is a separate axis applied only to projected
// future points, never here.
type AggregateValue struct {
	TotalCost       float64
	TotalRetail     float64
	TotalDiscounted float64

	// Diagnostics, observable but never fatal.
	ExcludedRecords int
	UnknownAges     int
}

// Valuate reduces an inventory snapshot to aggregate cost, retail and
// discounted totals. Records with non-positive stock or retail price are not
// sellable and are skipped silently; records with no receipt date are valued
// as fresh (age 0) and counted as a data-quality warning. When no valid
// record remains it returns an InsufficientDataError rather than a zero
// valuation.
func Valuate(records []models.InventoryRecord, schedule DiscountSchedule, now time.Time) (AggregateValue, error) {
	var agg AggregateValue
	valid := 0
	for i := range records {
		r := &records[i]
		if r.Quantity <= 0 || r.RetailPrice <= 0 {
			agg.ExcludedRecords++
			continue
		}
		age, known := r.AgeDays(now)
		if !known {
			agg.UnknownAges++
		}
		retail := r.RetailValue()
		agg.TotalRetail += retail
		agg.TotalCost += r.CostValue()
		agg.TotalDiscounted += retail * r.DiscountFactor * schedule.RetentionForAge(age)
		valid++
	}
	if valid == 0 {
		return AggregateValue{}, &InsufficientDataError{Excluded: agg.ExcludedRecords}
	}
	return agg, nil
}

// AgeBreakdown buckets a snapshot by inventory age for the histogram view
// embedded in the forecast document. Non-sellable records are skipped with
// the same rule Valuate uses.
func AgeBreakdown(records []models.InventoryRecord, schedule DiscountSchedule, now time.Time) []models.AgeBucketBreakdown {
	byBucket := make(map[string]*models.AgeBucketBreakdown, len(CanonicalBuckets))
	out := make([]models.AgeBucketBreakdown, 0, len(CanonicalBuckets))
	for _, label := range BucketLabels() {
		out = append(out, models.AgeBucketBreakdown{Bucket: label})
	}
	for i := range out {
		byBucket[out[i].Bucket] = &out[i]
	}
	for i := range records {
		r := &records[i]
		if r.Quantity <= 0 || r.RetailPrice <= 0 {
			continue
		}
		age, _ := r.AgeDays(now)
		b := byBucket[BucketForAge(age)]
		b.ItemCount++
		b.Units += r.Quantity
		retail := r.RetailValue()
		b.RetailValue += retail
		b.DiscountedValue += retail * r.DiscountFactor * schedule.RetentionForAge(age)
	}
	return out
}
