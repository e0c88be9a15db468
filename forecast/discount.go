package forecast

import "fmt"

// AgeBucket is a named range of days-since-received. Buckets are matched
// descending: the first bucket whose floor the age meets or exceeds wins, so
// an age sitting exactly on a boundary belongs to the older bucket.
type AgeBucket struct {
	Label     string
	FloorDays int
}

// CanonicalBuckets lists the four age buckets every discount schedule and
// sales distribution must cover, ordered oldest first for matching.
var CanonicalBuckets = []AgeBucket{
	{Label: "90+", FloorDays: 90},
	{Label: "61-90", FloorDays: 61},
	{Label: "31-60", FloorDays: 31},
	{Label: "0-30", FloorDays: 0},
}

// BucketLabels returns the canonical labels, youngest first.
func BucketLabels() []string {
	labels := make([]string, 0, len(CanonicalBuckets))
	for i := len(CanonicalBuckets) - 1; i >= 0; i-- {
		labels = append(labels, CanonicalBuckets[i].Label)
	}
	return labels
}

// DiscountSchedule maps inventory age to a retained-value fraction. It
// models how stock loses sellable value the longer it sits, which is a
// different axis from the forecast-distance uncertainty in
// FutureDistanceFactor.
type DiscountSchedule struct {
	retained map[string]float64
}

// NewDiscountSchedule builds a schedule from bucket label -> discount
// percent (0..100). Every canonical bucket must be present.
func NewDiscountSchedule(settings map[string]float64) (DiscountSchedule, error) {
	retained := make(map[string]float64, len(CanonicalBuckets))
	for _, b := range CanonicalBuckets {
		pct, ok := settings[b.Label]
		if !ok {
			return DiscountSchedule{}, &ConfigurationInvariantError{
				Message: fmt.Sprintf("discount settings missing age bucket %q", b.Label),
			}
		}
		if pct < 0 || pct > 100 {
			return DiscountSchedule{}, &ValidationError{
				Field:   "discountSettings." + b.Label,
				Message: "must be between 0 and 100",
			}
		}
		retained[b.Label] = 1 - pct/100
	}
	return DiscountSchedule{retained: retained}, nil
}

// BucketForAge returns the canonical bucket label an age falls into.
func BucketForAge(ageDays int) string {
	for _, b := range CanonicalBuckets {
		if ageDays >= b.FloorDays {
			return b.Label
		}
	}
	return CanonicalBuckets[len(CanonicalBuckets)-1].Label
}

// RetentionForAge returns the retained-value fraction (1 - discount) for the
// bucket the age falls into. Ages below zero are clamped to the freshest
// bucket.
func (s DiscountSchedule) RetentionForAge(ageDays int) float64 {
	if ageDays < 0 {
		ageDays = 0
	}
	return s.retained[BucketForAge(ageDays)]
}

// FutureDistanceFactor discounts a projected value by how far beyond "now"
// the projection point sits, modeling growing forecast uncertainty. It is
// intentionally separate from DiscountSchedule even though the day
// boundaries look alike; the two decay axes must never share configuration.
func FutureDistanceFactor(daysAhead int) float64 {
	switch {
	case daysAhead > 90:
		return 0.85
	case daysAhead > 60:
		return 0.90
	case daysAhead > 30:
		return 0.95
	default:
		return 1.0
	}
}
