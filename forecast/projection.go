package forecast

import (
	"math"
	"time"

	"github.com/adsigel/wknd-works/models"
)

// ProjectionInput carries everything the week state machine needs.
type ProjectionInput struct {
	Initial            AggregateValue
	Weeks              int
	MinimumWeeksBuffer int
	Start              time.Time // first week start, anchored at "now"
	Distributor        *SalesDistributor
}

// GenerateProjections runs the weekly depletion state machine across the
// full horizon. It never terminates early on a flagged week: callers need
// the first flagged week and any later recovery behavior. The discounted
// ending value is derived from the retail value each week via the
// forecast-distance factor, not chained through the age schedule.
func GenerateProjections(in ProjectionInput) []models.WeeklyProjection {
	if in.Weeks <= 0 {
		return nil
	}
	// All-zero aggregates should be stopped upstream by Valuate; an empty
	// sequence beats a horizon of zero-valued weeks if one slips through.
	if in.Initial.TotalRetail == 0 && in.Initial.TotalDiscounted == 0 && in.Initial.TotalCost == 0 {
		return []models.WeeklyProjection{}
	}

	currentRetail := in.Initial.TotalRetail
	currentCost := in.Initial.TotalCost

	projections := make([]models.WeeklyProjection, 0, in.Weeks)
	for w := 0; w < in.Weeks; w++ {
		weekStart := in.Start.AddDate(0, 0, w*7)
		weekEnd := weekStart.AddDate(0, 0, 6)
		weeklySales := round2(in.Distributor.WeeklySales(weekStart))

		endingRetail := math.Max(0, currentRetail-weeklySales)
		daysAhead := int(weekStart.Sub(in.Start).Hours() / 24)
		endingDiscounted := endingRetail * FutureDistanceFactor(daysAhead)

		// Proportional cost runoff, guarding the depleted case.
		ratio := 0.0
		if currentRetail > 0 {
			ratio = endingRetail / currentRetail
		}
		endingCost := currentCost * ratio

		projections = append(projections, models.WeeklyProjection{
			WeekStart:             weekStart,
			WeekEnd:               weekEnd,
			ProjectedSales:        weeklySales,
			EndingRetailValue:     round2(endingRetail),
			EndingDiscountedValue: round2(endingDiscounted),
			EndingCost:            round2(endingCost),
			IsBelowThreshold:      endingDiscounted < weeklySales*float64(in.MinimumWeeksBuffer),
		})

		currentRetail = endingRetail
		currentCost = endingCost
	}
	return projections
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
