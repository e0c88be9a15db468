package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adsigel/wknd-works/models"
)

func defaultShares() WeekdayShares {
	return SharesFromMap(models.DefaultDailyDistribution())
}

func sumDaily(goals []DailyGoal) float64 {
	total := 0.0
	for _, g := range goals {
		total += g.Amount
	}
	return total
}

func TestDailyGoalsConservation(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		goal  float64
	}{
		{2026, time.January, 10000},
		{2026, time.February, 12345.67}, // 28 days
		{2026, time.August, 100.01},
		{2028, time.February, 9999.99}, // leap year
		{2026, time.September, 7},
	}
	for _, c := range cases {
		goals := DailyGoals(c.year, c.month, c.goal, defaultShares())
		assert.InDelta(t, c.goal, sumDaily(goals), 0.01, "%d-%02d", c.year, c.month)
	}
}

func TestDailyGoalsClosedDays(t *testing.T) {
	goals := DailyGoals(2026, time.March, 8000, defaultShares())
	for _, g := range goals {
		if g.Date.Weekday() == time.Monday {
			assert.Zero(t, g.Amount, "closed day %s should carry no goal", g.Date.Format("2006-01-02"))
		}
	}
}

func TestDailyGoalsRenormalization(t *testing.T) {
	// August 2026 has five Saturdays, September 2026 has four. The same
	// goal must re-normalize over the Saturdays actually present.
	aug := DailyGoals(2026, time.August, 10000, defaultShares())
	sep := DailyGoals(2026, time.September, 10000, defaultShares())

	var augSat, sepSat float64
	for _, g := range aug {
		if g.Date.Weekday() == time.Saturday {
			augSat = g.Amount
			break
		}
	}
	for _, g := range sep {
		if g.Date.Weekday() == time.Saturday {
			sepSat = g.Amount
			break
		}
	}
	assert.Less(t, augSat, sepSat)
	assert.InDelta(t, 10000, sumDaily(aug), 0.01)
	assert.InDelta(t, 10000, sumDaily(sep), 0.01)
}

func TestDailyGoalsZeroShares(t *testing.T) {
	goals := DailyGoals(2026, time.April, 3000, WeekdayShares{})
	assert.InDelta(t, 3000, sumDaily(goals), 0.01)
	// Even split across all 30 days.
	assert.InDelta(t, 100, goals[0].Amount, 0.01)
}

func TestDailyGoalsZeroGoal(t *testing.T) {
	goals := DailyGoals(2026, time.April, 0, defaultShares())
	assert.Zero(t, sumDaily(goals))
}

func constantGoals(amount float64, shares WeekdayShares) MonthlyGoalFn {
	return func(year int, month time.Month) (float64, WeekdayShares) {
		return amount, shares
	}
}

func TestWeeklySalesWithinMonth(t *testing.T) {
	dist := NewSalesDistributor(constantGoals(10000, defaultShares()))
	weekStart := time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC) // Sunday

	daily := DailyGoals(2026, time.March, 10000, defaultShares())
	want := 0.0
	for i := 0; i < 7; i++ {
		want += daily[7+i].Amount // March 8..14
	}
	assert.InDelta(t, want, dist.WeeklySales(weekStart), 0.01)
}

func TestWeeklySalesStraddlesMonths(t *testing.T) {
	// January and February carry different goals and different weekday
	// splits; the straddling week must draw from each month's own
	// allocation, never from a blended goal.
	jan := 20000.0
	feb := 8000.0
	janShares := defaultShares()
	febShares := SharesFromMap(map[string]float64{
		"Sunday": 10, "Monday": 10, "Tuesday": 10, "Wednesday": 10,
		"Thursday": 10, "Friday": 20, "Saturday": 30,
	})
	goalFor := func(year int, month time.Month) (float64, WeekdayShares) {
		if month == time.January {
			return jan, janShares
		}
		return feb, febShares
	}
	dist := NewSalesDistributor(goalFor)

	weekStart := time.Date(2026, time.January, 29, 0, 0, 0, 0, time.UTC) // Thu..Wed

	janDaily := DailyGoals(2026, time.January, jan, janShares)
	febDaily := DailyGoals(2026, time.February, feb, febShares)
	want := janDaily[28].Amount + janDaily[29].Amount + janDaily[30].Amount // Jan 29-31
	for d := 0; d < 4; d++ {                                                // Feb 1-4
		want += febDaily[d].Amount
	}
	assert.InDelta(t, want, dist.WeeklySales(weekStart), 0.01)
}

func TestHorizonTotal(t *testing.T) {
	dist := NewSalesDistributor(constantGoals(10000, defaultShares()))
	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	want := 0.0
	for w := 0; w < 12; w++ {
		want += dist.WeeklySales(start.AddDate(0, 0, w*7))
	}
	assert.InDelta(t, want, dist.HorizonTotal(start, 12), 0.01)
}
