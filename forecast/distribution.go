package forecast

import (
	"time"

	"github.com/shopspring/decimal"
)

// WeekdayShares holds the percent of a month's sales expected on each
// weekday, indexed by time.Weekday.
type WeekdayShares [7]float64

// SharesFromMap converts a weekday-name keyed map ("Sunday".."Saturday")
// into WeekdayShares. Missing days default to zero.
func SharesFromMap(m map[string]float64) WeekdayShares {
	var shares WeekdayShares
	for i := range shares {
		shares[i] = m[time.Weekday(i).String()]
	}
	return shares
}

// DailyGoal is the revenue target for a single calendar day.
type DailyGoal struct {
	Date   time.Time
	Amount float64
}

// MonthlyGoalFn supplies the revenue goal and weekday shares for a calendar
// month.
type MonthlyGoalFn func(year int, month time.Month) (float64, WeekdayShares)

// DailyGoals spreads a monthly goal across the days of the month. The
// weekday shares are re-normalized over the days actually present, so a
// month with five Saturdays allocates differently from one with four, and
// the daily amounts always sum back to the monthly goal. Amounts are rounded
// to cents with the rounding remainder folded into the last selling day.
func DailyGoals(year int, month time.Month, goal float64, shares WeekdayShares) []DailyGoal {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysIn := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	goals := make([]DailyGoal, daysIn)
	for d := 0; d < daysIn; d++ {
		goals[d].Date = first.AddDate(0, 0, d)
	}
	if goal <= 0 {
		return goals
	}

	totalShare := decimal.Zero
	for d := 0; d < daysIn; d++ {
		totalShare = totalShare.Add(decimal.NewFromFloat(shares[goals[d].Date.Weekday()]))
	}

	goalDec := decimal.NewFromFloat(goal)
	allocated := decimal.Zero
	lastSelling := -1
	for d := 0; d < daysIn; d++ {
		var amt decimal.Decimal
		if totalShare.IsZero() {
			// No weekday carries share: split evenly rather than dropping
			// the goal on the floor.
			amt = goalDec.Div(decimal.NewFromInt(int64(daysIn))).Round(2)
			lastSelling = d
		} else {
			share := decimal.NewFromFloat(shares[goals[d].Date.Weekday()])
			if share.IsZero() {
				continue
			}
			amt = goalDec.Mul(share).Div(totalShare).Round(2)
			lastSelling = d
		}
		goals[d].Amount, _ = amt.Float64()
		allocated = allocated.Add(amt)
	}

	// Fold the cent-rounding drift into the last selling day so the month
	// conserves the goal exactly.
	if lastSelling >= 0 {
		drift := goalDec.Sub(allocated)
		if !drift.IsZero() {
			corrected := decimal.NewFromFloat(goals[lastSelling].Amount).Add(drift)
			goals[lastSelling].Amount, _ = corrected.Float64()
		}
	}
	return goals
}

// SalesDistributor folds monthly goals into week-aligned buckets. Each
// month's daily sequence is computed once and memoized for the lifetime of
// the distributor.
type SalesDistributor struct {
	goalFor MonthlyGoalFn
	months  map[int][]DailyGoal
}

// NewSalesDistributor returns a distributor drawing monthly goals from
// goalFor.
func NewSalesDistributor(goalFor MonthlyGoalFn) *SalesDistributor {
	return &SalesDistributor{
		goalFor: goalFor,
		months:  make(map[int][]DailyGoal),
	}
}

func (d *SalesDistributor) monthGoals(year int, month time.Month) []DailyGoal {
	key := year*12 + int(month)
	if goals, ok := d.months[key]; ok {
		return goals
	}
	amount, shares := d.goalFor(year, month)
	goals := DailyGoals(year, month, amount, shares)
	d.months[key] = goals
	return goals
}

// WeeklySales returns the projected sales for the 7-day window starting at
// weekStart. A week straddling a month boundary sums the days of each month
// against that month's own normalized allocation; it is never computed from
// a blended monthly goal.
func (d *SalesDistributor) WeeklySales(weekStart time.Time) float64 {
	sum := decimal.Zero
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		goals := d.monthGoals(day.Year(), day.Month())
		sum = sum.Add(decimal.NewFromFloat(goals[day.Day()-1].Amount))
	}
	out, _ := sum.Round(2).Float64()
	return out
}

// HorizonTotal returns the summed weekly sales goal across a run of weeks
// starting at start.
func (d *SalesDistributor) HorizonTotal(start time.Time, weeks int) float64 {
	sum := decimal.Zero
	for w := 0; w < weeks; w++ {
		sum = sum.Add(decimal.NewFromFloat(d.WeeklySales(start.AddDate(0, 0, w*7))))
	}
	out, _ := sum.Round(2).Float64()
	return out
}
