package models

import "time"

// --- Forecast Document ---

// ForecastState is the valuation of the inventory at the moment the
// forecast was computed.
type ForecastState struct {
	TotalRetailValue     float64   `json:"totalRetailValue"`
	TotalDiscountedValue float64   `json:"totalDiscountedValue"`
	TotalCostValue       float64   `json:"totalCostValue"`
	LastUpdated          time.Time `json:"lastUpdated"`
}

// WeeklyProjection is one step of the time-phased depletion forecast.
type WeeklyProjection struct {
	WeekStart             time.Time `json:"weekStart"`
	WeekEnd               time.Time `json:"weekEnd"`
	ProjectedSales        float64   `json:"projectedSales"`
	EndingRetailValue     float64   `json:"endingRetailValue"`
	EndingDiscountedValue float64   `json:"endingDiscountedValue"`
	EndingCost            float64   `json:"endingCost"`
	IsBelowThreshold      bool      `json:"isBelowThreshold"`
}

// AgeBucketBreakdown is one row of the inventory age histogram embedded in
// the forecast document for display.
type AgeBucketBreakdown struct {
	Bucket          string  `json:"bucket"`
	ItemCount       int     `json:"itemCount"`
	Units           int     `json:"units"`
	RetailValue     float64 `json:"retailValue"`
	DiscountedValue float64 `json:"discountedValue"`
}

// ForecastDocument is the singleton output of a forecast refresh. It is
// replaced wholesale on every recompute; no history is kept.
type ForecastDocument struct {
	CurrentState  ForecastState         `json:"currentState"`
	Configuration ForecastConfiguration `json:"configuration"`
	Projections   []WeeklyProjection    `json:"projections"`
	InventoryData []AgeBucketBreakdown  `json:"inventoryData"`
}

// FirstFlaggedWeek returns the index of the first projection week below the
// buffer threshold, or -1 when every week clears it.
func (d *ForecastDocument) FirstFlaggedWeek() int {
	for i, p := range d.Projections {
		if p.IsBelowThreshold {
			return i
		}
	}
	return -1
}

// --- Scenarios ---

const (
	ScenarioConservative = "conservative"
	ScenarioBase         = "base"
	ScenarioOptimistic   = "optimistic"

	HaircutPercent = "percent"
	HaircutDollar  = "dollar"
)

// ScenarioTypes lists the three canonical scenario types.
var ScenarioTypes = []string{ScenarioConservative, ScenarioBase, ScenarioOptimistic}

// Scenario is one named sensitivity setting. Exactly one row exists per
// scenario type.
type Scenario struct {
	ScenarioType           string    `json:"scenario_type"`
	HaircutType            string    `json:"haircut_type"`
	HaircutValue           float64   `json:"haircut_value"`
	GrossMargin            float64   `json:"gross_margin"`
	GrossMarginForMinSpend *float64  `json:"gross_margin_for_min_spend,omitempty"`
	Ignored                bool      `json:"ignored"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// MinSpendMargin returns the margin used for the minimum-spend conversion,
// falling back to the gross margin when none is configured.
func (s *Scenario) MinSpendMargin() float64 {
	if s.GrossMarginForMinSpend != nil {
		return *s.GrossMarginForMinSpend
	}
	return s.GrossMargin
}

// ScenarioResult is the derived outcome of one scenario. It is recomputed on
// every query and never persisted.
type ScenarioResult struct {
	ScenarioType           string  `json:"scenario_type"`
	AdjustedInventoryValue float64 `json:"adjusted_inventory_value"`
	RevenuePotential       float64 `json:"revenue_potential"`
	RunwayWeeks            float64 `json:"runway_weeks"`
	Total12WeekSalesGoal   float64 `json:"total_12_week_sales_goal"`
	ReorderNeeded          bool    `json:"reorder_needed"`
	MinimumSpend           float64 `json:"minimum_spend"`
}
