package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// --- Custom JSON Type for database/sql ---

// JSONB allows storing JSON data in a PostgreSQL jsonb column.
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, &j)
}

// --- Cost source tags ---

const (
	CostSourceActual    = "actual"
	CostSourceEstimated = "estimated"
)

// --- Core Models ---

// InventoryRecord is a snapshot row of physical stock. It is owned by the
// inventory sync collaborator and read-only to the forecast engine.
type InventoryRecord struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	SKU             *string    `json:"sku,omitempty"`
	Quantity        int        `json:"quantity"`
	RetailPrice     float64    `json:"retail_price"`
	CostPrice       float64    `json:"cost_price"`
	CostSource      string     `json:"cost_source"`
	DiscountFactor  float64    `json:"discount_factor"`
	ShrinkageFactor float64    `json:"shrinkage_factor"`
	LastReceivedAt  *time.Time `json:"last_received_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// RetailValue returns the sellable value of the record at full price.
func (r *InventoryRecord) RetailValue() float64 {
	return float64(r.Quantity) * r.RetailPrice
}

// CostValue returns the cost basis of the record, shrinkage applied.
func (r *InventoryRecord) CostValue() float64 {
	return float64(r.Quantity) * r.CostPrice * r.ShrinkageFactor
}

// AgeDays returns the whole days since the record was last received. The
// second return is false when no receipt date is known.
func (r *InventoryRecord) AgeDays(now time.Time) (int, bool) {
	if r.LastReceivedAt == nil {
		return 0, false
	}
	age := int(now.Sub(*r.LastReceivedAt).Hours() / 24)
	if age < 0 {
		age = 0
	}
	return age, true
}

// SalesGoal is the revenue target for one calendar month, with the
// day-of-week split used to spread it across the month.
type SalesGoal struct {
	ID                string             `json:"id"`
	Month             time.Time          `json:"month"` // first day of the month, UTC
	Amount            float64            `json:"amount"`
	DailyDistribution map[string]float64 `json:"daily_distribution"` // weekday name -> percent
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// ForecastConfiguration holds the tunable knobs of the forecast engine.
type ForecastConfiguration struct {
	ForecastPeriodWeeks int                `json:"forecastPeriodWeeks"`
	MinimumWeeksBuffer  int                `json:"minimumWeeksBuffer"`
	LeadTimeWeeks       int                `json:"leadTimeWeeks"`
	DiscountSettings    map[string]float64 `json:"discountSettings"`  // age bucket -> discount percent
	SalesDistribution   map[string]float64 `json:"salesDistribution"` // age bucket -> percent of sales
	UpdatedAt           time.Time          `json:"updatedAt"`
}

// DefaultForecastConfiguration returns the configuration used before any
// settings have been written.
func DefaultForecastConfiguration() ForecastConfiguration {
	return ForecastConfiguration{
		ForecastPeriodWeeks: 12,
		MinimumWeeksBuffer:  6,
		LeadTimeWeeks:       2,
		DiscountSettings: map[string]float64{
			"0-30":  0,
			"31-60": 5,
			"61-90": 15,
			"90+":   25,
		},
		SalesDistribution: map[string]float64{
			"0-30":  40,
			"31-60": 30,
			"61-90": 20,
			"90+":   10,
		},
	}
}

// DefaultDailyDistribution is the weekday split applied to a sales goal
// created without one (shop closed on Mondays).
func DefaultDailyDistribution() map[string]float64 {
	return map[string]float64{
		"Sunday":    20,
		"Monday":    0,
		"Tuesday":   10,
		"Wednesday": 10,
		"Thursday":  10,
		"Friday":    20,
		"Saturday":  30,
	}
}
