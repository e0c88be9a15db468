package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adsigel/wknd-works/models"
)

const settingsRowID = 1

// SettingsStore persists the forecast configuration singleton.
type SettingsStore struct {
	db *pgxpool.Pool
}

// NewSettingsStore returns a store backed by the given pool.
func NewSettingsStore(db *pgxpool.Pool) *SettingsStore {
	return &SettingsStore{db: db}
}

// Get returns the current configuration, falling back to the defaults when
// nothing has been written yet.
func (s *SettingsStore) Get(ctx context.Context) (models.ForecastConfiguration, error) {
	var cfg models.ForecastConfiguration
	var discount, sales models.JSONB
	err := s.db.QueryRow(ctx,
		`SELECT period_weeks, min_weeks_buffer, lead_time_weeks, discount_settings, sales_distribution, updated_at
		 FROM forecast_settings WHERE id = $1`, settingsRowID,
	).Scan(&cfg.ForecastPeriodWeeks, &cfg.MinimumWeeksBuffer, &cfg.LeadTimeWeeks, &discount, &sales, &cfg.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.DefaultForecastConfiguration(), nil
	}
	if err != nil {
		return cfg, fmt.Errorf("load forecast settings: %w", err)
	}
	cfg.DiscountSettings = floatMap(discount)
	cfg.SalesDistribution = floatMap(sales)
	return cfg, nil
}

// Save upserts the configuration singleton.
func (s *SettingsStore) Save(ctx context.Context, cfg models.ForecastConfiguration) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO forecast_settings (id, period_weeks, min_weeks_buffer, lead_time_weeks, discount_settings, sales_distribution, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, now())
		 ON CONFLICT (id) DO UPDATE SET
			period_weeks = EXCLUDED.period_weeks,
			min_weeks_buffer = EXCLUDED.min_weeks_buffer,
			lead_time_weeks = EXCLUDED.lead_time_weeks,
			discount_settings = EXCLUDED.discount_settings,
			sales_distribution = EXCLUDED.sales_distribution,
			updated_at = now()`,
		settingsRowID, cfg.ForecastPeriodWeeks, cfg.MinimumWeeksBuffer, cfg.LeadTimeWeeks,
		jsonbFrom(cfg.DiscountSettings), jsonbFrom(cfg.SalesDistribution))
	if err != nil {
		return fmt.Errorf("save forecast settings: %w", err)
	}
	return nil
}

func floatMap(j models.JSONB) map[string]float64 {
	out := make(map[string]float64, len(j))
	for k, v := range j {
		if f, ok := v.(float64); ok {
			out[k] = f
		}
	}
	return out
}

func jsonbFrom(m map[string]float64) models.JSONB {
	out := make(models.JSONB, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
