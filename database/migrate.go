package database

import (
	"context"
	"fmt"
	"log"
)

// Migrate creates the schema if it does not exist and seeds the three
// canonical scenarios. Safe to run on every startup.
func Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS inventory_items (
			id               UUID PRIMARY KEY,
			name             TEXT NOT NULL,
			sku              TEXT,
			quantity         INTEGER NOT NULL DEFAULT 0,
			retail_price     NUMERIC(12,2) NOT NULL DEFAULT 0,
			cost_price       NUMERIC(12,2),
			cost_source      TEXT NOT NULL DEFAULT 'actual',
			discount_factor  DOUBLE PRECISION NOT NULL DEFAULT 1.0,
			shrinkage_factor DOUBLE PRECISION NOT NULL DEFAULT 0.98,
			last_received_at TIMESTAMPTZ,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS sales_goals (
			id                 UUID PRIMARY KEY,
			month              DATE NOT NULL UNIQUE,
			amount             NUMERIC(12,2) NOT NULL DEFAULT 0,
			daily_distribution JSONB NOT NULL,
			created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS forecast_settings (
			id                 INTEGER PRIMARY KEY,
			period_weeks       INTEGER NOT NULL DEFAULT 12,
			min_weeks_buffer   INTEGER NOT NULL DEFAULT 6,
			lead_time_weeks    INTEGER NOT NULL DEFAULT 2,
			discount_settings  JSONB NOT NULL,
			sales_distribution JSONB NOT NULL,
			updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS forecast_documents (
			id         INTEGER PRIMARY KEY,
			version    BIGINT NOT NULL DEFAULT 1,
			document   JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS scenarios (
			scenario_type              TEXT PRIMARY KEY,
			haircut_type               TEXT NOT NULL DEFAULT 'percent',
			haircut_value              DOUBLE PRECISION NOT NULL DEFAULT 0,
			gross_margin               DOUBLE PRECISION NOT NULL DEFAULT 0.5,
			gross_margin_for_min_spend DOUBLE PRECISION,
			ignored                    BOOLEAN NOT NULL DEFAULT FALSE,
			created_at                 TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at                 TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		// Exactly three scenario rows, one per type.
		`INSERT INTO scenarios (scenario_type, haircut_type, haircut_value, gross_margin)
		 VALUES
			('conservative', 'percent', 0.20, 0.5),
			('base',         'percent', 0.10, 0.5),
			('optimistic',   'percent', 0.00, 0.5)
		 ON CONFLICT (scenario_type) DO NOTHING`,
	}

	for _, stmt := range stmts {
		if _, err := DB.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	log.Println("Database schema is up to date")
	return nil
}
