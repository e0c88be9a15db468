package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adsigel/wknd-works/models"
)

// ScenarioStore manages the three scenario rows. Scenarios are seeded at
// migrate time and only ever updated in place, never deleted.
type ScenarioStore struct {
	db *pgxpool.Pool
}

// NewScenarioStore returns a store backed by the given pool.
func NewScenarioStore(db *pgxpool.Pool) *ScenarioStore {
	return &ScenarioStore{db: db}
}

const scenarioColumns = `scenario_type, haircut_type, haircut_value, gross_margin, gross_margin_for_min_spend, ignored, created_at, updated_at`

// List returns all scenarios in canonical order.
func (s *ScenarioStore) List(ctx context.Context) ([]models.Scenario, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+scenarioColumns+` FROM scenarios
		 ORDER BY CASE scenario_type
			WHEN 'conservative' THEN 0
			WHEN 'base' THEN 1
			ELSE 2
		 END`)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	defer rows.Close()

	var scenarios []models.Scenario
	for rows.Next() {
		var sc models.Scenario
		if err := rows.Scan(&sc.ScenarioType, &sc.HaircutType, &sc.HaircutValue, &sc.GrossMargin,
			&sc.GrossMarginForMinSpend, &sc.Ignored, &sc.CreatedAt, &sc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan scenario: %w", err)
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, rows.Err()
}

// GetByType returns one scenario, or ErrNotFound for an unknown type.
func (s *ScenarioStore) GetByType(ctx context.Context, scenarioType string) (*models.Scenario, error) {
	var sc models.Scenario
	err := s.db.QueryRow(ctx,
		`SELECT `+scenarioColumns+` FROM scenarios WHERE scenario_type = $1`, scenarioType,
	).Scan(&sc.ScenarioType, &sc.HaircutType, &sc.HaircutValue, &sc.GrossMargin,
		&sc.GrossMarginForMinSpend, &sc.Ignored, &sc.CreatedAt, &sc.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get scenario %s: %w", scenarioType, err)
	}
	return &sc, nil
}

// Update replaces the mutable fields of one scenario and returns the stored
// row.
func (s *ScenarioStore) Update(ctx context.Context, sc models.Scenario) (*models.Scenario, error) {
	tag, err := s.db.Exec(ctx,
		`UPDATE scenarios
		 SET haircut_type = $1, haircut_value = $2, gross_margin = $3,
		     gross_margin_for_min_spend = $4, ignored = $5, updated_at = now()
		 WHERE scenario_type = $6`,
		sc.HaircutType, sc.HaircutValue, sc.GrossMargin,
		sc.GrossMarginForMinSpend, sc.Ignored, sc.ScenarioType)
	if err != nil {
		return nil, fmt.Errorf("update scenario %s: %w", sc.ScenarioType, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return s.GetByType(ctx, sc.ScenarioType)
}
