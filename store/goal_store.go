package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adsigel/wknd-works/forecast"
	"github.com/adsigel/wknd-works/models"
)

// GoalStore persists the per-calendar-month sales goals.
type GoalStore struct {
	db *pgxpool.Pool
}

// NewGoalStore returns a store backed by the given pool.
func NewGoalStore(db *pgxpool.Pool) *GoalStore {
	return &GoalStore{db: db}
}

// GoalFor returns the goal amount and weekday shares for a month. A month
// with no goal of its own falls back to the most recently configured goal;
// with no goals at all it returns zero with the default weekday split.
func (s *GoalStore) GoalFor(ctx context.Context, year int, month time.Month) (float64, forecast.WeekdayShares, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	var amount float64
	var dist models.JSONB
	err := s.db.QueryRow(ctx,
		`SELECT amount, daily_distribution FROM sales_goals WHERE month = $1`, first,
	).Scan(&amount, &dist)
	if errors.Is(err, pgx.ErrNoRows) {
		err = s.db.QueryRow(ctx,
			`SELECT amount, daily_distribution FROM sales_goals ORDER BY updated_at DESC LIMIT 1`,
		).Scan(&amount, &dist)
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, forecast.SharesFromMap(models.DefaultDailyDistribution()), nil
		}
	}
	if err != nil {
		return 0, forecast.WeekdayShares{}, fmt.Errorf("load sales goal for %d-%02d: %w", year, month, err)
	}
	return amount, forecast.SharesFromMap(floatMap(dist)), nil
}

// List returns every configured goal, newest month first.
func (s *GoalStore) List(ctx context.Context) ([]models.SalesGoal, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, month, amount, daily_distribution, created_at, updated_at
		 FROM sales_goals ORDER BY month DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sales goals: %w", err)
	}
	defer rows.Close()

	var goals []models.SalesGoal
	for rows.Next() {
		var g models.SalesGoal
		var dist models.JSONB
		if err := rows.Scan(&g.ID, &g.Month, &g.Amount, &dist, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sales goal: %w", err)
		}
		g.DailyDistribution = floatMap(dist)
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// Upsert writes the goal for one month and returns the stored row.
func (s *GoalStore) Upsert(ctx context.Context, month time.Time, amount float64, distribution map[string]float64) (*models.SalesGoal, error) {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	if distribution == nil {
		distribution = models.DefaultDailyDistribution()
	}

	var g models.SalesGoal
	var dist models.JSONB
	err := s.db.QueryRow(ctx,
		`INSERT INTO sales_goals (id, month, amount, daily_distribution, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, now(), now())
		 ON CONFLICT (month) DO UPDATE SET
			amount = EXCLUDED.amount,
			daily_distribution = EXCLUDED.daily_distribution,
			updated_at = now()
		 RETURNING id, month, amount, daily_distribution, created_at, updated_at`,
		uuid.NewString(), first, amount, jsonbFrom(distribution),
	).Scan(&g.ID, &g.Month, &g.Amount, &dist, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert sales goal: %w", err)
	}
	g.DailyDistribution = floatMap(dist)
	return &g, nil
}
