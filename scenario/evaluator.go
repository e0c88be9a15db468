// Package scenario derives reorder guidance from the current inventory cost
// basis under conservative, base and optimistic assumptions.
package scenario

import (
	"math"
	"sync"

	"github.com/adsigel/wknd-works/forecast"
	"github.com/adsigel/wknd-works/models"
)

// Evaluate computes the result of a single scenario. It is a pure function
// of its inputs; scenarios never see each other's state.
func Evaluate(s models.Scenario, in forecast.ScenarioInputs) models.ScenarioResult {
	adjusted := adjustedValue(s, in.TotalInventoryCost)

	// Gross-margin inversion: selling the cost basis entirely at margin m
	// realizes adjusted / (1-m) of revenue. m < 1 is enforced at write time.
	revenuePotential := adjusted / (1 - s.GrossMargin)

	runway := 0.0
	if in.AvgWeeklySalesGoal > 0 {
		runway = revenuePotential / in.AvgWeeklySalesGoal
	}

	reorder := revenuePotential < in.Total12WeekSalesGoal
	minimumSpend := 0.0
	if reorder {
		// The revenue shortfall converted back to a cost-basis purchase
		// amount with the same inversion, using the min-spend margin.
		minimumSpend = (in.Total12WeekSalesGoal - revenuePotential) * (1 - s.MinSpendMargin())
	}

	return models.ScenarioResult{
		ScenarioType:           s.ScenarioType,
		AdjustedInventoryValue: round2(adjusted),
		RevenuePotential:       round2(revenuePotential),
		RunwayWeeks:            round2(runway),
		Total12WeekSalesGoal:   round2(in.Total12WeekSalesGoal),
		ReorderNeeded:          reorder,
		MinimumSpend:           round2(minimumSpend),
	}
}

// EvaluateAll evaluates every non-ignored scenario concurrently and returns
// the results in the input order.
func EvaluateAll(scenarios []models.Scenario, in forecast.ScenarioInputs) []models.ScenarioResult {
	type slot struct {
		result models.ScenarioResult
		ok     bool
	}
	slots := make([]slot, len(scenarios))

	var wg sync.WaitGroup
	for i, s := range scenarios {
		if s.Ignored {
			continue
		}
		wg.Add(1)
		go func(i int, s models.Scenario) {
			defer wg.Done()
			slots[i] = slot{result: Evaluate(s, in), ok: true}
		}(i, s)
	}
	wg.Wait()

	results := make([]models.ScenarioResult, 0, len(scenarios))
	for _, sl := range slots {
		if sl.ok {
			results = append(results, sl.result)
		}
	}
	return results
}

func adjustedValue(s models.Scenario, totalCost float64) float64 {
	if s.HaircutType == models.HaircutDollar {
		return math.Max(0, totalCost-s.HaircutValue)
	}
	return totalCost * (1 - s.HaircutValue)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
