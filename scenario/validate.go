package scenario

import (
	"github.com/adsigel/wknd-works/forecast"
	"github.com/adsigel/wknd-works/models"
)

// ValidType reports whether t is one of the three canonical scenario types.
func ValidType(t string) bool {
	for _, known := range models.ScenarioTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Validate checks a scenario against its schema before it is written.
func Validate(s models.Scenario) error {
	if !ValidType(s.ScenarioType) {
		return &forecast.ValidationError{Field: "scenario_type", Message: "must be conservative, base or optimistic"}
	}
	if s.HaircutType != models.HaircutPercent && s.HaircutType != models.HaircutDollar {
		return &forecast.ValidationError{Field: "haircut_type", Message: "must be percent or dollar"}
	}
	if s.HaircutValue < 0 {
		return &forecast.ValidationError{Field: "haircut_value", Message: "must be non-negative"}
	}
	if s.HaircutType == models.HaircutPercent && s.HaircutValue > 1 {
		return &forecast.ValidationError{Field: "haircut_value", Message: "percent haircut must be between 0 and 1"}
	}
	if s.GrossMargin < 0 || s.GrossMargin >= 1 {
		return &forecast.ValidationError{Field: "gross_margin", Message: "must be in [0, 1)"}
	}
	if s.GrossMarginForMinSpend != nil {
		m := *s.GrossMarginForMinSpend
		if m < 0 || m >= 1 {
			return &forecast.ValidationError{Field: "gross_margin_for_min_spend", Message: "must be in [0, 1)"}
		}
	}
	return nil
}
