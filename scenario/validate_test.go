package scenario

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adsigel/wknd-works/forecast"
	"github.com/adsigel/wknd-works/models"
	"github.com/adsigel/wknd-works/utils"
)

func validScenario() models.Scenario {
	return models.Scenario{
		ScenarioType: models.ScenarioBase,
		HaircutType:  models.HaircutPercent,
		HaircutValue: 0.1,
		GrossMargin:  0.5,
	}
}

func TestValidateAccepts(t *testing.T) {
	assert.NoError(t, Validate(validScenario()))

	s := validScenario()
	s.HaircutType = models.HaircutDollar
	s.HaircutValue = 2500
	s.GrossMarginForMinSpend = utils.Float64Ptr(0.4)
	assert.NoError(t, Validate(s))
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.Scenario)
	}{
		{"unknown type", func(s *models.Scenario) { s.ScenarioType = "pessimistic" }},
		{"unknown haircut type", func(s *models.Scenario) { s.HaircutType = "euro" }},
		{"negative haircut", func(s *models.Scenario) { s.HaircutValue = -1 }},
		{"percent haircut over 1", func(s *models.Scenario) { s.HaircutValue = 1.5 }},
		{"margin of 1 divides by zero", func(s *models.Scenario) { s.GrossMargin = 1 }},
		{"negative margin", func(s *models.Scenario) { s.GrossMargin = -0.1 }},
		{"min-spend margin of 1", func(s *models.Scenario) { s.GrossMarginForMinSpend = utils.Float64Ptr(1) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := validScenario()
			c.mutate(&s)
			err := Validate(s)
			var validation *forecast.ValidationError
			assert.True(t, errors.As(err, &validation), "expected ValidationError, got %v", err)
		})
	}
}

func TestMinSpendMarginFallback(t *testing.T) {
	s := validScenario()
	assert.InDelta(t, 0.5, s.MinSpendMargin(), 1e-9)
	s.GrossMarginForMinSpend = utils.Float64Ptr(0.4)
	assert.InDelta(t, 0.4, s.MinSpendMargin(), 1e-9)
}
