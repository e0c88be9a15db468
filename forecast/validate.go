package forecast

import (
	"fmt"
	"math"
)

// distributionTolerance is the slack allowed when checking that a sales
// distribution sums to 100.
const distributionTolerance = 0.01

// ValidateScalarConfig checks one of the scalar configuration knobs. Each
// field validates independently so a patch can name the offending field.
func ValidateScalarConfig(field string, value int) error {
	if value < 1 {
		return &ValidationError{Field: field, Message: "must be at least 1"}
	}
	return nil
}

// ValidateSettingsPair validates the discount schedule and the sales
// distribution as the single unit they are written as. Both maps must cover
// exactly the canonical age buckets with values in [0,100], and the sales
// distribution must sum to 100 within tolerance.
func ValidateSettingsPair(discount, sales map[string]float64) error {
	if err := validateBucketMap("discountSettings", discount); err != nil {
		return err
	}
	if err := validateBucketMap("salesDistribution", sales); err != nil {
		return err
	}
	total := 0.0
	for _, pct := range sales {
		total += pct
	}
	if math.Abs(total-100) > distributionTolerance {
		return &ConfigurationInvariantError{
			Message: fmt.Sprintf("salesDistribution must sum to 100, got %.2f", total),
		}
	}
	return nil
}

func validateBucketMap(field string, m map[string]float64) error {
	if len(m) != len(CanonicalBuckets) {
		return &ConfigurationInvariantError{
			Message: fmt.Sprintf("%s must contain exactly the age buckets %v", field, BucketLabels()),
		}
	}
	for _, b := range CanonicalBuckets {
		pct, ok := m[b.Label]
		if !ok {
			return &ConfigurationInvariantError{
				Message: fmt.Sprintf("%s missing age bucket %q", field, b.Label),
			}
		}
		if pct < 0 || pct > 100 {
			return &ValidationError{
				Field:   field + "." + b.Label,
				Message: "must be between 0 and 100",
			}
		}
	}
	return nil
}
