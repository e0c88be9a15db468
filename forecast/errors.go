package forecast

import "fmt"

// ValidationError reports a malformed or out-of-range configuration field.
// It is raised before any computation runs.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ConfigurationInvariantError reports a violated cross-field invariant, such
// as a sales distribution that does not sum to 100 or a discount schedule
// missing an age bucket.
type ConfigurationInvariantError struct {
	Message string
}

func (e *ConfigurationInvariantError) Error() string {
	return e.Message
}

// InsufficientDataError is returned when no valid inventory records remain
// after filtering. It is deliberately distinct from a zero-value result: a
// zero-value forecast would be indistinguishable from "no data" and could
// silently read as "no reorder needed".
type InsufficientDataError struct {
	Excluded int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("no valid inventory records to value (%d excluded)", e.Excluded)
}
