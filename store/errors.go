package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ConflictError reports write contention on the singleton forecast document
// after every retry was exhausted. It is surfaced to the caller as a
// retryable failure, never swallowed.
type ConflictError struct {
	Attempts int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("forecast document write conflict after %d attempts", e.Attempts)
}
