package store

import (
	"errors"
	"fmt"
)

// ErrProductNotFound is returned when an operation references a product id
// that does not exist.
var ErrProductNotFound = errors.New("product not found")

// ValidationError reports malformed input (empty name, negative price or
// stock, non-positive quantity). It is always recoverable: the caller keeps
// rendering and shows the reason.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// InsufficientStockError is returned by RecordSale when the requested
// quantity exceeds the stock on hand. No mutation has happened when it is
// returned.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Not enough stock (available: %d)", e.Available)
}
