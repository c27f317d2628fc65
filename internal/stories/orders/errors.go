package orders

import "errors"

var (
	// ErrNotFound is returned when no order exists for the given id.
	ErrNotFound = errors.New("order not found")

	// ErrNotApproved is returned when completion is requested for an order
	// that has not been approved yet (or is already completed).
	ErrNotApproved = errors.New("order is not in approved status")
)
