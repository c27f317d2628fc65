package orders

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusCompleted Status = "completed"
)

// CanTransitionTo enforces the forward-only lifecycle:
// pending -> approved -> completed.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusApproved
	case StatusApproved:
		return next == StatusCompleted
	default:
		return false
	}
}

type Order struct {
	ID          int64
	UserID      int64
	Package     string
	CoinDetails string
	Status      Status
	WebsiteID   *string
	WebsiteLink *string
	SolAmount   float64
	CreatedAt   time.Time
}

// WebsiteID derives the human-readable fulfillment identifier assigned on
// approval, e.g. order 7 -> "MLW-0007".
func WebsiteID(orderID int64) string {
	return fmt.Sprintf("MLW-%04d", orderID)
}
