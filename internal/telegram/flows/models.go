package flows

import "time"

// OrderFlowData is the customer's ephemeral session: in-progress selections
// before they are committed to an order. Destroyed on completion,
// cancellation or error.
type OrderFlowData struct {
	PackageKey        string
	PackageTitle      string
	CoinDetails       string
	DetailsReceivedAt time.Time
	// Set once the order row is persisted (when details are confirmed).
	OrderID *int64
}

// CompleteOrderFlowData is the admin's session for the completion flow.
type CompleteOrderFlowData struct {
	OrderID int64
}
