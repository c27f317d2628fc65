package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Order lifecycle counters, exposed on the observability server's /metrics.
var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "moonlaunch_orders_created_total",
		Help: "Number of orders persisted with status pending",
	})

	OrdersApproved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "moonlaunch_orders_approved_total",
		Help: "Number of orders approved by the administrator",
	})

	OrdersCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "moonlaunch_orders_completed_total",
		Help: "Number of orders completed with a website link",
	})
)
