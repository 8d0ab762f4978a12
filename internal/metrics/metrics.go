// Package metrics exposes Prometheus collectors for the shopping cart,
// favorites and export flows.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ShoppingListExportsTotal counts rendered shopping list downloads by format.
	ShoppingListExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_shopping_list_exports_total",
			Help: "Total number of shopping list downloads",
		},
		[]string{"format"},
	)

	// ShoppingListAggregationDuration tracks how long building a shopping list takes.
	ShoppingListAggregationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "foodgram_shopping_list_aggregation_duration_seconds",
			Help:    "Duration of shopping list aggregation in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"strategy"},
	)

	// MembershipChangesTotal counts cart and favorite mutations by outcome.
	MembershipChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_membership_changes_total",
			Help: "Total number of cart and favorite changes",
		},
		[]string{"list", "action", "outcome"},
	)
)

// RecordExport records a shopping list download.
func RecordExport(format string) {
	ShoppingListExportsTotal.WithLabelValues(format).Inc()
}

// RecordAggregation records the time spent aggregating a shopping list.
func RecordAggregation(strategy string, d time.Duration) {
	ShoppingListAggregationDuration.WithLabelValues(strategy).Observe(d.Seconds())
}

// RecordMembershipChange records a cart or favorite add/remove.
func RecordMembershipChange(list, action, outcome string) {
	MembershipChangesTotal.WithLabelValues(list, action, outcome).Inc()
}
