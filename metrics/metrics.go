// Package metrics provides Prometheus metrics for the word history service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AggregationsTotal counts aggregations by outcome.
	AggregationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wordhistory",
			Name:      "aggregations_total",
			Help:      "Total number of result set aggregations",
		},
		[]string{"status"},
	)

	// DrilldownsTotal counts drill-downs by outcome.
	DrilldownsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wordhistory",
			Name:      "drilldowns_total",
			Help:      "Total number of drill-down requests",
		},
		[]string{"status"},
	)

	// BreakdownEntries observes the number of documents per breakdown.
	BreakdownEntries = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "wordhistory",
			Name:      "breakdown_entries",
			Help:      "Distribution of documents per breakdown",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	// LiveViews tracks the number of page views held in memory.
	LiveViews = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "wordhistory",
			Name:      "live_views",
			Help:      "Number of page views currently held",
		},
	)

	// ChartsReleased counts released chart handles by chart kind.
	ChartsReleased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wordhistory",
			Name:      "charts_released_total",
			Help:      "Total number of released chart handles",
		},
		[]string{"kind"},
	)
)

// RecordAggregation records an aggregation outcome.
func RecordAggregation(status string) {
	AggregationsTotal.WithLabelValues(status).Inc()
}

// RecordDrilldown records a drill-down outcome and its breakdown size.
func RecordDrilldown(status string, entries int) {
	DrilldownsTotal.WithLabelValues(status).Inc()
	if status == "ok" {
		BreakdownEntries.Observe(float64(entries))
	}
}

// RecordRelease records a released chart.
func RecordRelease(kind string) {
	ChartsReleased.WithLabelValues(kind).Inc()
}
