package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// ScoredPerQuery tracks how many records each query scored, labeled by
	// query kind ("recommend_posts", "find_partner"). Watches catalog growth
	// against the scan-all-then-sort design.
	ScoredPerQuery = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "matchengine",
			Name:      "scored_records_per_query",
			Help:      "Number of records scored per ranking query",
			Buckets:   []float64{10, 50, 100, 500, 1000, 5000, 10000},
		},
		[]string{"query"},
	)

	// QueryErrorsTotal counts ranking query failures by kind and class.
	QueryErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "matchengine",
			Name:      "query_errors_total",
			Help:      "Total ranking query failures",
		},
		[]string{"query", "class"},
	)
)

// RegisterQueryMetrics registers the ranking query metrics (no init()).
func RegisterQueryMetrics() {
	prometheus.MustRegister(ScoredPerQuery)
	prometheus.MustRegister(QueryErrorsTotal)
}
