package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendRequestsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Count of recommendation scoring requests.",
		},
	)

	RecommendEmptyHistoryTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_empty_history_total",
			Help: "Count of requests answered empty because the user had no usable interactions.",
		},
	)

	RecommendTrainingExamples = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_training_examples",
			Help:    "Training set size per scoring call.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
)

func init() {
	prometheus.MustRegister(
		RecommendRequestsTotal,
		RecommendEmptyHistoryTotal,
		RecommendTrainingExamples,
	)
}
