package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the Recommend HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommendation_http_latency_seconds",
		Help:    "Latency of the recommendations handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation requests served over HTTP
	RecommendHTTPRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommendation_http_requests_total",
		Help: "Total number of recommendation HTTP requests",
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendHTTPRequests,
	)
}
