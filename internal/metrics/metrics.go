package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// gRPC metrics
	GRPCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_grpc_requests_total",
			Help: "Total number of gRPC requests",
		},
		[]string{"method", "code"},
	)

	// Dataset metrics
	DatasetHoldings = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "portfolio_dataset_holdings",
			Help: "Number of holdings in the loaded dataset",
		},
	)

	DatasetTimelinePoints = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "portfolio_dataset_timeline_points",
			Help: "Number of monthly points in the loaded performance timeline",
		},
	)
)

// RecordDataset publishes the size of the loaded dataset
func RecordDataset(holdings, timelinePoints int) {
	DatasetHoldings.Set(float64(holdings))
	DatasetTimelinePoints.Set(float64(timelinePoints))
}
