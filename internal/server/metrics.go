package server

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"devtoolbox/internal/ui"
)

var (
	// MetricRequestsTotal counts handled requests by tool and status code
	MetricRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devtoolbox_requests_total",
		Help: "Total requests by tool and status",
	}, []string{"tool", "status"})

	// MetricRequestDuration tracks request latency per tool
	MetricRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "devtoolbox_request_duration_seconds",
		Help:    "Request duration in seconds",
		Buckets: []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// MetricActiveRequests tracks requests currently in flight
	MetricActiveRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "devtoolbox_active_requests",
		Help: "Current in-flight requests",
	})

	// MetricErrorsTotal counts errors by type
	MetricErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devtoolbox_errors_total",
		Help: "Total errors by type",
	}, []string{"type"})

	// MetricImagePixelsTotal counts pixels processed by image tools
	MetricImagePixelsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devtoolbox_image_pixels_total",
		Help: "Total image pixels processed by operation",
	}, []string{"op"})

	// MetricRateLimited counts requests refused by the rate limiter
	MetricRateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devtoolbox_rate_limited_total",
		Help: "Total requests refused by rate limiting",
	})

	// MetricRequestsRejected counts requests refused because the server was full
	MetricRequestsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devtoolbox_requests_rejected_total",
		Help: "Total requests rejected due to capacity",
	})
)

// activeRequests mirrors MetricActiveRequests for logging and /api/stats.
var activeRequests atomic.Int64

func requestStarted() {
	activeRequests.Add(1)
	MetricActiveRequests.Inc()
}

func requestFinished() {
	activeRequests.Add(-1)
	MetricActiveRequests.Dec()
}

// ActiveRequests returns the number of requests in flight
func ActiveRequests() int {
	return int(activeRequests.Load())
}

// MetricsServer wraps the HTTP server for prometheus metrics
type MetricsServer struct {
	server *http.Server
}

// NewMetricsServer creates a new metrics server
func NewMetricsServer(addr string) *MetricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &MetricsServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start begins serving metrics (non-blocking)
func (m *MetricsServer) Start() {
	go func() {
		if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			ui.LogStatus("error", "Metrics server error: "+err.Error())
		}
	}()
}

// Shutdown gracefully stops the metrics server
func (m *MetricsServer) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.server.Shutdown(shutdownCtx)
}
