package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestCounter counts all HTTP requests with labels
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	// RequestDurationHistogram records request duration in seconds
	RequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	// SearchCounter counts search requests by entity, mode and outcome
	SearchCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Search requests by entity, mode and outcome",
		},
		[]string{"entity", "mode", "outcome"},
	)

	// InvoicesRemovedCounter counts invoices deleted because they had no items left
	InvoicesRemovedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "empty_invoices_removed_total",
			Help: "Invoices removed after losing their last item",
		},
		[]string{"trigger"},
	)

	registerOnce sync.Once
)

// Register adds the collectors to the default registry; safe to call repeatedly
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter, RequestDurationHistogram, SearchCounter, InvoicesRemovedCounter)
	})
}

// HTTPMetrics records per-route request metrics for one service
type HTTPMetrics struct {
	ServiceName string
}

func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	Register()
	return &HTTPMetrics{ServiceName: serviceName}
}

// Middleware records request count and latency after the response is written
func (m *HTTPMetrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method
			path := c.Path()

			RequestCounter.WithLabelValues(m.ServiceName, method, path, status).Inc()
			RequestDurationHistogram.WithLabelValues(m.ServiceName, method, path, status).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

// ObserveSearch records one search; outcome is "rejected", "empty" or "matched"
func ObserveSearch(entity, mode, outcome string) {
	SearchCounter.WithLabelValues(entity, mode, outcome).Inc()
}

// ObserveInvoicesRemoved records invoices removed by the cascade rule
func ObserveInvoicesRemoved(trigger string, n int) {
	if n > 0 {
		InvoicesRemovedCounter.WithLabelValues(trigger).Add(float64(n))
	}
}

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
