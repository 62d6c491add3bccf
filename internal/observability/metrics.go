package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics collects request-level metrics for the HTTP server.
type HTTPMetrics struct {
	registry    *prometheus.Registry
	inFlight    prometheus.Gauge
	reqTotal    *prometheus.CounterVec
	reqDuration *prometheus.HistogramVec
}

// NewHTTPMetrics creates the HTTP metric set and registers it on the given
// Registry. A nil registry gets a fresh one with the Go runtime and process
// collectors attached.
func NewHTTPMetrics(registry *prometheus.Registry, serviceName string) *HTTPMetrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector())
		registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	constLabels := prometheus.Labels{}
	if serviceName != "" {
		constLabels["service"] = serviceName
	}
	inFlight := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   "http",
		Subsystem:   "server",
		Name:        "in_flight_requests",
		Help:        "Number of in-flight HTTP requests.",
		ConstLabels: constLabels,
	})
	reqTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   "http",
		Subsystem:   "server",
		Name:        "requests_total",
		Help:        "Total number of HTTP requests.",
		ConstLabels: constLabels,
	}, []string{"method", "path", "status"})
	reqDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   "http",
		Subsystem:   "server",
		Name:        "request_duration_seconds",
		Help:        "HTTP request duration in seconds.",
		Buckets:     prometheus.DefBuckets,
		ConstLabels: constLabels,
	}, []string{"method", "path", "status"})

	registry.MustRegister(inFlight, reqTotal, reqDuration)

	return &HTTPMetrics{
		registry:    registry,
		inFlight:    inFlight,
		reqTotal:    reqTotal,
		reqDuration: reqDuration,
	}
}

// Handler returns the Prometheus exposition handler for the registry.
func (m *HTTPMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and durations per route.
func (m *HTTPMetrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			m.inFlight.Inc()
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}
			m.inFlight.Dec()

			path := c.Path()
			if path == "" {
				// Unmatched routes fall back to the raw path so the label is kept.
				path = c.Request().URL.Path
			}
			method := c.Request().Method
			statusLabel := strconv.Itoa(c.Response().Status)
			m.reqTotal.WithLabelValues(method, path, statusLabel).Inc()
			m.reqDuration.WithLabelValues(method, path, statusLabel).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
