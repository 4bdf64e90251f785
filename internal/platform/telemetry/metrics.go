// Package telemetry exposes Prometheus metrics for the barangay health API:
// standard HTTP request metrics plus a handful of domain counters the
// barangay dashboards watch (registrations, stock releases, submitted
// reports).
package telemetry

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// Domain metrics
	residentsRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "residents_registered_total",
			Help: "Total number of residents registered",
		},
	)

	medicineReleased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medicine_released_total",
			Help: "Total units of medicine released, by code",
		},
		[]string{"med_code"},
	)

	reportsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reports_submitted_total",
			Help: "Total number of BHW reports submitted",
		},
		[]string{"kind"},
	)

	messagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "messages_sent_total",
			Help: "Total number of messages sent",
		},
	)
)

// Middleware records request count, duration, and in-flight gauge for every
// request. The route path (not the raw URL) is used as the label to keep
// cardinality bounded.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			httpRequestsInFlight.Inc()
			defer httpRequestsInFlight.Dec()

			err := next(c)

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}

			httpRequestsTotal.WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).Inc()
			httpRequestDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// Handler returns the Prometheus exposition endpoint.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}

// CountResidentRegistered increments the resident registration counter.
func CountResidentRegistered() {
	residentsRegistered.Inc()
}

// CountMedicineReleased adds the released amount for the given medicine code.
func CountMedicineReleased(medCode string, amount int) {
	medicineReleased.WithLabelValues(medCode).Add(float64(amount))
}

// CountReportSubmitted increments the report counter for "weekly" or "monthly".
func CountReportSubmitted(kind string) {
	reportsSubmitted.WithLabelValues(kind).Inc()
}

// CountMessageSent increments the sent-message counter.
func CountMessageSent() {
	messagesSent.Inc()
}
