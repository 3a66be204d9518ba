package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counter metrics
var (
	LoginCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "adcraft_login_total",
			Help: "Total number of login attempts",
		},
	)

	SignupCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "adcraft_signup_total",
			Help: "Total number of signups",
		},
	)

	InviteCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "adcraft_invite_total",
			Help: "Total number of company invitations",
		},
	)

	CampaignOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adcraft_campaign_operations_total",
			Help: "Total number of campaign operations",
		},
		[]string{"operation"}, // "create", "list", "get", "update", "delete"
	)

	BrandOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adcraft_brand_operations_total",
			Help: "Total number of brand profile operations",
		},
		[]string{"operation"}, // "get", "create", "update"
	)

	GenerationCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "adcraft_generation_total",
			Help: "Total number of campaign image generation requests",
		},
	)

	GenerationErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adcraft_generation_errors_total",
			Help: "Total number of generation provider failures",
		},
		[]string{"provider"}, // "image", "content", "upload"
	)

	HTTPRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adcraft_http_requests_total",
			Help: "Total number of HTTP requests by endpoint and status",
		},
		[]string{"endpoint", "method", "status"},
	)

	AuthErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adcraft_auth_errors_total",
			Help: "Total number of authentication and authorization errors",
		},
		[]string{"type"},
	)
)

// Histogram metrics
var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "adcraft_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	DBOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "adcraft_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // "query", "insert", "update", "delete"
	)

	GenerationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "adcraft_generation_duration_seconds",
			Help:    "Duration of generation provider round trips in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 90},
		},
		[]string{"provider"},
	)
)

// Gauge metrics
var (
	ActiveTokensGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "adcraft_active_tokens",
			Help: "Number of tokens issued minus logouts",
		},
	)

	InfoGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "adcraft_info",
			Help: "Information about the AdCraft API service",
		},
		[]string{"version"},
	)
)

func init() {
	prometheus.MustRegister(LoginCounter)
	prometheus.MustRegister(SignupCounter)
	prometheus.MustRegister(InviteCounter)
	prometheus.MustRegister(CampaignOperationCounter)
	prometheus.MustRegister(BrandOperationCounter)
	prometheus.MustRegister(GenerationCounter)
	prometheus.MustRegister(GenerationErrorCounter)
	prometheus.MustRegister(HTTPRequestCounter)
	prometheus.MustRegister(AuthErrorCounter)

	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(DBOperationDuration)
	prometheus.MustRegister(GenerationDuration)

	prometheus.MustRegister(ActiveTokensGauge)
	prometheus.MustRegister(InfoGauge)

	InfoGauge.With(prometheus.Labels{"version": "1.0.0"}).Set(1)
}

// GetPrometheusHandler returns an HTTP handler for the Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}

// TrackDBOperation measures database operation durations
func TrackDBOperation(operation string) func(time.Time) {
	startTime := time.Now()
	return func(endTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DBOperationDuration.With(prometheus.Labels{
			"operation": operation,
		}).Observe(duration)
	}
}

// TrackGeneration measures generation provider round-trip durations
func TrackGeneration(provider string) func(time.Time) {
	startTime := time.Now()
	return func(endTime time.Time) {
		duration := time.Since(startTime).Seconds()
		GenerationDuration.With(prometheus.Labels{
			"provider": provider,
		}).Observe(duration)
	}
}

// RecordAuthError records an authentication error by type
func RecordAuthError(errorType string) {
	AuthErrorCounter.With(prometheus.Labels{"type": errorType}).Inc()
}

// RecordCampaignOperation records a campaign operation
func RecordCampaignOperation(operation string) {
	CampaignOperationCounter.With(prometheus.Labels{"operation": operation}).Inc()
}

// RecordBrandOperation records a brand profile operation
func RecordBrandOperation(operation string) {
	BrandOperationCounter.With(prometheus.Labels{"operation": operation}).Inc()
}

// RecordGenerationError records a generation provider failure
func RecordGenerationError(provider string) {
	GenerationErrorCounter.With(prometheus.Labels{"provider": provider}).Inc()
}

// IncreaseActiveTokens increments the active tokens gauge
func IncreaseActiveTokens() {
	ActiveTokensGauge.Inc()
}

// DecreaseActiveTokens decrements the active tokens gauge
func DecreaseActiveTokens() {
	ActiveTokensGauge.Dec()
}

// MetricsMiddleware creates a middleware function that captures metrics for each request
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(c.Response().Status)
			endpoint := c.Path()
			method := c.Request().Method

			RequestDuration.With(prometheus.Labels{
				"endpoint": endpoint,
				"method":   method,
				"status":   status,
			}).Observe(duration)

			HTTPRequestCounter.With(prometheus.Labels{
				"endpoint": endpoint,
				"method":   method,
				"status":   status,
			}).Inc()

			return err
		}
	}
}
