package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/snehashetty510/adcraft-api/prometheus"
)

// Root reports basic service identity
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"ok":      true,
		"service": "AdCraft AI API",
		"health":  "/api/health",
	})
}

// HealthCheck handles the health check endpoint
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "OK",
		"message": "Server is running",
	})
}

// MetricsHandler exposes Prometheus metrics
func MetricsHandler(c echo.Context) error {
	handler := prometheus.GetPrometheusHandler()
	handler.ServeHTTP(c.Response(), c.Request())
	return nil
}
