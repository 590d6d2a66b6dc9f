package db

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthChecker is implemented by every storage backend.
type HealthChecker interface {
	Driver() string
	Ping(ctx context.Context) error
	Stats() interface{}
}

// HealthHandler returns a handler for the database health check endpoint.
func HealthHandler(checker HealthChecker) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		if err := checker.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
				"status": "unhealthy",
				"driver": checker.Driver(),
				"error":  err.Error(),
			})
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"status": "healthy",
			"driver": checker.Driver(),
			"stats":  checker.Stats(),
		})
	}
}
