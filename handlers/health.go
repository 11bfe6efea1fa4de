package handlers

import (
	"context"
	"net/http"
	"time"

	"advibes_site/db"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness and whether the rate-limit database
// answers. A database outage degrades the response to 503 but the site
// keeps serving, since the limiter fails open.
func HealthHandler(c echo.Context) error {
	status := map[string]string{"status": "ok", "database": "disabled"}

	if db.DB != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		sqlDB, err := db.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			c.Logger().Errorf("Health check database ping failed: %v", err)
			status["status"] = "degraded"
			status["database"] = "unreachable"
			return c.JSON(http.StatusServiceUnavailable, status)
		}
		status["database"] = "ok"
	}

	return c.JSON(http.StatusOK, status)
}
