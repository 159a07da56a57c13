// File: internal/handler/health.go
package handler

import (
	"context"
	"net/http"
	"time"

	"gethired/internal/dto"
	"gethired/internal/logging"

	"github.com/labstack/echo/v4"
)

const readyTimeout = 3 * time.Second

// Pinger *pgxpool.Pool 與 database.DB 皆滿足
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler 存活檢查，不依賴任何外部服務
// @Summary     Health Check
// @Tags        health
// @Produce     json
// @Success     200 {object} dto.HealthResponse
// @Router      /health [get]
func HealthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.HealthResponse{Status: "healthy", Message: "GetHired API is running"})
	}
}

// ReadyHandler 檢查資料庫連線
// @Summary     Readiness Check
// @Description 資料庫無法連線時回傳 503
// @Tags        health
// @Produce     json
// @Success     200 {object} dto.HealthResponse
// @Failure     503 {object} dto.HealthResponse
// @Router      /health/ready [get]
func ReadyHandler(db Pinger, logger logging.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), readyTimeout)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			logger.Warn(ctx, "readiness check failed", "error", err)
			return c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Details: "database unhealthy"})
		}
		return c.JSON(http.StatusOK, dto.HealthResponse{Status: "ready"})
	}
}
