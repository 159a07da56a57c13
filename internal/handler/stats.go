// File: internal/handler/stats.go
package handler

import (
	"context"
	"net/http"

	"gethired/internal/apperr"
	"gethired/internal/dto"
	"gethired/internal/middleware"
	"gethired/internal/service"

	"github.com/labstack/echo/v4"
)

// UsageStore 由 service.UsageTracker 實作
type UsageStore interface {
	RecordSearch(userID string)
	RecordResumeAnalysis(userID string)
	Stats(ctx context.Context, userID string) service.UsageStats
}

// DashboardStatsHandler 使用者儀表板統計
// @Summary     儀表板統計
// @Description 未設定 Redis 時計數皆為 0
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} dto.StatsResponse
// @Failure     401 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /dashboard/stats [get]
func DashboardStatsHandler(usage UsageStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		p := middleware.PrincipalFrom(c)
		if p == nil {
			return apperr.ErrUnauthorized
		}
		stats := usage.Stats(c.Request().Context(), p.User.ID)
		return c.JSON(http.StatusOK, dto.StatsResponse{
			UserName:        p.User.FullName,
			TotalSearches:   stats.Searches,
			ResumesAnalyzed: stats.ResumesAnalyzed,
			MemberSince:     p.User.CreatedAt,
		})
	}
}
