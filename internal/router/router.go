// File: internal/router/router.go
package router

import (
	"gethired/internal/handler"
	"gethired/internal/handler/auth"
	"gethired/internal/jobsearch"
	"gethired/internal/logging"
	"gethired/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// AuthService 同時提供 handler 與驗證中介層所需的操作
type AuthService interface {
	auth.Service
	middleware.Authenticator
}

// Deps 路由所需的依賴
type Deps struct {
	Auth      AuthService
	DB        handler.Pinger
	Searcher  jobsearch.Searcher
	Analyzer  handler.ResumeAnalyzer
	Usage     handler.UsageStore
	Logger    logging.Logger
	MaxUpload string
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}
	if d.MaxUpload == "" {
		d.MaxUpload = "10M"
	}
	requireAuth := middleware.RequireAuth(d.Auth)

	api := e.Group("/api")

	// 健康檢查
	api.GET("/health", handler.HealthHandler())
	api.GET("/health/ready", handler.ReadyHandler(d.DB, d.Logger))

	// 註冊 / 登入 / 當前使用者
	apiAuth := api.Group("/auth")
	apiAuth.POST("/signup", auth.SignUpHandler(d.Auth))
	apiAuth.POST("/signin", auth.SignInHandler(d.Auth))
	apiAuth.GET("/me", auth.MeHandler(), requireAuth)
	apiAuth.POST("/logout", auth.LogoutHandler(d.Auth), requireAuth)

	// 職缺搜尋與儀表板需登入
	api.GET("/search", handler.SearchHandler(d.Searcher, d.Usage), requireAuth)
	api.GET("/dashboard/stats", handler.DashboardStatsHandler(d.Usage), requireAuth)

	// 履歷分析不需登入，帶令牌時計入統計
	api.POST("/analyze_resume", handler.AnalyzeResumeHandler(d.Analyzer, d.Usage),
		echomw.BodyLimit(d.MaxUpload),
		middleware.OptionalAuth(d.Auth),
	)
}
