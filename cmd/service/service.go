// File: cmd/service/service.go
// @title        GetHired API
// @version      1.0
// @description  GetHired 求職輔助後端：帳號、職缺搜尋與履歷分析
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gethired/internal/cache"
	"gethired/internal/config"
	"gethired/internal/database"
	"gethired/internal/jobsearch"
	"gethired/internal/llm"
	"gethired/internal/logging"
	"gethired/internal/middleware"
	"gethired/internal/repository"
	"gethired/internal/resume"
	"gethired/internal/router"
	"gethired/internal/service"
	"gethired/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/cors"

	_ "gethired/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig       = config.Load
	newPgxPool       = database.NewPgxPool
	newRedisClient   = cache.NewRedisClient
	runMigrationsFn  = database.RunMigrations
	newLanguageModel = llm.New
	newWorkerPool    = worker.NewPool
	startServer      = serve
	exitFunc         = os.Exit
)

// serve 在 ctx 結束 (SIGINT/SIGTERM) 後優雅關閉
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func newEcho(logger logging.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = middleware.ErrorHandler(logger)
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	return e
}

func corsHandler(origins []string, next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
	})
	return c.Handler(next)
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	ctx := context.Background()
	for _, w := range cfg.Warnings() {
		logger.Warn(ctx, w)
	}

	db, err := newPgxPool(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	if err := runMigrationsFn(cfg.Database.URL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	// 未設定 REDIS_ADDR 時停用使用量統計
	var usageCache cache.Cache
	if cfg.Redis.Addr != "" {
		rdb, err := newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return fmt.Errorf("Redis 連線失敗: %w", err)
		}
		defer rdb.Close()
		usageCache = rdb
	}

	model, err := newLanguageModel(ctx, cfg.LLM)
	if err != nil {
		return fmt.Errorf("LLM 初始化失敗: %w", err)
	}

	wp := newWorkerPool(cfg.Worker.Count)
	defer wp.Stop()

	authSvc := service.NewAuthService(
		repository.NewUserRepository(db),
		service.NewCredentialHasher(cfg.Auth.BcryptCost),
		service.NewTokenIssuer(cfg.Auth.SecretKey, cfg.Auth.AccessTokenTTL),
		service.WithSessions(repository.NewSessionRepository(db), cfg.Auth.RevokeOnLogout),
		service.WithLogger(logger),
	)

	e := newEcho(logger)
	router.Setup(e, router.Deps{
		Auth:      authSvc,
		DB:        db,
		Searcher:  jobsearch.NewClient(cfg.Search, logger),
		Analyzer:  resume.NewAnalyzer(resume.NewExtractor(cfg.Resume.TempDir), model, cfg.LLM.Timeout, logger),
		Usage:     service.NewUsageTracker(usageCache, wp, logger),
		Logger:    logger,
		MaxUpload: cfg.Resume.MaxUpload,
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      corsHandler(cfg.CORS.AllowedOrigins, e),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "HTTP server listening", "addr", srv.Addr, "llm_provider", model.Provider())
	if err := startServer(sigCtx, srv, cfg.Server.ShutdownTimeout); err != nil {
		return err
	}
	logger.Info(ctx, "server stopped")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
