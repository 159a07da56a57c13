// File: internal/service/usage.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gethired/internal/cache"
	"gethired/internal/logging"
	"gethired/internal/worker"

	"github.com/redis/go-redis/v9"
)

const (
	usageSearches = "searches"
	usageResumes  = "resumes"

	usageTimeout = 2 * time.Second
)

// UsageStats 儀表板計數
type UsageStats struct {
	Searches        int64
	ResumesAnalyzed int64
}

// UsageTracker 以 Redis 計數器記錄每位使用者的搜尋與履歷分析次數
// cache 為 nil 時所有操作皆為 no-op，計數回傳 0
type UsageTracker struct {
	cache  cache.Cache
	pool   worker.Pool
	logger logging.Logger
}

// NewUsageTracker pool 為 nil 時同步寫入
func NewUsageTracker(c cache.Cache, pool worker.Pool, logger logging.Logger) *UsageTracker {
	if logger == nil {
		logger = logging.Discard()
	}
	return &UsageTracker{cache: c, pool: pool, logger: logger}
}

func usageKey(userID, kind string) string {
	return fmt.Sprintf("usage:%s:%s", userID, kind)
}

// RecordSearch 佇列已滿時丟棄這次計數，不阻塞請求
func (u *UsageTracker) RecordSearch(userID string) {
	u.record(userID, usageSearches)
}

// RecordResumeAnalysis 佇列已滿時丟棄這次計數，不阻塞請求
func (u *UsageTracker) RecordResumeAnalysis(userID string) {
	u.record(userID, usageResumes)
}

func (u *UsageTracker) record(userID, kind string) {
	if u == nil || u.cache == nil || userID == "" {
		return
	}
	task := func() {
		ctx, cancel := context.WithTimeout(context.Background(), usageTimeout)
		defer cancel()
		if err := u.cache.Incr(ctx, usageKey(userID, kind)).Err(); err != nil {
			u.logger.Warn(ctx, "usage counter increment failed", "kind", kind, "error", err)
		}
	}
	if u.pool == nil {
		task()
		return
	}
	if !u.pool.TrySubmit(task) {
		u.logger.Warn(context.Background(), "usage counter dropped, worker queue full", "kind", kind, "user_id", userID)
	}
}

// Stats 讀取失敗時記錄警告並回傳 0
func (u *UsageTracker) Stats(ctx context.Context, userID string) UsageStats {
	if u == nil || u.cache == nil {
		return UsageStats{}
	}
	return UsageStats{
		Searches:        u.counter(ctx, userID, usageSearches),
		ResumesAnalyzed: u.counter(ctx, userID, usageResumes),
	}
}

func (u *UsageTracker) counter(ctx context.Context, userID, kind string) int64 {
	n, err := u.cache.Get(ctx, usageKey(userID, kind)).Int64()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			u.logger.Warn(ctx, "usage counter read failed", "kind", kind, "error", err)
		}
		return 0
	}
	return n
}
